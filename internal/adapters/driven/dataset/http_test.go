package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/core/services"
)

func TestHTTPSource_Load(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/search-data.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": "p1", "title": "Aloe Vera", "type": "plant"}]`))
	}))
	defer server.Close()

	source := NewHTTPSource(server.URL+"/search-data.json", server.Client())

	records, err := source.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "p1", records[0].ID)
	assert.Equal(t, server.URL+"/search-data.json", source.Location())
}

func TestHTTPSource_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewHTTPSource(server.URL, server.Client()).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPSource_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	_, err := NewHTTPSource(server.URL, server.Client()).Load(context.Background())

	assert.Error(t, err)
}

func TestHTTPSource_SessionFetchesOnce(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`[{"id": "p1", "title": "Aloe Vera", "type": "plant"}]`))
	}))
	defer server.Close()

	session := services.NewSession(NewHTTPSource(server.URL, server.Client()))
	for _, q := range []string{"aloe", "vera", "aloe vera"} {
		results, err := session.Search(context.Background(), q, domain.SearchOptions{})
		require.NoError(t, err)
		assert.Len(t, results, 1)
	}

	assert.Equal(t, int32(1), hits.Load())
}

func TestHTTPSource_FailedSessionStaysEmpty(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	session := services.NewSession(NewHTTPSource(server.URL, server.Client()))
	for i := 0; i < 2; i++ {
		results, err := session.Search(context.Background(), "aloe", domain.SearchOptions{})
		require.NoError(t, err)
		assert.Empty(t, results)
	}

	assert.Equal(t, int32(1), hits.Load())
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		page string
		want string
	}{
		{"https://example.org/index.html", "https://example.org/search-data.json"},
		{"https://example.org/plants/p1.html", "https://example.org/search-data.json"},
		{"https://example.org/en/environments/kitchen.html", "https://example.org/en/search-data.json"},
		{"https://example.org/en/", "https://example.org/en/search-data.json"},
	}

	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			got, err := ResolveURL(tt.page, "search-data.json")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveURL_Invalid(t *testing.T) {
	_, err := ResolveURL("://bad", "search-data.json")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
