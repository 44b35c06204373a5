package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/core/ports/driven"
	"github.com/plantadash/plantsearch/internal/core/services"
)

// Ensure HTTPSource implements the interface.
var _ driven.DatasetSource = (*HTTPSource)(nil)

// DefaultTimeout bounds a dataset fetch when no client is supplied.
const DefaultTimeout = 30 * time.Second

// maxDatasetBytes caps the response body.
const maxDatasetBytes = 32 << 20

// HTTPSource fetches the dataset from a published site with a single GET.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for rawURL. A nil client gets DefaultTimeout.
func NewHTTPSource(rawURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPSource{url: rawURL, client: client}
}

// ResolveURL returns the dataset URL for a page, the way the dashboard
// does it: pages in plants/ and environments/ look one directory up.
func ResolveURL(pageURL, file string) (string, error) {
	page, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("page url %q: %w", pageURL, domain.ErrInvalidInput)
	}
	ref, err := url.Parse(services.RelativeDatasetPath(page.Path, file))
	if err != nil {
		return "", fmt.Errorf("dataset path %q: %w", file, domain.ErrInvalidInput)
	}
	return page.ResolveReference(ref).String(), nil
}

// Location returns the dataset URL.
func (s *HTTPSource) Location() string {
	return s.url
}

// Load fetches and decodes the dataset. Any non-2xx status is an error.
func (s *HTTPSource) Load(ctx context.Context) ([]domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch dataset: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDatasetBytes))
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	return DecodeJSON(data)
}
