package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantadash/plantsearch/internal/core/domain"
)

func TestResolveCmd_Redirect(t *testing.T) {
	defer setupTestServices()()

	tests := []struct {
		name string
		id   string
		want string
	}{
		{"full id", "PLANT-0002-XYZ123", "plants/xyz123.html"},
		{"id tail, any case", "XYZ123", "plants/xyz123.html"},
		{"slug", "aloe", "plants/abcdef.html"},
		{"partial id", "0001-abc", "plants/abcdef.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", "resolve", tt.id)

			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestResolveCmd_Multiple(t *testing.T) {
	defer setupTestServices()()

	out, err := execute(t, "", "resolve", "plant-0")

	require.NoError(t, err)
	assert.Contains(t, out, "Multiple matches found:")
	assert.Contains(t, out, "PLANT-0001-ABCDEF  Aloe Vera (plant)  plants/abcdef.html")
	assert.Contains(t, out, "PLANT-0002-XYZ123  Monstera (plant)  plants/xyz123.html")
}

func TestResolveCmd_NoMatch(t *testing.T) {
	defer setupTestServices()()

	_, err := execute(t, "", "resolve", "nothing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveCmd_TooShort(t *testing.T) {
	defer setupTestServices()()

	_, err := execute(t, "", "resolve", "ab")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolveCmd_JSON(t *testing.T) {
	defer setupTestServices()()

	out, err := execute(t, "", "resolve", "--json", "kitchen")
	require.NoError(t, err)

	var res domain.Resolution
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, domain.ResolutionRedirect, res.Kind)
	assert.Equal(t, "environments/kitchen.html", res.Target())
}

func TestResolveCmd_NotConfigured(t *testing.T) {
	defer setupTestServices()()
	redirectService = nil

	err := runResolve(resolveCmd, []string{"kitchen"})

	assert.EqualError(t, err, "redirect service not configured")
}
