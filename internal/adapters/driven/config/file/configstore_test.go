package file

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DefaultDirName, "config.toml"), store.Path())
}

func TestNewConfigStore_NestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not = = toml"), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("dataset.location", "data.json"))
	require.NoError(t, store.Set("search.debounce_ms", 200))
	require.NoError(t, store.Set("flag", true))
	require.NoError(t, store.Set("locale.languages", []string{"en", "de"}))

	assert.Equal(t, "data.json", store.GetString("dataset.location"))
	assert.Equal(t, 200, store.GetInt("search.debounce_ms"))
	assert.True(t, store.GetBool("flag"))
	assert.Equal(t, []string{"en", "de"}, store.GetStringSlice("locale.languages"))

	// Wrong types and missing keys yield zero values.
	assert.Empty(t, store.GetString("search.debounce_ms"))
	assert.Zero(t, store.GetInt("dataset.location"))
	assert.False(t, store.GetBool("dataset.location"))
	assert.Nil(t, store.GetStringSlice("missing"))
	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("dataset.location", "https://example.org/search-data.json"))
	require.NoError(t, store.Set("server.rate_limit", 50))
	require.NoError(t, store.Set("locale.languages", []string{"en", "de"}))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "https://example.org/search-data.json", reloaded.GetString("dataset.location"))
	assert.Equal(t, 50, reloaded.GetInt("server.rate_limit"))
	assert.Equal(t, []string{"en", "de"}, reloaded.GetStringSlice("locale.languages"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("search.debounce_ms", 160))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[search]")
	assert.Contains(t, string(data), "debounce_ms = 160")
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[dataset]
location = "site/search-data.json"

[locale]
language = "de"
languages = ["en", "de"]
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "site/search-data.json", store.GetString("dataset.location"))
	assert.Equal(t, "de", store.GetString("locale.language"))
	assert.Equal(t, []string{"en", "de"}, store.GetStringSlice("locale.languages"))
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), nil, 0600))

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save())

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("server.rate_limit", n)
			_ = store.GetInt("server.rate_limit")
		}(i)
	}
	wg.Wait()

	_, ok := store.Get("server.rate_limit")
	assert.True(t, ok)
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"search": map[string]any{"debounce_ms": int64(160)},
		"top":    "value",
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{
		"search.debounce_ms": int64(160),
		"top":                "value",
	}, flat)
}

func TestExpandMap(t *testing.T) {
	t.Run("builds tables", func(t *testing.T) {
		got := expandMap(map[string]any{
			"search.debounce_ms":      160,
			"search.min_query_length": 2,
			"dataset.location":        "x.json",
		})

		assert.Equal(t, map[string]any{
			"search":  map[string]any{"debounce_ms": 160, "min_query_length": 2},
			"dataset": map[string]any{"location": "x.json"},
		}, got)
	})

	t.Run("conflicting plain value stays flat", func(t *testing.T) {
		got := expandMap(map[string]any{
			"server":      "plain",
			"server.addr": ":9000",
		})

		assert.Equal(t, "plain", got["server"])
		assert.Equal(t, ":9000", got["server.addr"])
	})
}
