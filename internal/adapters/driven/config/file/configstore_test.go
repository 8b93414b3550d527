package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore(t *testing.T) {
	t.Run("creates config directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested")
		store, err := NewConfigStore(dir)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
	})

	t.Run("starts empty without a config file", func(t *testing.T) {
		store := newTestStore(t)
		_, ok := store.Get("anything")
		assert.False(t, ok)
	})
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("chunking.target_words", 300))
	require.NoError(t, store.Set("output.directory", "chunks"))
	require.NoError(t, store.Set("ocr.enabled", false))
	require.NoError(t, store.Set("ingest.patterns", []string{"*.pdf", "*.txt"}))

	assert.Equal(t, 300, store.GetInt("chunking.target_words"))
	assert.Equal(t, "chunks", store.GetString("output.directory"))
	assert.False(t, store.GetBool("ocr.enabled"))
	assert.Equal(t, []string{"*.pdf", "*.txt"}, store.GetStringSlice("ingest.patterns"))
}

func TestConfigStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("chunking.target_words", 250))
	require.NoError(t, store.Set("ocr.language", "eng+fra"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, 250, reopened.GetInt("chunking.target_words"))
	assert.Equal(t, "eng+fra", reopened.GetString("ocr.language"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("chunking.target_words", 500))
	require.NoError(t, store.Set("chunking.overlap_words", 50))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "[chunking]")
	assert.NotContains(t, text, `'chunking.target_words'`)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("ocr.enabled", true))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_TypeMismatches(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("key", "text"))

	assert.Zero(t, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
	assert.Nil(t, store.GetStringSlice("key"))
	assert.Empty(t, store.GetString("missing"))
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"chunking": map[string]any{
			"target_words": int64(500),
		},
		"top": "level",
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, int64(500), flat["chunking.target_words"])
	assert.Equal(t, "level", flat["top"])
}

func TestNestMap(t *testing.T) {
	flat := map[string]any{
		"chunking.target_words": 500,
		"top":                   "level",
	}

	nested := nestMap(flat)
	chunking, ok := nested["chunking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 500, chunking["target_words"])
	assert.Equal(t, "level", nested["top"])
}
