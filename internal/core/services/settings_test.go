package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpora-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

func newSettingsFixture(t *testing.T) (*SettingsService, *memory.ConfigStore) {
	t.Helper()
	store := memory.NewConfigStore()
	return NewSettingsService(store), store
}

func TestSettingsService_Get_Defaults(t *testing.T) {
	service, _ := newSettingsFixture(t)

	settings, err := service.Get()
	require.NoError(t, err)

	assert.Equal(t, 500, settings.Chunking.TargetWords)
	assert.Equal(t, 50, settings.Chunking.OverlapWords)
	assert.Equal(t, 50, settings.Chunking.MinChunkChars)
	assert.Equal(t, "output_chunks", settings.Output.Directory)
	assert.True(t, settings.OCR.Enabled)
	assert.Equal(t, "eng", settings.OCR.Language)
	assert.Equal(t, []string{"*.pdf", "*.docx", "*.txt"}, settings.Ingest.Patterns)
}

func TestSettingsService_Get_StoredValues(t *testing.T) {
	service, store := newSettingsFixture(t)

	require.NoError(t, store.Set("chunking.target_words", 200))
	require.NoError(t, store.Set("chunking.overlap_words", 0))
	require.NoError(t, store.Set("ocr.enabled", false))
	require.NoError(t, store.Set("ingest.patterns", []string{"*.txt"}))

	settings, err := service.Get()
	require.NoError(t, err)

	assert.Equal(t, 200, settings.Chunking.TargetWords)
	// Stored zero is a value, not an unset key.
	assert.Equal(t, 0, settings.Chunking.OverlapWords)
	assert.False(t, settings.OCR.Enabled)
	assert.Equal(t, []string{"*.txt"}, settings.Ingest.Patterns)
}

func TestSettingsService_Save(t *testing.T) {
	service, store := newSettingsFixture(t)

	settings := service.Defaults()
	settings.Chunking.TargetWords = 300
	settings.Output.Directory = "chunks"

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, 300, store.GetInt("chunking.target_words"))
	assert.Equal(t, "chunks", store.GetString("output.directory"))
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	service, _ := newSettingsFixture(t)

	settings := service.Defaults()
	settings.Chunking.TargetWords = 0
	assert.ErrorIs(t, service.Save(&settings), domain.ErrInvalidConfig)

	assert.ErrorIs(t, service.Save(nil), domain.ErrInvalidInput)
}

func TestSettingsService_Update(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{
			name:  "target words",
			key:   "chunking.target_words",
			value: "250",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, 250, s.Chunking.TargetWords)
			},
		},
		{
			name:  "overlap words",
			key:   "chunking.overlap_words",
			value: "0",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, 0, s.Chunking.OverlapWords)
			},
		},
		{
			name:  "minimum chunk size",
			key:   "chunking.min_chunk_chars",
			value: "25",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, 25, s.Chunking.MinChunkChars)
			},
		},
		{
			name:  "output directory",
			key:   "output.directory",
			value: "processed",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, "processed", s.Output.Directory)
			},
		},
		{
			name:  "ocr enabled",
			key:   "ocr.enabled",
			value: "false",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.False(t, s.OCR.Enabled)
			},
		},
		{
			name:  "ocr language",
			key:   "ocr.language",
			value: "eng+fra",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, "eng+fra", s.OCR.Language)
			},
		},
		{
			name:  "ingest patterns",
			key:   "ingest.patterns",
			value: "*.pdf, *.txt",
			check: func(t *testing.T, s *domain.AppSettings) {
				assert.Equal(t, []string{"*.pdf", "*.txt"}, s.Ingest.Patterns)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newSettingsFixture(t)

			require.NoError(t, service.Update(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Update_Invalid(t *testing.T) {
	service, _ := newSettingsFixture(t)

	tests := []struct {
		name  string
		key   string
		value string
		want  error
	}{
		{"unknown key", "chunking.nope", "1", domain.ErrInvalidInput},
		{"non-integer target", "chunking.target_words", "lots", domain.ErrInvalidInput},
		{"zero target rejected by validation", "chunking.target_words", "0", domain.ErrInvalidConfig},
		{"negative overlap", "chunking.overlap_words", "-1", domain.ErrInvalidConfig},
		{"non-boolean ocr", "ocr.enabled", "maybe", domain.ErrInvalidInput},
		{"empty output directory", "output.directory", "", domain.ErrInvalidInput},
		{"empty pattern list", "ingest.patterns", " , ", domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, service.Update(tt.key, tt.value), tt.want)
		})
	}
}

func TestSettingsService_Value(t *testing.T) {
	service, _ := newSettingsFixture(t)

	val, err := service.Value("chunking.target_words")
	require.NoError(t, err)
	assert.Equal(t, "500", val)

	val, err = service.Value("ingest.patterns")
	require.NoError(t, err)
	assert.Equal(t, "*.pdf,*.docx,*.txt", val)

	_, err = service.Value("nope")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_Keys(t *testing.T) {
	service, _ := newSettingsFixture(t)

	keys := service.Keys()
	assert.Len(t, keys, 7)
	assert.Contains(t, keys, "chunking.target_words")
	assert.Contains(t, keys, "ingest.patterns")

	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}
