package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyTargetWords   = "chunking.target_words"
	keyOverlapWords  = "chunking.overlap_words"
	keyMinChunkChars = "chunking.min_chunk_chars"
	keyOutputDir     = "output.directory"
	keyOCREnabled    = "ocr.enabled"
	keyOCRLanguage   = "ocr.language"
	keyIngestGlobs   = "ingest.patterns"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings with defaults applied for unset keys.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Chunking: domain.ChunkingSettings{
			TargetWords:   s.getInt(keyTargetWords, defaults.Chunking.TargetWords),
			OverlapWords:  s.getIntAllowZero(keyOverlapWords, defaults.Chunking.OverlapWords),
			MinChunkChars: s.getIntAllowZero(keyMinChunkChars, defaults.Chunking.MinChunkChars),
		},
		Output: domain.OutputSettings{
			Directory: s.getString(keyOutputDir, defaults.Output.Directory),
		},
		OCR: domain.OCRSettings{
			Enabled:  s.getBool(keyOCREnabled, defaults.OCR.Enabled),
			Language: s.getString(keyOCRLanguage, defaults.OCR.Language),
		},
		Ingest: domain.IngestSettings{
			Patterns: s.getStringSlice(keyIngestGlobs, defaults.Ingest.Patterns),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are nil", domain.ErrInvalidInput)
	}
	if err := settings.Chunking.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyTargetWords, settings.Chunking.TargetWords); err != nil {
		return fmt.Errorf("save target words: %w", err)
	}
	if err := s.configStore.Set(keyOverlapWords, settings.Chunking.OverlapWords); err != nil {
		return fmt.Errorf("save overlap words: %w", err)
	}
	if err := s.configStore.Set(keyMinChunkChars, settings.Chunking.MinChunkChars); err != nil {
		return fmt.Errorf("save minimum chunk size: %w", err)
	}
	if err := s.configStore.Set(keyOutputDir, settings.Output.Directory); err != nil {
		return fmt.Errorf("save output directory: %w", err)
	}
	if err := s.configStore.Set(keyOCREnabled, settings.OCR.Enabled); err != nil {
		return fmt.Errorf("save ocr enabled: %w", err)
	}
	if err := s.configStore.Set(keyOCRLanguage, settings.OCR.Language); err != nil {
		return fmt.Errorf("save ocr language: %w", err)
	}
	if err := s.configStore.Set(keyIngestGlobs, settings.Ingest.Patterns); err != nil {
		return fmt.Errorf("save ingest patterns: %w", err)
	}

	return nil
}

// Update parses, validates and persists one dotted settings key.
func (s *SettingsService) Update(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keyTargetWords:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidInput, key, value)
		}
		settings.Chunking.TargetWords = n

	case keyOverlapWords:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidInput, key, value)
		}
		settings.Chunking.OverlapWords = n

	case keyMinChunkChars:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidInput, key, value)
		}
		settings.Chunking.MinChunkChars = n

	case keyOutputDir:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
		settings.Output.Directory = value

	case keyOCREnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a boolean, got %q", domain.ErrInvalidInput, key, value)
		}
		settings.OCR.Enabled = b

	case keyOCRLanguage:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
		settings.OCR.Language = value

	case keyIngestGlobs:
		patterns := splitPatterns(value)
		if len(patterns) == 0 {
			return fmt.Errorf("%w: %s must list at least one pattern", domain.ErrInvalidInput, key)
		}
		settings.Ingest.Patterns = patterns

	default:
		return fmt.Errorf("%w: unknown settings key %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Defaults returns the default settings.
func (s *SettingsService) Defaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Keys returns all recognised settings keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{
		keyTargetWords,
		keyOverlapWords,
		keyMinChunkChars,
		keyOutputDir,
		keyOCREnabled,
		keyOCRLanguage,
		keyIngestGlobs,
	}
	sort.Strings(keys)
	return keys
}

// Value renders one settings key for display.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}

	switch key {
	case keyTargetWords:
		return strconv.Itoa(settings.Chunking.TargetWords), nil
	case keyOverlapWords:
		return strconv.Itoa(settings.Chunking.OverlapWords), nil
	case keyMinChunkChars:
		return strconv.Itoa(settings.Chunking.MinChunkChars), nil
	case keyOutputDir:
		return settings.Output.Directory, nil
	case keyOCREnabled:
		return strconv.FormatBool(settings.OCR.Enabled), nil
	case keyOCRLanguage:
		return settings.OCR.Language, nil
	case keyIngestGlobs:
		return strings.Join(settings.Ingest.Patterns, ","), nil
	default:
		return "", fmt.Errorf("%w: unknown settings key %q", domain.ErrInvalidInput, key)
	}
}

// splitPatterns parses a comma-separated pattern list.
func splitPatterns(value string) []string {
	var patterns []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			patterns = append(patterns, part)
		}
	}
	return patterns
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

// getIntAllowZero treats an explicitly stored zero as a value, not an
// unset key. Overlap and minimum size may legitimately be zero.
func (s *SettingsService) getIntAllowZero(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}
