package domain

import "fmt"

const unknownDescription = "Unknown"

// DocumentFormat identifies a supported source file format.
type DocumentFormat string

// Supported document formats.
const (
	// FormatPDF is a PDF file, extracted from the text layer with a
	// per-page OCR fallback for scanned pages.
	FormatPDF DocumentFormat = "pdf"

	// FormatDOCX is a Word document, extracted from paragraphs and tables.
	FormatDOCX DocumentFormat = "docx"

	// FormatText is a plain text file, read directly with a Latin-1
	// fallback when the bytes are not valid UTF-8.
	FormatText DocumentFormat = "txt"
)

// IsValid returns true if the format is recognised.
func (f DocumentFormat) IsValid() bool {
	switch f {
	case FormatPDF, FormatDOCX, FormatText:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f DocumentFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f DocumentFormat) Description() string {
	switch f {
	case FormatPDF:
		return "PDF (text layer + OCR fallback)"
	case FormatDOCX:
		return "Word document (paragraphs + tables)"
	case FormatText:
		return "Plain text (UTF-8, Latin-1 fallback)"
	default:
		return unknownDescription
	}
}

// AllDocumentFormats returns all supported formats.
func AllDocumentFormats() []DocumentFormat {
	return []DocumentFormat{FormatPDF, FormatDOCX, FormatText}
}

// ChunkingSettings holds chunk assembly configuration.
type ChunkingSettings struct {
	// TargetWords is the word-count ceiling a chunk should not exceed,
	// soft at sentence granularity.
	TargetWords int

	// OverlapWords is the number of trailing words repeated at the head
	// of the next chunk.
	OverlapWords int

	// MinChunkChars is the minimum content length in runes for a chunk
	// to survive filtering.
	MinChunkChars int
}

// Validate rejects configurations the chunking engine cannot honour.
func (c ChunkingSettings) Validate() error {
	if c.TargetWords <= 0 {
		return fmt.Errorf("%w: target words must be positive, got %d", ErrInvalidConfig, c.TargetWords)
	}
	if c.OverlapWords < 0 {
		return fmt.Errorf("%w: overlap words must not be negative, got %d", ErrInvalidConfig, c.OverlapWords)
	}
	if c.MinChunkChars < 0 {
		return fmt.Errorf("%w: minimum chunk size must not be negative, got %d", ErrInvalidConfig, c.MinChunkChars)
	}
	return nil
}

// OutputSettings holds chunk output configuration.
type OutputSettings struct {
	// Directory is where per-document chunk JSON files are written.
	Directory string
}

// OCRSettings holds OCR fallback configuration.
type OCRSettings struct {
	// Enabled toggles the per-page OCR fallback for scanned PDFs.
	Enabled bool

	// Language is the Tesseract language spec (e.g. "eng", "eng+fra").
	Language string
}

// IngestSettings holds file discovery configuration.
type IngestSettings struct {
	// Patterns are the glob patterns matched when ingesting a directory.
	Patterns []string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Chunking holds chunk assembly settings.
	Chunking ChunkingSettings

	// Output holds chunk output settings.
	Output OutputSettings

	// OCR holds OCR fallback settings.
	OCR OCRSettings

	// Ingest holds file discovery settings.
	Ingest IngestSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Chunking: ChunkingSettings{
			TargetWords:   500,
			OverlapWords:  50,
			MinChunkChars: 50,
		},
		Output: OutputSettings{
			Directory: "output_chunks",
		},
		OCR: OCRSettings{
			Enabled:  true,
			Language: "eng",
		},
		Ingest: IngestSettings{
			Patterns: []string{"*.pdf", "*.docx", "*.txt"},
		},
	}
}

// PipelineConfig holds post-processor pipeline configuration.
// Uses generic map-based config for extensibility - new processors can be added
// without modifying this struct.
type PipelineConfig struct {
	// Processors is the ordered list of processor names to run.
	Processors []string

	// ProcessorConfigs holds per-processor configuration as generic maps.
	// Key is processor name, value is processor-specific config.
	ProcessorConfigs map[string]map[string]any
}

// GetProcessorConfig returns config for a specific processor, or nil if not set.
func (c *PipelineConfig) GetProcessorConfig(name string) map[string]any {
	if c.ProcessorConfigs == nil {
		return nil
	}
	return c.ProcessorConfigs[name]
}

// DefaultPipelineConfig returns the default pipeline configuration.
// Works out-of-the-box: chunk, filter undersized chunks, attach metadata.
func DefaultPipelineConfig() PipelineConfig {
	return DefaultAppSettings().PipelineConfig()
}

// PipelineConfig derives the post-processor pipeline from these settings.
func (s AppSettings) PipelineConfig() PipelineConfig {
	return PipelineConfig{
		Processors: []string{"chunker", "minsize", "metadata"},
		ProcessorConfigs: map[string]map[string]any{
			"chunker": {
				"target_words":  s.Chunking.TargetWords,
				"overlap_words": s.Chunking.OverlapWords,
			},
			"minsize": {
				"min_chunk_chars": s.Chunking.MinChunkChars,
			},
		},
	}
}
