package driven

import (
	"context"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// Extractor pulls raw text out of one source file format.
// Each extractor handles specific file extensions (e.g., .pdf, .docx).
type Extractor interface {
	// Format returns the document format this extractor produces.
	Format() domain.DocumentFormat

	// Extensions returns the lower-cased file extensions this extractor
	// handles, including the leading dot.
	Extensions() []string

	// Extract reads the file and returns its raw text.
	// The returned text is pre-cleaning: extractors preserve the source's
	// own line structure and leave normalisation to the cleaning step.
	Extract(ctx context.Context, path string) (*domain.ExtractedText, error)
}

// ExtractorRegistry dispatches extraction by file extension.
type ExtractorRegistry interface {
	// ExtractorFor returns the extractor for the given path's extension.
	// Returns domain.ErrUnsupportedFormat when no extractor matches.
	ExtractorFor(path string) (Extractor, error)

	// Extract resolves the extractor for path and runs it.
	// Returns domain.ErrNotFound when the file does not exist.
	Extract(ctx context.Context, path string) (*domain.ExtractedText, error)

	// SupportedExtensions returns all registered extensions, sorted.
	SupportedExtensions() []string
}
