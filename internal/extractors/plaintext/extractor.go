// Package plaintext extracts text from plain text files.
package plaintext

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text files.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns the document format this extractor produces.
func (e *Extractor) Format() domain.DocumentFormat {
	return domain.FormatText
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".txt"}
}

// Extract reads the file as UTF-8, falling back to Latin-1 when the
// bytes do not decode. Latin-1 maps every byte to a rune, so the
// fallback cannot fail; exported text from legacy Windows tooling comes
// through rather than aborting the run. The result is trimmed.
func (e *Extractor) Extract(ctx context.Context, path string) (*domain.ExtractedText, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrExtractionFailed, path, err)
	}

	content := string(data)
	encoding := "utf-8"
	if !utf8.Valid(data) {
		decoded, decodeErr := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrExtractionFailed, path, decodeErr)
		}
		content = string(decoded)
		encoding = "latin-1"
	}

	return &domain.ExtractedText{
		Content: strings.TrimSpace(content),
		Metadata: map[string]any{
			"encoding": encoding,
		},
	}, nil
}
