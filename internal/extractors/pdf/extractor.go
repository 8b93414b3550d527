// Package pdf extracts text from PDF files via the text layer, with a
// per-page OCR fallback for scanned pages.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// scannedThresholdChars is the minimum trimmed text-layer length for a
// page to count as digital. Anything shorter looks like a scan and
// triggers the OCR fallback.
const scannedThresholdChars = 50

// Extractor handles PDF files.
type Extractor struct {
	ocr driven.OCREngine
}

// Option configures the PDF extractor.
type Option func(*Extractor)

// WithOCR sets the OCR engine used as the per-page fallback.
// Without one, thin pages keep whatever text-layer text they had.
func WithOCR(engine driven.OCREngine) Option {
	return func(e *Extractor) {
		e.ocr = engine
	}
}

// New creates a new PDF extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Format returns the document format this extractor produces.
func (e *Extractor) Format() domain.DocumentFormat {
	return domain.FormatPDF
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".pdf"}
}

// Extract reads the PDF's text layer page by page. A page whose trimmed
// text is under the scanned threshold is re-read through OCR when an
// engine is available; OCR failure is silent and the page keeps its
// text-layer result, since a thin page beats a crashed run. Non-empty
// page texts are joined with a newline.
func (e *Extractor) Extract(ctx context.Context, path string) (*domain.ExtractedText, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open pdf %s: %v", domain.ErrExtractionFailed, path, err)
	}
	defer file.Close()

	numPages := reader.NumPage()
	ocrPages := 0

	var parts []string
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Treat an unreadable text layer as empty so the OCR
			// fallback can still recover the page.
			text = ""
		}

		if e.needsOCR(text) {
			if recognised, ocrErr := e.ocr.RecognisePage(ctx, path, i); ocrErr == nil {
				text = recognised
				ocrPages++
			}
		}

		if text != "" {
			parts = append(parts, text)
		}
	}

	return &domain.ExtractedText{
		Content: strings.Join(parts, "\n"),
		Metadata: map[string]any{
			"pages":     numPages,
			"ocr_pages": ocrPages,
		},
	}, nil
}

func (e *Extractor) needsOCR(text string) bool {
	if e.ocr == nil || !e.ocr.Available() {
		return false
	}
	return len(strings.TrimSpace(text)) < scannedThresholdChars
}
