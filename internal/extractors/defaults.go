package extractors

import (
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpora-cli/internal/extractors/docx"
	"github.com/custodia-labs/corpora-cli/internal/extractors/pdf"
	"github.com/custodia-labs/corpora-cli/internal/extractors/plaintext"
)

// Default creates a registry with all built-in extractors.
// The OCR engine feeds the PDF extractor's scanned-page fallback; pass
// nil to disable OCR entirely.
func Default(ocr driven.OCREngine) *Registry {
	return NewRegistry(
		pdf.New(pdf.WithOCR(ocr)),
		docx.New(),
		plaintext.New(),
	)
}
