package driven

import "context"

// OCREngine recognises text on rendered PDF pages.
// Used as a per-page fallback when a PDF's text layer is too thin to be
// a real digital page (scanned documents).
type OCREngine interface {
	// Available reports whether the engine can actually recognise text.
	// False when the native backend is not compiled in or not installed;
	// callers skip the fallback and keep text-layer results.
	Available() bool

	// RecognisePage renders the given 1-based page of the PDF and returns
	// the recognised text, trimmed.
	RecognisePage(ctx context.Context, pdfPath string, pageNum int) (string, error)

	// Close releases engine resources.
	Close() error
}
