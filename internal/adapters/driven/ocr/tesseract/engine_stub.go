//go:build !cgo

package tesseract

import (
	"context"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.OCREngine = (*Engine)(nil)

// DefaultLanguage is the default Tesseract language spec.
const DefaultLanguage = "eng"

// Engine is a stub for builds without CGO.
type Engine struct {
	language string
}

// Option configures the engine.
type Option func(*Engine)

// WithLanguage sets the Tesseract language spec.
// This is a stub for builds without CGO.
func WithLanguage(lang string) Option {
	return func(e *Engine) {
		if lang != "" {
			e.language = lang
		}
	}
}

// New creates a stub OCR engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		language: DefaultLanguage,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Available reports whether the engine can recognise text.
// Always false without CGO.
func (e *Engine) Available() bool {
	return false
}

// RecognisePage always fails without CGO.
func (e *Engine) RecognisePage(_ context.Context, _ string, _ int) (string, error) {
	return "", domain.ErrOCRUnavailable
}

// Close releases engine resources.
func (e *Engine) Close() error {
	return nil
}
