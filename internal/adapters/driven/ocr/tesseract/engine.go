//go:build cgo

package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"
	"sync"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"

	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.OCREngine = (*Engine)(nil)

// DefaultLanguage is the default Tesseract language spec.
const DefaultLanguage = "eng"

// renderDPI is the resolution pages are rasterised at before
// recognition. 300 DPI is the Tesseract sweet spot for body text.
const renderDPI = 300

// Engine recognises text on PDF pages using Tesseract.
// Safe for concurrent use; the underlying client is single-threaded, so
// calls are serialised.
type Engine struct {
	mu       sync.Mutex
	client   *gosseract.Client
	language string
}

// Option configures the engine.
type Option func(*Engine)

// WithLanguage sets the Tesseract language spec (e.g. "eng", "eng+fra").
func WithLanguage(lang string) Option {
	return func(e *Engine) {
		if lang != "" {
			e.language = lang
		}
	}
}

// New creates a Tesseract OCR engine.
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
func (e *Engine) Available() bool {
	return true
}

// RecognisePage renders the given 1-based page of the PDF at 300 DPI
// and runs Tesseract over the image. The result is trimmed.
func (e *Engine) RecognisePage(ctx context.Context, pdfPath string, pageNum int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("open pdf for rendering: %w", err)
	}
	defer doc.Close()

	if pageNum < 1 || pageNum > doc.NumPage() {
		return "", fmt.Errorf("page %d out of range (1-%d)", pageNum, doc.NumPage())
	}

	img, err := doc.ImageDPI(pageNum-1, renderDPI)
	if err != nil {
		return "", fmt.Errorf("render page %d: %w", pageNum, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode page %d: %w", pageNum, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.client == nil {
		e.client = gosseract.NewClient()
		if err := e.client.SetLanguage(e.language); err != nil {
			e.client.Close()
			e.client = nil
			return "", fmt.Errorf("set ocr language %q: %w", e.language, err)
		}
	}

	if err := e.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("load page %d into ocr: %w", pageNum, err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognise page %d: %w", pageNum, err)
	}

	return strings.TrimSpace(text), nil
}

// Close releases the Tesseract client.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.client == nil {
		return nil
	}
	err := e.client.Close()
	e.client = nil
	return err
}
