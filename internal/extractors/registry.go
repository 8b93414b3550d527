// Package extractors provides text extraction from source file formats.
// Extraction is dispatched by file extension; each format lives in its
// own sub-package behind the Extractor port.
package extractors

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry dispatches extraction by lower-cased file extension.
type Registry struct {
	byExt map[string]driven.Extractor
}

// NewRegistry creates a registry over the given extractors.
// Later extractors win extension conflicts.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	r := &Registry{
		byExt: make(map[string]driven.Extractor),
	}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

// Register adds an extractor for all of its extensions.
func (r *Registry) Register(e driven.Extractor) {
	for _, ext := range e.Extensions() {
		r.byExt[strings.ToLower(ext)] = e
	}
}

// ExtractorFor returns the extractor for the given path's extension.
func (r *Registry) ExtractorFor(path string) (driven.Extractor, error) {
	ext := strings.ToLower(filepath.Ext(path))
	e, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: extension %q", domain.ErrUnsupportedFormat, ext)
	}
	return e, nil
}

// Extract resolves the extractor for path and runs it.
// A missing file fails with domain.ErrNotFound before any dispatch. An
// unknown extension fails with domain.ErrUnsupportedFormat; the error
// includes the content-sniffed MIME type so a misnamed file is easy to
// diagnose.
func (r *Registry) Extract(ctx context.Context, path string) (*domain.ExtractedText, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	e, err := r.ExtractorFor(path)
	if err != nil {
		if mtype, detectErr := mimetype.DetectFile(path); detectErr == nil {
			return nil, fmt.Errorf("%w (detected %s)", err, mtype.String())
		}
		return nil, err
	}

	return e.Extract(ctx, path)
}

// SupportedExtensions returns all registered extensions, sorted.
func (r *Registry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
