// Package metadata attaches the descriptive record each chunk carries
// into pipeline output: source file, counts, timestamp and an inferred
// section title.
package metadata

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// maxTitleChars bounds how long a chunk's first line may be before the
// title heuristic gives up on it.
const maxTitleChars = 100

const unknownTitle = "Unknown"

// Processor fills each chunk's Metadata from its content and the parent
// document. It implements the PostProcessor interface.
type Processor struct {
	now func() time.Time
}

// Option configures the metadata processor.
type Option func(*Processor)

// WithClock replaces the timestamp source. Tests use this to pin
// ProcessedAt.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		p.now = now
	}
}

// New creates a metadata processor.
func New(opts ...Option) *Processor {
	p := &Processor{
		now: time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "metadata"
}

// Process fills in metadata for every chunk. Existing metadata is
// overwritten; this processor is the single source of the record.
func (p *Processor) Process(_ context.Context, doc *domain.Document, chunks []domain.Chunk) ([]domain.Chunk, error) {
	source := sourceFileName(doc)
	processedAt := p.now().UTC()

	for i := range chunks {
		chunk := &chunks[i]
		chunk.Metadata = domain.ChunkMetadata{
			ChunkID:       chunk.ID,
			SourceFile:    source,
			ChunkIndex:    chunk.Position,
			WordCount:     len(strings.Fields(chunk.Content)),
			ProcessedAt:   processedAt,
			InferredTitle: InferTitle(chunk.Content),
			CharCount:     utf8.RuneCountInString(chunk.Content),
		}
	}
	return chunks, nil
}

// InferTitle guesses a section title from the chunk's first line: the
// trimmed line when it is under 100 runes and starts with an uppercase
// letter, "Unknown" otherwise. The length and capitalisation checks run
// on the raw line, so a leading space disqualifies it.
func InferTitle(content string) string {
	line := content
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		line = content[:idx]
	}
	if line == "" || utf8.RuneCountInString(line) >= maxTitleChars {
		return unknownTitle
	}
	first, _ := utf8.DecodeRuneInString(line)
	if !unicode.IsUpper(first) {
		return unknownTitle
	}
	return strings.TrimSpace(line)
}

// sourceFileName resolves the base name of the document's source file
// from its URI. Falls back to the document title when the URI does not
// parse.
func sourceFileName(doc *domain.Document) string {
	if doc == nil {
		return ""
	}
	if u, err := url.Parse(doc.URI); err == nil && u.Path != "" {
		return filepath.Base(u.Path)
	}
	return doc.Title
}
