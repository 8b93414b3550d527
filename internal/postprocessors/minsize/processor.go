// Package minsize filters out chunks whose content is too short to be
// worth indexing - stray headings, page furniture, fragments left over
// from cleaning.
package minsize

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// DefaultMinChars is the default minimum content length in runes.
const DefaultMinChars = 50

// Processor drops chunks shorter than a minimum rune count.
// It implements the PostProcessor interface. Surviving chunks keep
// their original positions, so the sequence may contain gaps.
type Processor struct {
	minChars int
}

// Option configures the minsize processor.
type Option func(*Processor)

// WithMinChars sets the minimum content length in runes.
// A value of zero disables filtering.
func WithMinChars(n int) Option {
	return func(p *Processor) {
		p.minChars = n
	}
}

// New creates a minsize processor.
func New(opts ...Option) (*Processor, error) {
	p := &Processor{
		minChars: DefaultMinChars,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.minChars < 0 {
		return nil, fmt.Errorf("%w: minimum chunk size must not be negative, got %d", domain.ErrInvalidConfig, p.minChars)
	}

	return p, nil
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "minsize"
}

// Process returns the chunks whose content is at least the minimum
// length. Length is measured in runes, not bytes, so multi-byte text is
// not penalised.
func (p *Processor) Process(_ context.Context, _ *domain.Document, chunks []domain.Chunk) ([]domain.Chunk, error) {
	if p.minChars == 0 {
		return chunks, nil
	}

	kept := make([]domain.Chunk, 0, len(chunks))
	for _, chunk := range chunks {
		if utf8.RuneCountInString(chunk.Content) < p.minChars {
			continue
		}
		kept = append(kept, chunk)
	}
	return kept, nil
}
