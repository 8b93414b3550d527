package chunker

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// DefaultTargetWords is the default word-count target per chunk.
const DefaultTargetWords = 500

// DefaultOverlapWords is the default number of overlapping words.
const DefaultOverlapWords = 50

// Processor runs the chunking engine over document content.
// It implements the PostProcessor interface. Safe for concurrent use:
// all assembly state is local to one Process call.
type Processor struct {
	targetWords  int
	overlapWords int
	split        SplitFunc
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithTargetWords sets the word-count target per chunk.
func WithTargetWords(n int) Option {
	return func(p *Processor) {
		p.targetWords = n
	}
}

// WithOverlapWords sets the overlap between chunks in words.
func WithOverlapWords(n int) Option {
	return func(p *Processor) {
		p.overlapWords = n
	}
}

// WithSentenceSplitter replaces the default sentence boundary function
// used when subdividing oversized paragraphs.
func WithSentenceSplitter(fn SplitFunc) Option {
	return func(p *Processor) {
		p.split = fn
	}
}

// New creates a chunker processor. Configuration is validated up front:
// a non-positive target or negative overlap fails with
// domain.ErrInvalidConfig rather than producing degenerate output.
// An overlap at or above the target is permitted; assembly still
// terminates, each paragraph forcing a finalisation.
func New(opts ...Option) (*Processor, error) {
	p := &Processor{
		targetWords:  DefaultTargetWords,
		overlapWords: DefaultOverlapWords,
		split:        SplitSentences,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.targetWords <= 0 {
		return nil, fmt.Errorf("%w: target words must be positive, got %d", domain.ErrInvalidConfig, p.targetWords)
	}
	if p.overlapWords < 0 {
		return nil, fmt.Errorf("%w: overlap words must not be negative, got %d", domain.ErrInvalidConfig, p.overlapWords)
	}
	if p.split == nil {
		p.split = SplitSentences
	}

	return p, nil
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Chunk runs the assembler over cleaned text and returns the ordered
// chunk strings. Empty input yields an empty sequence.
func (p *Processor) Chunk(text string) []string {
	return chunkText(text, p.targetWords, p.overlapWords, p.split)
}

// Process splits the document content into chunks.
// Input chunks are ignored; this processor creates new chunks from document content.
func (p *Processor) Process(_ context.Context, doc *domain.Document, _ []domain.Chunk) ([]domain.Chunk, error) {
	parts := p.Chunk(doc.Content)

	chunks := make([]domain.Chunk, 0, len(parts))
	for i, content := range parts {
		chunks = append(chunks, domain.Chunk{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			Content:    content,
			Position:   i,
		})
	}
	return chunks, nil
}
