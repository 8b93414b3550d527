package driven

import (
	"context"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// ChunkWriter serialises a document's chunk records for downstream
// consumers (e.g., an embedding pipeline reading JSON files).
type ChunkWriter interface {
	// Write persists the chunks for one document and returns the path of
	// the artefact written. An empty chunk slice still produces a valid
	// (empty) artefact.
	Write(ctx context.Context, doc *domain.Document, chunks []domain.Chunk) (string, error)
}
