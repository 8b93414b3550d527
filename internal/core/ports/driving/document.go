package driving

import (
	"context"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// DocumentService manages catalogued documents.
type DocumentService interface {
	// List returns all catalogued documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// GetChunks returns a document's chunks ordered by position.
	GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	// Delete removes a document and its chunks from the catalogue.
	Delete(ctx context.Context, documentID string) error
}
