package driven

import (
	"context"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// DocumentStore persists the ingestion catalogue of documents and chunks.
// Backed by SQLite.
type DocumentStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// SaveChunks replaces the stored chunks for a document.
	SaveChunks(ctx context.Context, documentID string, chunks []domain.Chunk) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// GetDocumentByURI retrieves a document by its source URI.
	// Used to detect re-ingestion of an already catalogued file.
	GetDocumentByURI(ctx context.Context, uri string) (*domain.Document, error)

	// GetChunks retrieves a document's chunks ordered by position.
	GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	// DeleteDocument removes a document and its chunks.
	DeleteDocument(ctx context.Context, id string) error

	// ListDocuments returns all catalogued documents.
	ListDocuments(ctx context.Context) ([]domain.Document, error)
}
