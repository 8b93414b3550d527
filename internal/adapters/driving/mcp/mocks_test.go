package mcp

import (
	"context"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driving"
)

// mockIngestService is a mock implementation of driving.IngestOrchestrator.
type mockIngestService struct {
	report  *domain.IngestReport
	reports []domain.IngestReport
	status  *driving.IngestStatus
	err     error
}

func (m *mockIngestService) IngestFile(_ context.Context, _ string) (*domain.IngestReport, error) {
	return m.report, m.err
}

func (m *mockIngestService) IngestPaths(_ context.Context, _ []string) ([]domain.IngestReport, error) {
	return m.reports, m.err
}

func (m *mockIngestService) Watch(_ context.Context, _ string) error {
	return m.err
}

func (m *mockIngestService) Status(_ context.Context) (*driving.IngestStatus, error) {
	return m.status, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	documents []domain.Document
	document  *domain.Document
	chunks    []domain.Chunk
	err       error
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) GetChunks(_ context.Context, _ string) ([]domain.Chunk, error) {
	return m.chunks, m.err
}

func (m *mockDocumentService) Delete(_ context.Context, _ string) error {
	return m.err
}
