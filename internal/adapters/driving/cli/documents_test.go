package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// fakeDocumentService is a scripted driving.DocumentService.
type fakeDocumentService struct {
	documents []domain.Document
	document  *domain.Document
	chunks    []domain.Chunk
	deleted   []string
	err       error
}

func (f *fakeDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return f.documents, f.err
}

func (f *fakeDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return f.document, f.err
}

func (f *fakeDocumentService) GetChunks(_ context.Context, _ string) ([]domain.Chunk, error) {
	return f.chunks, f.err
}

func (f *fakeDocumentService) Delete(_ context.Context, documentID string) error {
	f.deleted = append(f.deleted, documentID)
	return f.err
}

// newTestCommand returns a command wired to a capture buffer.
func newTestCommand(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetContext(context.Background())
	return cmd, out
}

// setDocumentService swaps the injected service for one test.
func setDocumentService(t *testing.T, svc *fakeDocumentService) {
	t.Helper()
	prev := documentService
	documentService = svc
	t.Cleanup(func() { documentService = prev })
}

func TestRunDocumentsList(t *testing.T) {
	t.Run("prints catalogued documents", func(t *testing.T) {
		setDocumentService(t, &fakeDocumentService{
			documents: []domain.Document{
				{
					ID:         "doc-1",
					Title:      "Leave Policy.pdf",
					Format:     domain.FormatPDF,
					URI:        "file:///corpus/Leave Policy.pdf",
					IngestedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
				},
				{
					ID:     "doc-2",
					Title:  "handbook.txt",
					Format: domain.FormatText,
				},
			},
		})

		cmd, out := newTestCommand(t)
		require.NoError(t, runDocumentsList(cmd, nil))

		assert.Contains(t, out.String(), "doc-1")
		assert.Contains(t, out.String(), "Leave Policy.pdf")
		assert.Contains(t, out.String(), "2026-03-01 09:30:00")
		assert.Contains(t, out.String(), "Total: 2 document(s)")
	})

	t.Run("empty catalogue", func(t *testing.T) {
		setDocumentService(t, &fakeDocumentService{})

		cmd, out := newTestCommand(t)
		require.NoError(t, runDocumentsList(cmd, nil))

		assert.Contains(t, out.String(), "No documents in the catalogue.")
	})

	t.Run("json output", func(t *testing.T) {
		setDocumentService(t, &fakeDocumentService{
			documents: []domain.Document{{ID: "doc-1", Title: "handbook.txt"}},
		})
		documentsJSON = true
		t.Cleanup(func() { documentsJSON = false })

		cmd, out := newTestCommand(t)
		require.NoError(t, runDocumentsList(cmd, nil))

		assert.Contains(t, out.String(), `"doc-1"`)
		assert.Contains(t, out.String(), "handbook.txt")
	})

	t.Run("nil service returns error", func(t *testing.T) {
		prev := documentService
		documentService = nil
		t.Cleanup(func() { documentService = prev })

		cmd, _ := newTestCommand(t)
		err := runDocumentsList(cmd, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})

	t.Run("service error propagates", func(t *testing.T) {
		setDocumentService(t, &fakeDocumentService{err: domain.ErrNotFound})

		cmd, _ := newTestCommand(t)
		err := runDocumentsList(cmd, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRunDocumentsShow(t *testing.T) {
	t.Run("prints document and chunk lines", func(t *testing.T) {
		setDocumentService(t, &fakeDocumentService{
			document: &domain.Document{
				ID:        "doc-1",
				Title:     "Leave Policy.pdf",
				Format:    domain.FormatPDF,
				URI:       "file:///corpus/Leave Policy.pdf",
				SizeBytes: 2048,
				Checksum:  "abc123",
				Metadata:  map[string]any{"page_count": 3},
			},
			chunks: []domain.Chunk{
				{
					Position: 0,
					Metadata: domain.ChunkMetadata{
						InferredTitle: "Leave Accrual",
						WordCount:     120,
						CharCount:     640,
					},
				},
			},
		})

		cmd, out := newTestCommand(t)
		require.NoError(t, runDocumentsShow(cmd, []string{"doc-1"}))

		assert.Contains(t, out.String(), "Document: doc-1")
		assert.Contains(t, out.String(), "2048 bytes")
		assert.Contains(t, out.String(), "page_count: 3")
		assert.Contains(t, out.String(), "Chunks: 1")
		assert.Contains(t, out.String(), "[0] Leave Accrual (120 words, 640 chars)")
	})

	t.Run("missing document returns error", func(t *testing.T) {
		setDocumentService(t, &fakeDocumentService{err: domain.ErrNotFound})

		cmd, _ := newTestCommand(t)
		err := runDocumentsShow(cmd, []string{"missing"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRunDocumentsDelete(t *testing.T) {
	t.Run("removes the document", func(t *testing.T) {
		svc := &fakeDocumentService{}
		setDocumentService(t, svc)

		cmd, out := newTestCommand(t)
		require.NoError(t, runDocumentsDelete(cmd, []string{"doc-1"}))

		assert.Equal(t, []string{"doc-1"}, svc.deleted)
		assert.Contains(t, out.String(), "doc-1 removed")
	})

	t.Run("missing document returns error", func(t *testing.T) {
		setDocumentService(t, &fakeDocumentService{err: domain.ErrNotFound})

		cmd, _ := newTestCommand(t)
		err := runDocumentsDelete(cmd, []string{"missing"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
