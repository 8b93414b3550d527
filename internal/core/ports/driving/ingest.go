package driving

import (
	"context"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// IngestOrchestrator coordinates the document ingestion pipeline:
// extract, clean, chunk, persist.
type IngestOrchestrator interface {
	// IngestFile runs the pipeline for a single file.
	IngestFile(ctx context.Context, path string) (*domain.IngestReport, error)

	// IngestPaths resolves paths, globs and directories into files and
	// ingests each in order. The first pipeline error aborts the run.
	IngestPaths(ctx context.Context, patterns []string) ([]domain.IngestReport, error)

	// Watch blocks, re-ingesting files under dir as they change.
	// Per-file errors are logged and do not stop the watcher.
	Watch(ctx context.Context, dir string) error

	// Status returns the current ingest progress.
	Status(ctx context.Context) (*IngestStatus, error)
}

// IngestStatus represents the state of an ingest run.
type IngestStatus struct {
	// Running indicates if an ingest is currently in progress.
	Running bool

	// CurrentFile is the file being processed, empty when idle.
	CurrentFile string

	// DocumentsProcessed is the count of files processed so far.
	DocumentsProcessed int

	// ErrorCount is the number of errors encountered.
	ErrorCount int
}
