package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/corpora-cli/internal/cleaning"
	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driving"
	"github.com/custodia-labs/corpora-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestOrchestrator = (*IngestService)(nil)

// watchBurstInterval is the minimum spacing between re-ingests driven by
// filesystem events. Editors fire bursts of writes for a single save.
const watchBurstInterval = 500 * time.Millisecond

// IngestService coordinates the document ingestion pipeline:
// extract, clean, chunk, persist.
type IngestService struct {
	extractors driven.ExtractorRegistry
	pipeline   driven.PostProcessorPipeline
	writer     driven.ChunkWriter
	docStore   driven.DocumentStore
	connectors driven.ConnectorFactory
	patterns   []string
	force      bool

	status ingestStatus
}

// ingestStatus tracks progress of the active run.
type ingestStatus struct {
	mu                 sync.RWMutex
	running            bool
	currentFile        string
	documentsProcessed int
	errorCount         int
}

// IngestOption configures an IngestService.
type IngestOption func(*IngestService)

// WithForce re-ingests files even when their checksum matches the
// catalogue.
func WithForce(force bool) IngestOption {
	return func(s *IngestService) {
		s.force = force
	}
}

// WithPatterns sets the glob patterns used for directory walks and the
// watcher. Defaults to the supported-extension patterns.
func WithPatterns(patterns []string) IngestOption {
	return func(s *IngestService) {
		if len(patterns) > 0 {
			s.patterns = patterns
		}
	}
}

// NewIngestService creates a new ingest orchestrator.
func NewIngestService(
	extractors driven.ExtractorRegistry,
	pipeline driven.PostProcessorPipeline,
	writer driven.ChunkWriter,
	docStore driven.DocumentStore,
	connectors driven.ConnectorFactory,
	opts ...IngestOption,
) *IngestService {
	s := &IngestService{
		extractors: extractors,
		pipeline:   pipeline,
		writer:     writer,
		docStore:   docStore,
		connectors: connectors,
		patterns:   []string{"*.pdf", "*.docx", "*.txt"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IngestFile runs the pipeline for a single file.
//
//nolint:gocyclo // Pipeline orchestration with necessary sequential steps
func (s *IngestService) IngestFile(ctx context.Context, path string) (*domain.IngestReport, error) {
	start := time.Now()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}

	report := &domain.IngestReport{
		Path:       path,
		SourceFile: filepath.Base(absPath),
	}

	uri := fileURI(absPath)

	checksum, err := fileChecksum(absPath)
	if err != nil {
		return nil, fmt.Errorf("checksum %s: %w", path, err)
	}

	// 1. SKIP UNCHANGED FILES
	existing, err := s.docStore.GetDocumentByURI(ctx, uri)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("look up %s: %w", uri, err)
	}
	if existing != nil && existing.Checksum == checksum && !s.force {
		logger.Debug("Skipping %s: checksum unchanged", path)
		report.DocumentID = existing.ID
		report.Skipped = true
		report.Duration = time.Since(start)
		return report, nil
	}

	// 2. EXTRACT
	logger.Debug("Extracting: %s", path)
	extracted, err := s.extractors.Extract(ctx, absPath)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}
	if strings.TrimSpace(extracted.Content) == "" {
		logger.Debug("No extractable text in %s", path)
		report.Empty = true
		report.Duration = time.Since(start)
		return report, nil
	}

	extractor, err := s.extractors.ExtractorFor(absPath)
	if err != nil {
		return nil, fmt.Errorf("resolve format for %s: %w", path, err)
	}

	// 3. CLEAN
	content := cleaning.Clean(extracted.Content)

	doc := &domain.Document{
		ID:         uuid.New().String(),
		URI:        uri,
		Title:      filepath.Base(absPath),
		Format:     extractor.Format(),
		Content:    content,
		Checksum:   checksum,
		SizeBytes:  info.Size(),
		Metadata:   extracted.Metadata,
		ModifiedAt: info.ModTime(),
		IngestedAt: time.Now().UTC(),
	}
	if existing != nil {
		doc.ID = existing.ID
	}

	// 4. CHUNK
	chunks, err := s.pipeline.Process(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("process %s: %w", path, err)
	}

	// 5. WRITE CHUNK OUTPUT
	outputPath, err := s.writer.Write(ctx, doc, chunks)
	if err != nil {
		return nil, fmt.Errorf("write chunks for %s: %w", path, err)
	}

	// 6. CATALOGUE
	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document %s: %w", path, err)
	}
	if err := s.docStore.SaveChunks(ctx, doc.ID, chunks); err != nil {
		return nil, fmt.Errorf("save chunks for %s: %w", path, err)
	}

	report.DocumentID = doc.ID
	report.OutputPath = outputPath
	report.ChunksKept = len(chunks)
	report.ChunksProduced = chunksProduced(chunks)
	report.Duration = time.Since(start)
	return report, nil
}

// IngestPaths resolves paths, globs and directories into files and
// ingests each in order. The first pipeline error aborts the run.
func (s *IngestService) IngestPaths(ctx context.Context, patterns []string) ([]domain.IngestReport, error) {
	files, err := s.resolvePatterns(patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files match %s", domain.ErrNotFound, strings.Join(patterns, ", "))
	}

	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	logger.Section(fmt.Sprintf("Ingesting %d file(s)", len(files)))

	reports := make([]domain.IngestReport, 0, len(files))
	for _, file := range files {
		s.setCurrentFile(file)

		report, err := s.IngestFile(ctx, file)
		if err != nil {
			s.recordError()
			return reports, err
		}
		s.recordProcessed()
		reports = append(reports, *report)
	}

	return reports, nil
}

// Watch blocks, re-ingesting files under dir as they change.
// Per-file errors are logged and do not stop the watcher.
func (s *IngestService) Watch(ctx context.Context, dir string) error {
	if s.connectors == nil {
		return fmt.Errorf("%w: no connector factory configured", domain.ErrInvalidConfig)
	}

	connector, err := s.connectors(dir, s.patterns)
	if err != nil {
		return fmt.Errorf("create connector: %w", err)
	}
	defer connector.Close()

	if err := connector.Validate(ctx); err != nil {
		return fmt.Errorf("validate %s: %w", dir, err)
	}

	events, err := connector.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	limiter := rate.NewLimiter(rate.Every(watchBurstInterval), 1)

	// Bring the catalogue up to date before reacting to changes.
	if err := s.initialScan(ctx, connector, limiter); err != nil {
		return err
	}

	logger.Info("Watching %s", connector.Root())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := s.handleEvent(ctx, limiter, event); err != nil {
				return err
			}
		}
	}
}

// Status returns the current ingest progress.
func (s *IngestService) Status(_ context.Context) (*driving.IngestStatus, error) {
	s.status.mu.RLock()
	defer s.status.mu.RUnlock()
	return &driving.IngestStatus{
		Running:            s.status.running,
		CurrentFile:        s.status.currentFile,
		DocumentsProcessed: s.status.documentsProcessed,
		ErrorCount:         s.status.errorCount,
	}, nil
}

// initialScan ingests every file the connector currently sees, with
// the same error tolerance as event handling.
func (s *IngestService) initialScan(ctx context.Context, connector driven.Connector, limiter *rate.Limiter) error {
	files, errs := connector.FullSync(ctx)
	for file := range files {
		event := domain.FileEvent{Type: domain.ChangeUpdated, File: file}
		if err := s.handleEvent(ctx, limiter, event); err != nil {
			return err
		}
	}
	if err := <-errs; err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("scan %s: %w", connector.Root(), err)
	}
	return nil
}

// handleEvent re-ingests or removes one file in response to a watcher
// event. Pipeline errors are logged and swallowed so the watcher
// survives a single bad file; only context cancellation propagates.
func (s *IngestService) handleEvent(ctx context.Context, limiter *rate.Limiter, event domain.FileEvent) error {
	switch event.Type {
	case domain.ChangeCreated, domain.ChangeUpdated:
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		s.setCurrentFile(event.File.Path)
		if _, err := s.IngestFile(ctx, event.File.Path); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.recordError()
			logger.Warn("Failed to ingest %s: %v", event.File.Path, err)
			return nil
		}
		s.recordProcessed()

	case domain.ChangeDeleted:
		if err := s.removeByURI(ctx, event.File.URI); err != nil {
			s.recordError()
			logger.Warn("Failed to remove %s: %v", event.File.Path, err)
			return nil
		}
		logger.Info("Removed %s from catalogue", event.File.Path)
	}
	return nil
}

// removeByURI drops a deleted file's document from the catalogue.
func (s *IngestService) removeByURI(ctx context.Context, uri string) error {
	doc, err := s.docStore.GetDocumentByURI(ctx, uri)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil // never catalogued
		}
		return err
	}
	return s.docStore.DeleteDocument(ctx, doc.ID)
}

// resolvePatterns expands the given arguments into a sorted, de-duplicated
// file list. Each argument is an existing file, an existing directory
// (walked recursively for supported extensions), or a doublestar glob.
func (s *IngestService) resolvePatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, pattern := range patterns {
		info, err := os.Stat(pattern)
		switch {
		case err == nil && info.IsDir():
			if err := s.walkDirectory(pattern, add); err != nil {
				return nil, fmt.Errorf("walk %s: %w", pattern, err)
			}

		case err == nil:
			add(pattern)

		default:
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return nil, fmt.Errorf("%w: bad pattern %q: %v", domain.ErrInvalidInput, pattern, err)
			}
			for _, match := range matches {
				if info, err := os.Stat(match); err == nil && !info.IsDir() {
					add(match)
				}
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// walkDirectory collects files with supported extensions under root.
func (s *IngestService) walkDirectory(root string, add func(string)) error {
	supported := make(map[string]bool)
	for _, ext := range s.extractors.SupportedExtensions() {
		supported[ext] = true
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		base := filepath.Base(path)
		if strings.HasPrefix(base, ".") && base != "." && base != ".." {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if supported[strings.ToLower(filepath.Ext(path))] {
			add(path)
		}
		return nil
	})
}

// begin marks an ingest run active, rejecting concurrent runs.
func (s *IngestService) begin() error {
	s.status.mu.Lock()
	defer s.status.mu.Unlock()
	if s.status.running {
		return domain.ErrIngestInProgress
	}
	s.status.running = true
	s.status.currentFile = ""
	s.status.documentsProcessed = 0
	s.status.errorCount = 0
	return nil
}

// end marks the run finished.
func (s *IngestService) end() {
	s.status.mu.Lock()
	defer s.status.mu.Unlock()
	s.status.running = false
	s.status.currentFile = ""
}

func (s *IngestService) setCurrentFile(path string) {
	s.status.mu.Lock()
	defer s.status.mu.Unlock()
	s.status.currentFile = path
}

func (s *IngestService) recordProcessed() {
	s.status.mu.Lock()
	defer s.status.mu.Unlock()
	s.status.documentsProcessed++
}

func (s *IngestService) recordError() {
	s.status.mu.Lock()
	defer s.status.mu.Unlock()
	s.status.errorCount++
}

// chunksProduced recovers the pre-filter chunk count from surviving
// positions. Positions are assigned before size filtering, so the last
// survivor's position bounds the produced count.
func chunksProduced(chunks []domain.Chunk) int {
	if len(chunks) == 0 {
		return 0
	}
	return chunks[len(chunks)-1].Position + 1
}

// fileChecksum returns the SHA-256 hex digest of the file's bytes.
func fileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// fileURI converts an absolute path to a file URI.
func fileURI(absPath string) string {
	return "file://" + filepath.ToSlash(absPath)
}
