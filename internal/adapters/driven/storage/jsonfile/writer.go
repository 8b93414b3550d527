// Package jsonfile writes per-document chunk output as JSON files.
// It implements the driven.ChunkWriter interface.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ChunkWriter = (*Writer)(nil)

// DefaultDirectory is the default output directory for chunk files.
const DefaultDirectory = "output_chunks"

// Writer persists a document's chunks as one JSON array file named
// <base>_processed.json in the output directory.
type Writer struct {
	directory string
}

// New creates a writer targeting the given directory.
// An empty directory falls back to the default.
func New(directory string) *Writer {
	if directory == "" {
		directory = DefaultDirectory
	}
	return &Writer{directory: directory}
}

// Directory returns the output directory.
func (w *Writer) Directory() string {
	return w.directory
}

// chunkRecord is the serialised form of one chunk.
type chunkRecord struct {
	Metadata domain.ChunkMetadata `json:"metadata"`
	Content  string               `json:"content"`
}

// Write serialises the chunks for doc and returns the artefact path.
// The file is a JSON array of {metadata, content} records, two-space
// indented with HTML escaping off so policy text stays readable. Zero
// chunks still writes a file holding an empty array; downstream
// tooling treats file presence as "this document was processed".
func (w *Writer) Write(ctx context.Context, doc *domain.Document, chunks []domain.Chunk) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if doc == nil {
		return "", domain.ErrInvalidInput
	}

	if err := os.MkdirAll(w.directory, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	records := make([]chunkRecord, 0, len(chunks))
	for _, chunk := range chunks {
		records = append(records, chunkRecord{
			Metadata: chunk.Metadata,
			Content:  chunk.Content,
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return "", fmt.Errorf("encoding chunks: %w", err)
	}

	path := filepath.Join(w.directory, outputName(doc))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}

// outputName derives <base>_processed.json from the document's source
// file name.
func outputName(doc *domain.Document) string {
	name := doc.Title
	if u, err := url.Parse(doc.URI); err == nil && u.Path != "" {
		name = filepath.Base(u.Path)
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return name + "_processed.json"
}
