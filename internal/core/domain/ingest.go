package domain

import "time"

// IngestReport summarises the outcome of ingesting one file.
type IngestReport struct {
	// DocumentID is the catalogued document's ID. Empty when the file
	// was skipped or yielded no text.
	DocumentID string `json:"document_id,omitempty"`

	// Path is the source file path as given.
	Path string `json:"path"`

	// SourceFile is the base name of the source file.
	SourceFile string `json:"source_file"`

	// OutputPath is the chunk JSON file written for this document.
	OutputPath string `json:"output_path,omitempty"`

	// ChunksProduced is the chunk count before size filtering.
	ChunksProduced int `json:"chunks_produced"`

	// ChunksKept is the chunk count after size filtering.
	ChunksKept int `json:"chunks_kept"`

	// Skipped is true when the file's checksum matched the catalogue
	// and re-ingestion was not forced.
	Skipped bool `json:"skipped"`

	// Empty is true when extraction yielded no usable text.
	Empty bool `json:"empty"`

	// Duration is the wall-clock time spent on this file.
	Duration time.Duration `json:"duration"`
}
