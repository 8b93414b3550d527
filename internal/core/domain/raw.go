package domain

import "time"

// RawFile represents a candidate file discovered by a connector.
// It is the connector's output before extraction.
type RawFile struct {
	// Path is the absolute filesystem path.
	Path string

	// URI is the file URI form of Path.
	URI string

	// Name is the base name of the file.
	Name string

	// Ext is the lower-cased file extension, including the dot.
	Ext string

	// SizeBytes is the file size.
	SizeBytes int64

	// ModifiedAt is the file's modification time.
	ModifiedAt time.Time
}

// ChangeType represents the type of file change.
type ChangeType int

const (
	// ChangeCreated indicates a new file.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates a modified file.
	ChangeUpdated

	// ChangeDeleted indicates a removed file.
	ChangeDeleted
)

// FileEvent represents a change event from a watching connector.
type FileEvent struct {
	// Type is the kind of change.
	Type ChangeType

	// File is the affected file.
	File RawFile
}

// ExtractedText is the raw text pulled from one source file, before
// cleaning. Ephemeral: consumed by the ingestion pipeline, not persisted.
type ExtractedText struct {
	// Content is the extracted text.
	Content string

	// Metadata carries extraction extras (page count, OCR page count).
	Metadata map[string]any
}

