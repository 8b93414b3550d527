package domain

import "time"

// Document represents one ingested source file and its extracted text.
// It is the canonical representation after extraction and cleaning.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the original location as a file URI.
	URI string

	// Title is the human-readable title, derived from the file name.
	Title string

	// Format identifies the source file format.
	Format DocumentFormat

	// Content is the full cleaned text content.
	// This is the complete document text before chunking.
	Content string

	// Checksum is the SHA-256 hex digest of the raw file bytes.
	// Re-ingestion of an unchanged file is skipped by comparing checksums.
	Checksum string

	// SizeBytes is the raw file size.
	SizeBytes int64

	// Metadata contains extraction extras (page counts, OCR usage, etc).
	Metadata map[string]any

	// ModifiedAt is the source file's modification time.
	ModifiedAt time.Time

	// IngestedAt is when the document was last ingested.
	IngestedAt time.Time
}

// Chunk represents one bounded unit of document text.
// Documents are split into chunks for downstream indexing.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Content is the text content of this chunk.
	Content string

	// Position is the ordinal position within the document's chunk
	// sequence. Positions are assigned before size filtering, so the
	// surviving sequence may contain gaps.
	Position int

	// Metadata is the chunk's descriptive record, serialised alongside
	// the content in pipeline output.
	Metadata ChunkMetadata
}

// ChunkMetadata describes a chunk for downstream consumers.
// Field names follow the serialised record format exactly.
type ChunkMetadata struct {
	// ChunkID mirrors the chunk's ID.
	ChunkID string `json:"chunk_id"`

	// SourceFile is the base name of the originating file.
	SourceFile string `json:"source_file"`

	// ChunkIndex is the chunk's position in the pre-filter sequence.
	ChunkIndex int `json:"chunk_index"`

	// WordCount is the number of whitespace-delimited words.
	WordCount int `json:"word_count"`

	// ProcessedAt is when the chunk was generated (UTC).
	ProcessedAt time.Time `json:"processed_at"`

	// InferredTitle is a heuristic section title: the chunk's first
	// line when short and capitalised, "Unknown" otherwise.
	InferredTitle string `json:"inferred_title"`

	// CharCount is the content length in runes.
	CharCount int `json:"char_count"`
}
