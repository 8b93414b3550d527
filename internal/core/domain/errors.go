package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates rejected configuration values.
	// Chunking with a non-positive target or negative overlap fails fast
	// with this error rather than producing degenerate output.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedFormat indicates a file extension no extractor handles.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtractionFailed indicates a document container could not be parsed.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrEmptyDocument indicates extraction produced no usable text.
	// This is a non-fatal "nothing to do" outcome, not a pipeline failure.
	ErrEmptyDocument = errors.New("document contains no extractable text")

	// ErrOCRUnavailable indicates the OCR engine is not compiled in or not
	// operational. Extraction degrades to text-layer results.
	ErrOCRUnavailable = errors.New("OCR engine unavailable")

	// ErrIngestInProgress indicates an ingest run is already active.
	ErrIngestInProgress = errors.New("ingest in progress")

	// ErrConnectorClosed indicates the connector has been closed.
	ErrConnectorClosed = errors.New("connector closed")
)
