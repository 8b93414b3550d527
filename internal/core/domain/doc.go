// Package domain defines the core business entities for Corpora.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An ingested source file with its cleaned text
//   - Chunk: A bounded unit of document text with metadata
//   - RawFile: A candidate file discovered by a connector
//   - AppSettings: Chunking, output, OCR and discovery configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
