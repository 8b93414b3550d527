// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Connector: Discovers candidate files in a source directory
//   - Extractor: Pulls raw text out of one file format
//   - ExtractorRegistry: Dispatches extraction by file extension
//   - PostProcessor: One stage of the chunk pipeline
//   - PostProcessorPipeline: The ordered chunking pipeline
//   - DocumentStore: Document and chunk catalogue persistence
//   - ChunkWriter: Chunk record serialisation for downstream consumers
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - OCREngine: Per-page text recognition for scanned PDFs. Without it
//     (or without CGO), extraction keeps text-layer results only.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or extractor package
package driven
