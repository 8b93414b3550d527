package mcp

import (
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ingest runs documents through the pipeline.
	Ingest driving.IngestOrchestrator

	// ForceIngest re-ingests regardless of checksum. Optional: when nil,
	// forced requests fall back to Ingest.
	ForceIngest driving.IngestOrchestrator

	// Document reads the catalogue.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ingest == nil {
		return ErrMissingIngestService
	}
	// Document is optional: resources degrade to empty listings.
	return nil
}
