// Package mcp provides an MCP (Model Context Protocol) server adapter for
// corpora. It lets AI assistants chunk text and drive the ingestion pipeline.
package mcp

import "errors"

// ErrMissingIngestService is returned when the ingest orchestrator is not provided.
var ErrMissingIngestService = errors.New("mcp: ingest service is required")
