package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/corpora-cli/internal/cleaning"
	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/postprocessors"
)

// ChunkTextInput is the input schema for the chunk_text tool.
type ChunkTextInput struct {
	Text          string `json:"text" jsonschema:"the text to split into chunks"`
	TargetWords   int    `json:"target_words,omitempty" jsonschema:"word-count target per chunk (default 500)"`
	OverlapWords  int    `json:"overlap_words,omitempty" jsonschema:"words repeated between consecutive chunks (default 50)"`
	MinChunkChars int    `json:"min_chunk_chars,omitempty" jsonschema:"minimum chunk length in characters (default 50)"`
}

// ChunkTextOutput is the output schema for the chunk_text tool.
type ChunkTextOutput struct {
	Chunks []ChunkOutput `json:"chunks"`
	Count  int           `json:"count"`
}

// ChunkOutput represents a single produced chunk.
type ChunkOutput struct {
	Index         int    `json:"index"`
	WordCount     int    `json:"word_count"`
	CharCount     int    `json:"char_count"`
	InferredTitle string `json:"inferred_title,omitempty"`
	Content       string `json:"content"`
}

// IngestDocumentInput is the input schema for the ingest_document tool.
type IngestDocumentInput struct {
	Path  string `json:"path" jsonschema:"path to the file to ingest"`
	Force bool   `json:"force,omitempty" jsonschema:"re-ingest even when the file is unchanged"`
}

// IngestDocumentOutput is the output schema for the ingest_document tool.
type IngestDocumentOutput struct {
	DocumentID string `json:"document_id,omitempty"`
	SourceFile string `json:"source_file"`
	OutputPath string `json:"output_path,omitempty"`
	ChunksKept int    `json:"chunks_kept"`
	Skipped    bool   `json:"skipped"`
	Empty      bool   `json:"empty"`
	DurationMS int64  `json:"duration_ms"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "chunk_text",
		Description: "Split text into overlapping word-budget chunks",
	}, s.handleChunkText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ingest_document",
		Description: "Run one file through the ingestion pipeline: extract, clean, chunk, catalogue",
	}, s.handleIngestDocument)
}

// handleChunkText handles the chunk_text tool invocation.
// The text is cleaned and chunked in memory: nothing is persisted.
func (s *Server) handleChunkText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ChunkTextInput,
) (*mcp.CallToolResult, ChunkTextOutput, error) {
	settings := domain.DefaultAppSettings()
	if input.TargetWords > 0 {
		settings.Chunking.TargetWords = input.TargetWords
	}
	if input.OverlapWords > 0 {
		settings.Chunking.OverlapWords = input.OverlapWords
	}
	if input.MinChunkChars > 0 {
		settings.Chunking.MinChunkChars = input.MinChunkChars
	}
	if err := settings.Chunking.Validate(); err != nil {
		return nil, ChunkTextOutput{}, err
	}

	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)
	pipeline, err := postprocessors.BuildPipeline(registry, settings.PipelineConfig())
	if err != nil {
		return nil, ChunkTextOutput{}, err
	}

	doc := &domain.Document{
		ID:         uuid.New().String(),
		Title:      "text",
		Format:     domain.FormatText,
		Content:    cleaning.Clean(input.Text),
		IngestedAt: time.Now().UTC(),
	}

	chunks, err := pipeline.Process(ctx, doc)
	if err != nil {
		return nil, ChunkTextOutput{}, err
	}

	output := ChunkTextOutput{
		Chunks: make([]ChunkOutput, len(chunks)),
		Count:  len(chunks),
	}
	for i := range chunks {
		output.Chunks[i] = ChunkOutput{
			Index:         chunks[i].Position,
			WordCount:     chunks[i].Metadata.WordCount,
			CharCount:     chunks[i].Metadata.CharCount,
			InferredTitle: chunks[i].Metadata.InferredTitle,
			Content:       chunks[i].Content,
		}
	}

	return nil, output, nil
}

// handleIngestDocument handles the ingest_document tool invocation.
func (s *Server) handleIngestDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IngestDocumentInput,
) (*mcp.CallToolResult, IngestDocumentOutput, error) {
	orchestrator := s.ports.Ingest
	if input.Force && s.ports.ForceIngest != nil {
		orchestrator = s.ports.ForceIngest
	}

	report, err := orchestrator.IngestFile(ctx, input.Path)
	if err != nil {
		return nil, IngestDocumentOutput{}, err
	}

	return nil, IngestDocumentOutput{
		DocumentID: report.DocumentID,
		SourceFile: report.SourceFile,
		OutputPath: report.OutputPath,
		ChunksKept: report.ChunksKept,
		Skipped:    report.Skipped,
		Empty:      report.Empty,
		DurationMS: report.Duration.Milliseconds(),
	}, nil
}
