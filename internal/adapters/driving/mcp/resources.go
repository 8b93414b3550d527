package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for corpora resources.
	uriScheme = "corpora://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing catalogued documents.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "documents",
		Name:        "documents",
		Description: "List of all catalogued documents",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)

	// Template for one document and its chunks.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "document",
		Description: "A catalogued document with its chunks",
		MIMEType:    "application/json",
	}, s.handleDocumentResource)
}

// handleDocumentsResource returns a list of all catalogued documents.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Document == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	docs, err := s.ports.Document.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	// Build simplified document list.
	type docInfo struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Format   string `json:"format"`
		URI      string `json:"uri"`
		Ingested string `json:"ingested_at"`
	}

	infos := make([]docInfo, len(docs))
	for i := range docs {
		infos[i] = docInfo{
			ID:       docs[i].ID,
			Title:    docs[i].Title,
			Format:   docs[i].Format.String(),
			URI:      docs[i].URI,
			Ingested: docs[i].IngestedAt.Format("2006-01-02 15:04:05"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentResource returns one document together with its chunks.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Document == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract documentId from URI: corpora://documents/{documentId}
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Document.Get(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}

	chunks, err := s.ports.Document.GetChunks(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("getting chunks: %w", err)
	}

	type chunkInfo struct {
		Position      int    `json:"position"`
		WordCount     int    `json:"word_count"`
		CharCount     int    `json:"char_count"`
		InferredTitle string `json:"inferred_title,omitempty"`
		Content       string `json:"content"`
	}

	payload := struct {
		ID       string      `json:"id"`
		Title    string      `json:"title"`
		Format   string      `json:"format"`
		URI      string      `json:"uri"`
		Checksum string      `json:"checksum"`
		Chunks   []chunkInfo `json:"chunks"`
	}{
		ID:       doc.ID,
		Title:    doc.Title,
		Format:   doc.Format.String(),
		URI:      doc.URI,
		Checksum: doc.Checksum,
		Chunks:   make([]chunkInfo, len(chunks)),
	}
	for i := range chunks {
		payload.Chunks[i] = chunkInfo{
			Position:      chunks[i].Position,
			WordCount:     chunks[i].Metadata.WordCount,
			CharCount:     chunks[i].Metadata.CharCount,
			InferredTitle: chunks[i].Metadata.InferredTitle,
			Content:       chunks[i].Content,
		}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDocumentID extracts the document ID from a URI like corpora://documents/{documentId}.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
