package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Inspect the ingestion catalogue",
	Long:  `List, view, or delete catalogued documents and their chunks.`,
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogued documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentsList,
}

var documentsShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Show a document and its chunks",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsShow,
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Remove a document and its chunks from the catalogue",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsDelete,
}

// documentsJSON switches list and show output to JSON.
var documentsJSON bool

func init() {
	documentsListCmd.Flags().BoolVar(&documentsJSON, "json", false, "Print machine-readable output")
	documentsShowCmd.Flags().BoolVar(&documentsJSON, "json", false, "Print machine-readable output")

	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsShowCmd)
	documentsCmd.AddCommand(documentsDeleteCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docs, err := documentService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if documentsJSON {
		return printJSON(cmd, docs)
	}

	if len(docs) == 0 {
		cmd.Println("No documents in the catalogue.")
		return nil
	}

	for i := range docs {
		doc := &docs[i]
		cmd.Printf("  %s\n", doc.ID)
		cmd.Printf("    Title:    %s\n", doc.Title)
		cmd.Printf("    Format:   %s\n", doc.Format)
		cmd.Printf("    URI:      %s\n", doc.URI)
		cmd.Printf("    Ingested: %s\n", doc.IngestedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d document(s)\n", len(docs))
	return nil
}

func runDocumentsShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docID := args[0]
	ctx := cmd.Context()

	doc, err := documentService.Get(ctx, docID)
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	chunks, err := documentService.GetChunks(ctx, docID)
	if err != nil {
		return fmt.Errorf("failed to get chunks: %w", err)
	}

	if documentsJSON {
		return printJSON(cmd, map[string]any{
			"document": doc,
			"chunks":   chunks,
		})
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Title:    %s\n", doc.Title)
	cmd.Printf("  Format:   %s\n", doc.Format)
	cmd.Printf("  URI:      %s\n", doc.URI)
	cmd.Printf("  Size:     %d bytes\n", doc.SizeBytes)
	cmd.Printf("  Checksum: %s\n", doc.Checksum)
	cmd.Printf("  Ingested: %s\n", doc.IngestedAt.Format("2006-01-02 15:04:05"))

	if len(doc.Metadata) > 0 {
		cmd.Println("\n  Metadata:")
		for k, v := range doc.Metadata {
			cmd.Printf("    %s: %v\n", k, v)
		}
	}

	cmd.Printf("\n  Chunks: %d\n", len(chunks))
	for i := range chunks {
		chunk := &chunks[i]
		cmd.Printf("    [%d] %s (%d words, %d chars)\n",
			chunk.Position, chunk.Metadata.InferredTitle,
			chunk.Metadata.WordCount, chunk.Metadata.CharCount)
	}

	return nil
}

func runDocumentsDelete(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docID := args[0]
	if err := documentService.Delete(cmd.Context(), docID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Document %s removed from the catalogue.\n", docID)
	return nil
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
