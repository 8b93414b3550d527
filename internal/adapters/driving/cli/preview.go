package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpora-cli/internal/adapters/driving/tui/preview"
	"github.com/custodia-labs/corpora-cli/internal/cleaning"
	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/postprocessors"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Chunk a document and page through the result",
	Long: `Preview runs one file through extraction, cleaning and chunking
without writing anything: no chunk file, no catalogue entry. The result
opens in an interactive pager, or prints to stdout with --plain.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

// Preview command flags.
var (
	previewPlain        bool
	previewTargetWords  int
	previewOverlapWords int
	previewMinChars     int
	previewNoOCR        bool
)

func init() {
	previewCmd.Flags().BoolVar(&previewPlain, "plain", false, "Print chunks instead of opening the pager")
	previewCmd.Flags().IntVar(&previewTargetWords, "chunk-words", 0, "Word-count target per chunk")
	previewCmd.Flags().IntVar(&previewOverlapWords, "overlap-words", -1, "Words repeated between consecutive chunks")
	previewCmd.Flags().IntVar(&previewMinChars, "min-chars", -1, "Minimum chunk length in characters")
	previewCmd.Flags().BoolVar(&previewNoOCR, "no-ocr", false, "Disable the OCR fallback for scanned PDFs")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if extractorFactory == nil || settingsService == nil {
		return errors.New("preview not configured")
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve %s: %w", args[0], err)
	}

	registry := extractorFactory(!previewNoOCR)
	extracted, err := registry.Extract(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("extract %s: %w", args[0], err)
	}
	if strings.TrimSpace(extracted.Content) == "" {
		cmd.Println("No extractable text.")
		return nil
	}
	extractor, err := registry.ExtractorFor(path)
	if err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if previewTargetWords > 0 {
		settings.Chunking.TargetWords = previewTargetWords
	}
	if previewOverlapWords >= 0 {
		settings.Chunking.OverlapWords = previewOverlapWords
	}
	if previewMinChars >= 0 {
		settings.Chunking.MinChunkChars = previewMinChars
	}
	if err := settings.Chunking.Validate(); err != nil {
		return err
	}

	procRegistry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(procRegistry)
	pipeline, err := postprocessors.BuildPipeline(procRegistry, settings.PipelineConfig())
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	doc := &domain.Document{
		ID:         uuid.New().String(),
		URI:        "file://" + filepath.ToSlash(path),
		Title:      filepath.Base(path),
		Format:     extractor.Format(),
		Content:    cleaning.Clean(extracted.Content),
		Metadata:   extracted.Metadata,
		IngestedAt: time.Now().UTC(),
	}

	chunks, err := pipeline.Process(cmd.Context(), doc)
	if err != nil {
		return fmt.Errorf("process %s: %w", args[0], err)
	}
	if len(chunks) == 0 {
		cmd.Println("No chunks survived the minimum-size filter.")
		return nil
	}

	if previewPlain || !isTerminal(cmd) {
		printChunksPlain(cmd, doc, chunks)
		return nil
	}

	program := tea.NewProgram(preview.New(doc, chunks), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}
	return nil
}

func printChunksPlain(cmd *cobra.Command, doc *domain.Document, chunks []domain.Chunk) {
	cmd.Printf("%s: %d chunk(s)\n", doc.Title, len(chunks))
	for i := range chunks {
		chunk := &chunks[i]
		cmd.Printf("\n--- chunk %d/%d (%d words, %d chars) %s ---\n%s\n",
			i+1, len(chunks),
			chunk.Metadata.WordCount, chunk.Metadata.CharCount,
			chunk.Metadata.InferredTitle, chunk.Content)
	}
}
