package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driving"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [path|glob]...",
	Short: "Ingest documents into chunk files and the catalogue",
	Long: `Ingest runs each matching file through the pipeline: extract text,
clean it, split it into overlapping chunks, write a JSON chunk file and
record the document in the catalogue.

Arguments may be files, directories (walked recursively for supported
extensions) or doublestar globs. Unchanged files are skipped unless
--force is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

// Ingest command flags.
var (
	ingestOutputDir    string
	ingestTargetWords  int
	ingestOverlapWords int
	ingestMinChars     int
	ingestForce        bool
	ingestNoOCR        bool
	ingestJSON         bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestOutputDir, "out", "o", "", "Output directory for chunk files")
	ingestCmd.Flags().IntVar(&ingestTargetWords, "chunk-words", 0, "Word-count target per chunk")
	ingestCmd.Flags().IntVar(&ingestOverlapWords, "overlap-words", -1, "Words repeated between consecutive chunks")
	ingestCmd.Flags().IntVar(&ingestMinChars, "min-chars", -1, "Minimum chunk length in characters")
	ingestCmd.Flags().BoolVarP(&ingestForce, "force", "f", false, "Re-ingest files even when unchanged")
	ingestCmd.Flags().BoolVar(&ingestNoOCR, "no-ocr", false, "Disable the OCR fallback for scanned PDFs")
	ingestCmd.Flags().BoolVar(&ingestJSON, "json", false, "Print machine-readable reports")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestFactory == nil {
		return errors.New("ingest service not configured")
	}

	orchestrator, err := ingestFactory(IngestOptions{
		OutputDir:    ingestOutputDir,
		TargetWords:  ingestTargetWords,
		OverlapWords: ingestOverlapWords,
		MinChars:     ingestMinChars,
		Force:        ingestForce,
		NoOCR:        ingestNoOCR,
	})
	if err != nil {
		return err
	}

	reports, runErr := ingestWithProgress(cmd, orchestrator, args)

	if ingestJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else if len(reports) > 0 {
		printIngestSummary(cmd, reports)
	}

	if runErr != nil {
		return fmt.Errorf("ingest failed: %w", runErr)
	}
	return nil
}

// ingestWithProgress runs the batch while polling status for display.
func ingestWithProgress(
	cmd *cobra.Command,
	orchestrator driving.IngestOrchestrator,
	patterns []string,
) ([]domain.IngestReport, error) {
	type result struct {
		reports []domain.IngestReport
		err     error
	}

	resCh := make(chan result, 1)
	go func() {
		reports, err := orchestrator.IngestPaths(cmd.Context(), patterns)
		resCh <- result{reports: reports, err: err}
	}()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	showProgress := !ingestJSON && isTerminal(cmd)
	lastLine := ""
	for {
		select {
		case res := <-resCh:
			if showProgress && lastLine != "" {
				cmd.Printf("\r%*s\r", len(lastLine), "")
			}
			return res.reports, res.err

		case <-ticker.C:
			if !showProgress {
				continue
			}
			status, err := orchestrator.Status(cmd.Context())
			if err != nil || !status.Running {
				continue
			}
			line := fmt.Sprintf("Processing %s (%d done)", status.CurrentFile, status.DocumentsProcessed)
			cmd.Printf("\r%-*s", len(lastLine), line)
			lastLine = line
		}
	}
}

// Summary styles. Colour is applied only when stdout is a terminal.
var (
	summaryHeaderStyle  = lipgloss.NewStyle().Bold(true)
	summarySkippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	summaryEmptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	summaryOKStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("77"))
)

func printIngestSummary(cmd *cobra.Command, reports []domain.IngestReport) {
	styled := isTerminal(cmd)

	var ingested, skipped, empty, totalChunks int

	cmd.Println(render(styled, summaryHeaderStyle, "Ingest summary"))
	for i := range reports {
		r := &reports[i]
		switch {
		case r.Skipped:
			skipped++
			cmd.Printf("  %s %s\n", render(styled, summarySkippedStyle, "skip"), r.SourceFile)
		case r.Empty:
			empty++
			cmd.Printf("  %s %s (no extractable text)\n", render(styled, summaryEmptyStyle, "empty"), r.SourceFile)
		default:
			ingested++
			totalChunks += r.ChunksKept
			cmd.Printf("  %s %s: %d chunk(s) -> %s (%s)\n",
				render(styled, summaryOKStyle, "ok"),
				r.SourceFile, r.ChunksKept, r.OutputPath, r.Duration.Round(time.Millisecond))
		}
	}
	cmd.Printf("\n%d ingested, %d skipped, %d empty, %d chunk(s) written\n",
		ingested, skipped, empty, totalChunks)
}

// render applies the style only for terminal output.
func render(styled bool, style lipgloss.Style, text string) string {
	if !styled {
		return text
	}
	return style.Render(text)
}

// isTerminal reports whether the command writes to a real terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
