package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and re-ingest files as they change",
	Long: `Watch brings the catalogue up to date with the directory's current
contents, then monitors the tree and re-runs the ingestion pipeline
whenever a matching file is created or modified. Deleted files are
removed from the catalogue. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&ingestNoOCR, "no-ocr", false, "Disable the OCR fallback for scanned PDFs")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ingestFactory == nil {
		return errors.New("ingest service not configured")
	}

	opts := defaultIngestOptions()
	opts.NoOCR = ingestNoOCR
	orchestrator, err := ingestFactory(opts)
	if err != nil {
		return err
	}

	dir := args[0]
	cmd.Printf("Watching %s (Ctrl+C to stop)\n", dir)

	if err := orchestrator.Watch(cmd.Context(), dir); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
