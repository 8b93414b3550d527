// Package cli implements the corpora command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driving"
	"github.com/custodia-labs/corpora-cli/internal/logger"
)

// version is injected at build time via ldflags.
var version = "dev"

// verbose enables debug logging on all commands.
var verbose bool

// Injected services. Set by main during start-up.
var (
	documentService  driving.DocumentService
	settingsService  driving.SettingsService
	ingestFactory    IngestFactory
	extractorFactory ExtractorFactory
)

// IngestOptions carries per-invocation overrides from command flags.
// An empty OutputDir, a zero TargetWords and a negative OverlapWords or
// MinChars mean "use the configured setting"; zero is a legal override
// for the latter two.
type IngestOptions struct {
	OutputDir    string
	TargetWords  int
	OverlapWords int
	MinChars     int
	Force        bool
	NoOCR        bool
}

// defaultIngestOptions returns options that defer entirely to the
// configured settings.
func defaultIngestOptions() IngestOptions {
	return IngestOptions{OverlapWords: -1, MinChars: -1}
}

// IngestFactory builds an ingest orchestrator for one invocation.
// The CLI constructs a fresh orchestrator per run so flag overrides do
// not leak into the persisted settings.
type IngestFactory func(opts IngestOptions) (driving.IngestOrchestrator, error)

// ExtractorFactory builds an extractor registry, with or without the
// OCR fallback.
type ExtractorFactory func(ocrEnabled bool) driven.ExtractorRegistry

var rootCmd = &cobra.Command{
	Use:   "corpora",
	Short: "Prepare document corpora for retrieval pipelines",
	Long: `Corpora ingests PDF, Word and plain-text documents, extracts and
cleans their text, splits it into overlapping word-budget chunks and
writes per-document JSON chunk files alongside a local catalogue.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Execute runs the root command. The context is threaded through to
// commands so in-flight work stops on interrupt.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetDocumentService injects the document service.
func SetDocumentService(s driving.DocumentService) {
	documentService = s
}

// SetSettingsService injects the settings service.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetIngestFactory injects the ingest orchestrator factory.
func SetIngestFactory(f IngestFactory) {
	ingestFactory = f
}

// SetExtractorFactory injects the extractor registry factory.
func SetExtractorFactory(f ExtractorFactory) {
	extractorFactory = f
}
