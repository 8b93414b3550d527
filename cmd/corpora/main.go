// Command corpora prepares document corpora for retrieval pipelines:
// it extracts, cleans and chunks PDF, Word and plain-text files, writes
// per-document JSON chunk files and keeps a local SQLite catalogue.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	configfile "github.com/custodia-labs/corpora-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/corpora-cli/internal/adapters/driven/ocr/tesseract"
	"github.com/custodia-labs/corpora-cli/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/corpora-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/corpora-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/corpora-cli/internal/connectors/filesystem"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driving"
	"github.com/custodia-labs/corpora-cli/internal/core/services"
	"github.com/custodia-labs/corpora-cli/internal/extractors"
	"github.com/custodia-labs/corpora-cli/internal/postprocessors"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := wire()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	cli.Execute(ctx)
}

// wire assembles the adapters and services and injects them into the
// CLI. The returned store is held open for the process lifetime.
func wire() (*sqlite.Store, error) {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return nil, fmt.Errorf("opening config store: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	store, err := sqlite.NewStore("")
	if err != nil {
		return nil, fmt.Errorf("opening catalogue: %w", err)
	}
	docStore := store.DocumentStore()

	extractorFactory := func(ocrEnabled bool) driven.ExtractorRegistry {
		var engine driven.OCREngine
		if ocrEnabled {
			language := tesseract.DefaultLanguage
			if settings, err := settingsService.Get(); err == nil {
				if !settings.OCR.Enabled {
					return extractors.Default(nil)
				}
				if settings.OCR.Language != "" {
					language = settings.OCR.Language
				}
			}
			engine = tesseract.New(tesseract.WithLanguage(language))
		}
		return extractors.Default(engine)
	}

	ingestFactory := func(opts cli.IngestOptions) (driving.IngestOrchestrator, error) {
		settings, err := settingsService.Get()
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		if opts.TargetWords > 0 {
			settings.Chunking.TargetWords = opts.TargetWords
		}
		if opts.OverlapWords >= 0 {
			settings.Chunking.OverlapWords = opts.OverlapWords
		}
		if opts.MinChars >= 0 {
			settings.Chunking.MinChunkChars = opts.MinChars
		}
		if err := settings.Chunking.Validate(); err != nil {
			return nil, err
		}

		registry := postprocessors.NewRegistry()
		postprocessors.RegisterDefaults(registry)
		pipeline, err := postprocessors.BuildPipeline(registry, settings.PipelineConfig())
		if err != nil {
			return nil, fmt.Errorf("building pipeline: %w", err)
		}

		outputDir := settings.Output.Directory
		if opts.OutputDir != "" {
			outputDir = opts.OutputDir
		}

		connectorFactory := func(root string, patterns []string) (driven.Connector, error) {
			return filesystem.New(root, filesystem.WithPatterns(patterns)), nil
		}

		return services.NewIngestService(
			extractorFactory(!opts.NoOCR),
			pipeline,
			jsonfile.New(outputDir),
			docStore,
			connectorFactory,
			services.WithForce(opts.Force),
			services.WithPatterns(settings.Ingest.Patterns),
		), nil
	}

	cli.SetVersion(version)
	cli.SetDocumentService(services.NewDocumentService(docStore))
	cli.SetSettingsService(settingsService)
	cli.SetIngestFactory(ingestFactory)
	cli.SetExtractorFactory(extractorFactory)

	return store, nil
}
