package postprocessors

import (
	"fmt"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/corpora-cli/internal/postprocessors/chunker"
	"github.com/custodia-labs/corpora-cli/internal/postprocessors/metadata"
	"github.com/custodia-labs/corpora-cli/internal/postprocessors/minsize"
)

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register("chunker", buildChunker)
	r.Register("minsize", buildMinSize)
	r.Register("metadata", buildMetadata)
}

// BuildPipeline constructs a pipeline from configuration, resolving each
// named processor through the registry.
func BuildPipeline(r *Registry, cfg domain.PipelineConfig) (*Pipeline, error) {
	processors := make([]driven.PostProcessor, 0, len(cfg.Processors))
	for _, name := range cfg.Processors {
		processor, err := r.Build(name, cfg.GetProcessorConfig(name))
		if err != nil {
			return nil, fmt.Errorf("build processor %s: %w", name, err)
		}
		processors = append(processors, processor)
	}
	return NewPipeline(processors...), nil
}

// buildChunker creates a chunker processor from generic config.
// Supported config keys:
//   - target_words (int): Word-count target per chunk (default: 500)
//   - overlap_words (int): Overlapping words between chunks (default: 50)
func buildChunker(cfg map[string]any) (driven.PostProcessor, error) {
	var opts []chunker.Option

	if target, ok := getIntFromConfig(cfg, "target_words"); ok {
		opts = append(opts, chunker.WithTargetWords(target))
	}
	if overlap, ok := getIntFromConfig(cfg, "overlap_words"); ok {
		opts = append(opts, chunker.WithOverlapWords(overlap))
	}

	return chunker.New(opts...)
}

// buildMinSize creates a minimum-size filter from generic config.
// Supported config keys:
//   - min_chunk_chars (int): Minimum content length in runes (default: 50)
func buildMinSize(cfg map[string]any) (driven.PostProcessor, error) {
	var opts []minsize.Option

	if minChars, ok := getIntFromConfig(cfg, "min_chunk_chars"); ok {
		opts = append(opts, minsize.WithMinChars(minChars))
	}

	return minsize.New(opts...)
}

// buildMetadata creates a metadata processor. It takes no config.
func buildMetadata(_ map[string]any) (driven.PostProcessor, error) {
	return metadata.New(), nil
}

// getIntFromConfig extracts an int from generic config, reporting
// whether the key was present with a numeric value. Handles int, int64,
// and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) (int, bool) {
	val, ok := cfg[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
