package driven

import (
	"context"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// Connector discovers candidate files in a data source.
// The only built-in connector walks a local directory tree.
type Connector interface {
	// Type returns the connector type identifier.
	Type() string

	// Root returns the root path being scanned.
	Root() string

	// Validate checks the connector is ready to scan.
	// For the filesystem connector this checks the root exists and is a
	// readable directory.
	Validate(ctx context.Context) error

	// FullSync walks the source and emits every matching file.
	// Both channels are closed when the walk finishes or ctx is cancelled.
	FullSync(ctx context.Context) (<-chan domain.RawFile, <-chan error)

	// Watch emits change events for matching files until ctx is cancelled.
	// The returned channel is closed on cancellation or Close.
	Watch(ctx context.Context) (<-chan domain.FileEvent, error)

	// Close releases watcher resources.
	Close() error
}

// ConnectorFactory builds a connector rooted at the given directory,
// matching files against the given glob patterns.
type ConnectorFactory func(root string, patterns []string) (Connector, error)
