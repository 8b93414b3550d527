// Package filesystem discovers source documents on the local
// filesystem. It implements the driven.Connector interface.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// DefaultPatterns are the glob patterns matched when none are
// configured.
var DefaultPatterns = []string{"*.pdf", "*.docx", "*.txt"}

// Connector scans a root directory for candidate documents.
type Connector struct {
	rootPath string
	patterns []string

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	closed  bool
}

// Option configures the connector.
type Option func(*Connector)

// WithPatterns sets the glob patterns files must match. A pattern with
// a path separator matches against the slash-separated path relative to
// the root; a bare pattern matches against the file's base name.
func WithPatterns(patterns []string) Option {
	return func(c *Connector) {
		if len(patterns) > 0 {
			c.patterns = patterns
		}
	}
}

// New creates a filesystem connector rooted at rootPath.
func New(rootPath string, opts ...Option) *Connector {
	c := &Connector{
		rootPath: rootPath,
		patterns: DefaultPatterns,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// Root returns the root path being scanned.
func (c *Connector) Root() string {
	return c.rootPath
}

// Validate checks the root exists and is a readable directory.
func (c *Connector) Validate(_ context.Context) error {
	info, err := os.Stat(c.rootPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: root path %s", domain.ErrNotFound, c.rootPath)
		}
		return fmt.Errorf("root path error: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: root path %s is not a directory", domain.ErrInvalidInput, c.rootPath)
	}
	if _, err := os.ReadDir(c.rootPath); err != nil {
		return fmt.Errorf("root path error: %w", err)
	}
	return nil
}

// FullSync walks the tree and emits every file matching the patterns.
// Hidden files and directories are skipped. Both channels are closed
// when the walk finishes or the context is cancelled.
func (c *Connector) FullSync(ctx context.Context) (<-chan domain.RawFile, <-chan error) {
	files := make(chan domain.RawFile)
	errs := make(chan error, 1)

	go func() {
		defer close(files)
		defer close(errs)

		err := filepath.WalkDir(c.rootPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			if d.IsDir() {
				if path != c.rootPath && isHidden(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if isHidden(d.Name()) || !c.matches(path) {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				return err
			}

			select {
			case files <- c.rawFile(path, info):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil {
			errs <- err
		}
	}()

	return files, errs
}

// Watch emits change events for matching files until the context is
// cancelled. New subdirectories are added to the watch as they appear.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.FileEvent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, fmt.Errorf("%w: filesystem connector", domain.ErrConnectorClosed)
	}
	if c.watcher != nil {
		return nil, fmt.Errorf("watch already running for %s", c.rootPath)
	}

	if _, err := os.Stat(c.rootPath); err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the whole tree, not just the root.
	err = filepath.WalkDir(c.rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != c.rootPath && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch tree: %w", err)
	}

	c.watcher = watcher

	events := make(chan domain.FileEvent)
	go c.watchLoop(ctx, watcher, events)

	return events, nil
}

func (c *Connector) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- domain.FileEvent) {
	defer close(events)
	defer func() {
		c.mu.Lock()
		if c.watcher == watcher {
			c.watcher = nil
		}
		c.mu.Unlock()
		watcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case fsEvent, ok := <-watcher.Events:
			if !ok {
				return
			}

			// A new directory joins the watch so files created inside
			// it are seen too.
			if fsEvent.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(fsEvent.Name); err == nil && info.IsDir() {
					if !isHidden(filepath.Base(fsEvent.Name)) {
						_ = watcher.Add(fsEvent.Name)
					}
					continue
				}
			}

			event, ok := c.handleFsEvent(fsEvent)
			if !ok {
				continue
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Watcher errors are transient; keep watching.
		}
	}
}

// handleFsEvent maps an fsnotify event to a domain event. Events for
// hidden or non-matching files, and bare chmods, are dropped.
func (c *Connector) handleFsEvent(fsEvent fsnotify.Event) (domain.FileEvent, bool) {
	name := filepath.Base(fsEvent.Name)
	if isHidden(name) || !c.matches(fsEvent.Name) {
		return domain.FileEvent{}, false
	}

	var changeType domain.ChangeType
	switch {
	case fsEvent.Op.Has(fsnotify.Create):
		changeType = domain.ChangeCreated
	case fsEvent.Op.Has(fsnotify.Write):
		changeType = domain.ChangeUpdated
	case fsEvent.Op.Has(fsnotify.Remove), fsEvent.Op.Has(fsnotify.Rename):
		changeType = domain.ChangeDeleted
	default:
		return domain.FileEvent{}, false
	}

	file := domain.RawFile{
		Path: fsEvent.Name,
		URI:  fileURI(fsEvent.Name),
		Name: name,
		Ext:  strings.ToLower(filepath.Ext(name)),
	}
	if changeType != domain.ChangeDeleted {
		if info, err := os.Stat(fsEvent.Name); err == nil {
			if info.IsDir() {
				return domain.FileEvent{}, false
			}
			file.SizeBytes = info.Size()
			file.ModifiedAt = info.ModTime()
		}
	}

	return domain.FileEvent{Type: changeType, File: file}, true
}

// Close releases watcher resources. Safe to call multiple times.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if c.watcher != nil {
		err := c.watcher.Close()
		c.watcher = nil
		return err
	}
	return nil
}

// matches reports whether the path matches any configured pattern.
func (c *Connector) matches(path string) bool {
	rel, err := filepath.Rel(c.rootPath, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, pattern := range c.patterns {
		target := base
		if strings.Contains(pattern, "/") {
			target = rel
		}
		if ok, err := doublestar.Match(strings.ToLower(pattern), strings.ToLower(target)); err == nil && ok {
			return true
		}
	}
	return false
}

func (c *Connector) rawFile(path string, info fs.FileInfo) domain.RawFile {
	return domain.RawFile{
		Path:       path,
		URI:        fileURI(path),
		Name:       info.Name(),
		Ext:        strings.ToLower(filepath.Ext(path)),
		SizeBytes:  info.Size(),
		ModifiedAt: info.ModTime(),
	}
}

// isHidden reports whether a file or directory name is hidden.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// fileURI converts an absolute path to a file URI.
func fileURI(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "file://" + filepath.ToSlash(abs)
}
