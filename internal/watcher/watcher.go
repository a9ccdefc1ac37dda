package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/3-lines-studio/gjallar/internal/config"
	"github.com/3-lines-studio/gjallar/internal/config/logger"
)

// Watcher reports source changes under the project root
type Watcher interface {
	Start(ctx context.Context, onChange FlushFunc) error
	Close()
}

type watcher struct {
	root      string
	matcher   Matcher
	debounce  config.Watch
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	cancel    context.CancelFunc
	log       logger.Logger
	mu        sync.Mutex
	closed    bool
}

// NewWatcher creates a Watcher for cfg.Root that skips the build output,
// its staging directories and the configured ignore globs
func NewWatcher(cfg config.Config, log logger.Logger) (Watcher, error) {
	ignores := append([]string{}, cfg.Watch.Ignore...)
	ignores = append(ignores, outputIgnores(cfg)...)

	matcher, err := NewMatcher(ignores)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &watcher{
		root:      cfg.Root,
		matcher:   matcher,
		debounce:  cfg.Watch,
		fsWatcher: fsw,
		log:       log.WithComponent("WATCHER"),
	}, nil
}

// outputIgnores returns globs for outDir and the builder's staging dirs when they sit inside the root
func outputIgnores(cfg config.Config) []string {
	rel, err := filepath.Rel(cfg.Root, cfg.Build.OutDir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}

	rel = filepath.ToSlash(rel)
	staging := filepath.ToSlash(filepath.Join(filepath.Dir(rel), "."+filepath.Base(rel)+"-staging-*"))

	return []string{rel + "/**", staging + "/**"}
}

// Start watches the root until ctx ends or Close is called. onChange
// receives a context that ends with the watcher.
func (w *watcher) Start(ctx context.Context, onChange FlushFunc) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.addDirRecursive(w.root); err != nil {
		return err
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.debouncer = NewDebouncer(w.debounce.Debounce, onChange)

	go w.debouncer.Run(ctx)
	go w.processEvents()

	go func() {
		<-ctx.Done()
		w.Close()
	}()

	w.log.Info().Msgf("Watching %s", w.root)

	return nil
}

func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true

	if w.cancel != nil {
		w.cancel()
	}

	w.fsWatcher.Close()
}

func (w *watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

func (w *watcher) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	relPath, err := filepath.Rel(w.root, event.Name)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return
	}

	if w.matcher.Ignored(relPath) {
		return
	}

	if event.Has(fsnotify.Create) {
		w.handleCreate(event.Name, relPath)
	}

	w.log.Debug().Str("file", relPath).Str("op", event.Op.String()).Msg("Change detected")
	w.debouncer.Add(filepath.ToSlash(relPath))
}

// handleCreate adds newly created directories to the watch list
func (w *watcher) handleCreate(path, relPath string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	if shouldSkipDir(info.Name()) || w.matcher.IgnoredDir(relPath) {
		return
	}

	if err := w.addDirRecursive(path); err != nil {
		w.log.Warn().Err(err).Msgf("Failed to watch new directory: %s", path)
	}
}

// addDirRecursive adds a directory and all subdirectories to the watch list
func (w *watcher) addDirRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if path != w.root {
			rel, relErr := filepath.Rel(w.root, path)
			if relErr == nil && (shouldSkipDir(d.Name()) || w.matcher.IgnoredDir(rel)) {
				return filepath.SkipDir
			}
		}

		if err := w.fsWatcher.Add(path); err != nil {
			w.log.Warn().Err(err).Msgf("Failed to watch directory: %s", path)
		}

		return nil
	})
}

// isRelevantEvent returns true if the event should trigger a rebuild
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}

// shouldSkipDir returns true if the directory should never be watched
func shouldSkipDir(name string) bool {
	switch name {
	case ".git", "node_modules", ".idea", ".vscode":
		return true
	}

	return false
}
