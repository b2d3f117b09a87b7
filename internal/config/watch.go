package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"pomodoro/internal/core/model"
)

// Source yields the current configuration snapshot.
type Source interface {
	Read() (model.SessionConfig, error)
}

// reloadDelay coalesces the burst of events a single save produces.
const reloadDelay = 100 * time.Millisecond

// Watcher re-reads a Source whenever its settings file changes.
type Watcher struct {
	path     string
	source   Source
	onChange func(model.SessionConfig)
}

// NewWatcher creates a watcher for the file at path.
func NewWatcher(path string, source Source, onChange func(model.SessionConfig)) *Watcher {
	return &Watcher{path: path, source: source, onChange: onChange}
}

// Run watches until ctx is done. The directory is watched rather than the
// file so that editors which replace the file are still seen; it is created
// when missing so a file saved later is picked up.
func (watcher *Watcher) Run(ctx context.Context) error {
	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer notify.Close()

	dir := filepath.Dir(watcher.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := notify.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(watcher.path)

	debounce := time.NewTimer(reloadDelay)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-debounce.C:
			watcher.reload()
		case event, ok := <-notify.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			debounce.Reset(reloadDelay)
		case err, ok := <-notify.Errors:
			if !ok {
				return nil
			}
			slog.Warn("settings watcher error", "error", err)
		}
	}
}

func (watcher *Watcher) reload() {
	config, err := watcher.source.Read()
	if err != nil {
		slog.Warn("reload settings failed, keeping current configuration", "path", watcher.path, "error", err)
		return
	}
	slog.Info("settings reloaded", "path", watcher.path)
	watcher.onChange(config)
}
