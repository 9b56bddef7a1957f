package proof

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settleDelay groups the bursts of events an editor emits for one save.
const settleDelay = 100 * time.Millisecond

// Watch checks path once, then again every time it is written, until ctx
// is done. Each outcome is handed to report.
func Watch(
	ctx context.Context,
	logger *zap.Logger,
	engine ProofEngine,
	path string,
	report func(*Report, error),
) error {
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so the directory is watched.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("error adding %s to watcher: %w", path, err)
	}

	report(engine.Run(path))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.After(settleDelay)
			}
		case <-pending:
			pending = nil
			report(engine.Run(path))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if logger != nil {
				logger.Warn("Watcher error", zap.Error(err))
			}
		}
	}
}
