package catalog

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"alpacapc-be/internal/pkg/logger"
)

// debounceWindow absorbs the write bursts editors and upload tools produce
// when replacing the export file.
const debounceWindow = 500 * time.Millisecond

// Watcher hot-reloads the store when the catalog file changes on disk.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher
	log     logger.ILogger
}

func NewWatcher(store *Store, log logger.ILogger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: replace-by-rename (how most upload
	// tools write) would otherwise drop the watch after the first swap.
	if err := fsw.Add(filepath.Dir(store.path)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{store: store, watcher: fsw, log: log}, nil
}

// Run blocks until ctx is cancelled, reloading the store after each change
// to the catalog file settles.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	target := filepath.Clean(w.store.path)
	var timer *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			if err := w.store.Reload(); err != nil {
				w.log.Warn("catalog", "Hot reload failed, keeping previous snapshot", map[string]interface{}{
					"error": err.Error(),
				})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("catalog", "Catalog watcher error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
