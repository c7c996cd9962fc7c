package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchLocalStorage watches the local blob directory and logs removals so
// out-of-band deletions (which leave document records pointing at nothing)
// are visible. Deletes issued by the service itself show up here too; the
// request log carries the matching document id for correlation.
// Per-user subdirectories are added to the watch as they appear.
func watchLocalStorage(baseDir string, logger *slog.Logger) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(baseDir); err != nil {
		w.Close()
		return nil, err
	}
	// pick up user directories that already exist
	entries, _ := os.ReadDir(baseDir)
	for _, e := range entries {
		if e.IsDir() {
			_ = w.Add(filepath.Join(baseDir, e.Name()))
		}
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
						_ = w.Add(ev.Name)
					}
				}
				if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
					logger.Warn("storage path changed outside the service",
						"path", ev.Name, "op", ev.Op.String())
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Error("storage watcher error", "err", err)
			}
		}
	}()
	return w, nil
}
