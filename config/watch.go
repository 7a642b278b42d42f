package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// LoadTuningFile reads and validates a tuning override file.
func LoadTuningFile(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tuning file: %w", err)
	}
	t, err := LoadTuning(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// WatchTuning watches path and sends a freshly validated Tuning every time
// the file is written. Invalid files are logged and skipped. The channel is
// closed when ctx is done.
//
// The directory is watched instead of the file so editors that replace the
// file on save are still observed.
func WatchTuning(ctx context.Context, path string, logger *zap.Logger) (<-chan *Tuning, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating tuning watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("resolving tuning path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan *Tuning, 1)
	go func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				t, err := LoadTuningFile(abs)
				if err != nil {
					logger.Warn("tuning reload rejected", zap.String("path", abs), zap.Error(err))
					continue
				}
				// Keep only the newest pending reload.
				select {
				case <-out:
				default:
				}
				out <- t
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("tuning watcher error", zap.Error(err))
			}
		}
	}()
	return out, nil
}
