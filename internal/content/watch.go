package content

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/porta-cabine/internal/logger"
)

// Watch reloads path whenever it changes and sends each catalog that parses
// and validates. Bad edits are logged and skipped; the previous catalog stays
// in effect. The channel is closed when ctx is done.
//
// The parent directory is watched rather than the file so that editors which
// save by rename keep triggering reloads.
func Watch(ctx context.Context, path string) (<-chan *Catalog, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	log := logger.Named("content")
	out := make(chan *Catalog, 1)

	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				c, err := Load(abs)
				if err != nil {
					log.Warn("catalog reload failed", zap.String("path", abs), zap.Error(err))
					continue
				}
				log.Info("catalog reloaded", zap.String("path", abs), zap.Int("records", len(c.Records)))
				select {
				case out <- c:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("watcher error", zap.Error(err))
			}
		}
	}()

	return out, nil
}
