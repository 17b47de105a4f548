// Package watch reruns a job whenever a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/wucyAAA/iconopaque/internal/logger"
)

// DefaultDebounce coalesces the burst of events editors and exporters
// produce for a single save.
const DefaultDebounce = 200 * time.Millisecond

type Options struct {
	Debounce time.Duration
	Log      *logger.Logger
}

// Run calls fn after every change to path until ctx is done. The parent
// directory is watched rather than the file itself so that replace-by-
// rename saves and re-creation after deletion are picked up too.
func Run(ctx context.Context, path string, opts Options, fn func()) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher has failed: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err = watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	timer := time.NewTimer(opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Debug().Str("path", path).Msg("the watch has ended")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				log.Debug().Str("path", path).Str("op", event.Op.String()).Msg("change")
				timer.Reset(opts.Debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")
		case <-timer.C:
			fn()
		}
	}
}
