// Package watch notifies on changes to the activity log file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Writes arrive in bursts while the controller flushes, so changes
// are only reported after the file has been quiet this long.
const settle = 500 * time.Millisecond

// Watcher emits a tick on Events after the activity log changes.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	events  chan time.Time
	log     *zap.Logger
}

// New watches the directory containing path. WinCNC appends to the
// log in place but editors and network shares replace it wholesale,
// so directory-level events catch both shapes of update.
func New(path string, log *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:    abs,
		watcher: fw,
		events:  make(chan time.Time, 1),
		log:     log,
	}, nil
}

// Events delivers one tick per settled change. A slow receiver sees
// collapsed ticks, never a backlog.
func (w *Watcher) Events() <-chan time.Time {
	return w.events
}

// Run processes file system events until ctx is cancelled or the
// watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	for {
		var fire <-chan time.Time
		if timer != nil {
			fire = timer.C
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !strings.EqualFold(filepath.Base(ev.Name), filepath.Base(w.path)) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("log changed", zap.String("op", ev.Op.String()))
			if timer != nil {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(settle)
			} else {
				timer = time.NewTimer(settle)
			}

		case t := <-fire:
			timer = nil
			select {
			case w.events <- t:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// Close stops the underlying file system watcher, which also unblocks
// Run.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
