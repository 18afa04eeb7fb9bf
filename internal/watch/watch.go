// Package watch re-runs a merge job when dataset files change on disk.
package watch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher triggers a job after files with a recognized extension settle in a
// directory.
type Watcher struct {
	logger   *slog.Logger
	dir      string
	ext      string
	debounce time.Duration
	run      func()
}

// New creates a watcher over dir that invokes run after matching files stop
// changing for a short settle period.
func New(logger *slog.Logger, dir, ext string, run func()) *Watcher {
	return &Watcher{
		logger:   logger,
		dir:      dir,
		ext:      ext,
		debounce: 500 * time.Millisecond,
		run:      run,
	}
}

// Run blocks, invoking the job each time matching files settle. It returns
// when the underlying watcher closes or reports an error.
func (w *Watcher) Run() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info("watching for dataset changes", "dir", w.dir, "ext", w.ext)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, w.ext) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Info("dataset changed", "file", filepath.Base(ev.Name), "op", ev.Op.String())
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", w.dir, err)
		case <-timer.C:
			w.run()
		}
	}
}
