// Package overlay keeps a status file in sync with the active run.
//
// The loop is deliberately single-threaded: one goroutine re-reads the
// run once per interval, renders it, and rewrites the target file, so
// successive renders are strictly ordered. A file system watch on the
// state directory triggers extra renders between ticks, which makes
// pause and stop visible without the full tick latency; the ticker alone
// keeps the overlay correct when the watch is unavailable.
package overlay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/pomoctl/internal/logfields"
	"git.home.luguber.info/inful/pomoctl/internal/render"
	"git.home.luguber.info/inful/pomoctl/internal/store"
)

// Writer drives the watch loop for one overlay file.
type Writer struct {
	store    *store.Store
	path     string
	interval time.Duration

	// Echo, when set, receives each rendered line prefixed with a
	// carriage return for in-place terminal display.
	Echo io.Writer
}

// New prepares a writer that renders the run held by st to path once per
// interval.
func New(st *store.Store, path string, interval time.Duration) *Writer {
	return &Writer{store: st, path: path, interval: interval}
}

// Run blocks until ctx is cancelled or the run is deleted. A missing run
// at startup is an error; a run deleted later means stop was called, so
// the final absent state is rendered once and Run returns nil. The
// directory containing the overlay file must exist.
func (w *Writer) Run(ctx context.Context) error {
	if dir := filepath.Dir(w.path); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("overlay directory: %w", err)
		}
	}

	var events chan fsnotify.Event
	var watchErrs chan error
	if watcher := w.stateWatcher(); watcher != nil {
		defer func() { _ = watcher.Close() }()
		events = watcher.Events
		watchErrs = watcher.Errors
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	if done, err := w.render(true); done || err != nil {
		return err
	}

	stateFile := filepath.Base(w.store.Path())
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if done, err := w.render(false); done || err != nil {
				return err
			}
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if filepath.Base(event.Name) != stateFile {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("state change detected", logfields.Path(event.Name))
			if done, err := w.render(false); done || err != nil {
				return err
			}
		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			slog.Warn("state watch error", logfields.Error(err))
		}
	}
}

// render reads the run and rewrites the overlay file. done reports that
// the run is gone and the final line has been written. Transient read
// failures are logged and skipped so a single bad poll never kills the
// loop.
func (w *Writer) render(first bool) (done bool, err error) {
	st, err := w.store.Load()
	switch {
	case errors.Is(err, store.ErrNotRunning):
		if first {
			return true, err
		}
		w.emit(render.IdleFile())
		return true, nil
	case err != nil:
		slog.Warn("state read failed", logfields.Error(err))
		return false, nil
	}

	w.emit(render.File(st.At(time.Now())))
	return false, nil
}

func (w *Writer) emit(line string) {
	if err := os.WriteFile(w.path, []byte(line), 0o644); err != nil {
		slog.Warn("overlay write failed", logfields.Path(w.path), logfields.Error(err))
	}
	if w.Echo != nil {
		fmt.Fprintf(w.Echo, "\r%s", strings.TrimRight(line, "\n"))
	}
}

// stateWatcher watches the state directory, not the file itself, since
// the store replaces the file on every write. Failures only log: the
// watch is an accelerator, not a requirement.
func (w *Writer) stateWatcher() *fsnotify.Watcher {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Warn("state watch unavailable", logfields.Error(err))
		return nil
	}
	if err := watcher.Add(w.store.Dir()); err != nil {
		slog.Warn("state watch unavailable", logfields.Error(err))
		_ = watcher.Close()
		return nil
	}
	return watcher
}
