package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a single outline file and invokes onChange, debounced,
// whenever it is written, created or renamed. The parent directory is
// watched rather than the file itself so that editors that replace the
// file on save keep triggering events.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	debounce *Debouncer
	onChange func()
	done     chan struct{}
	closed   sync.Once
}

// Watch starts watching path. onChange runs on the watcher's goroutine
// after each debounced change; keep it short or hand off to a channel.
func Watch(path string, window time.Duration, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("watcher: nil onChange callback")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		fs:       fs,
		debounce: NewDebouncer(window),
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.debounce.Call(w.onChange)
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// Watch errors are transient on some platforms; keep going.
		case <-w.done:
			return
		}
	}
}

// Close stops watching and cancels any pending reload. Safe to call
// more than once.
func (w *Watcher) Close() error {
	var err error
	w.closed.Do(func() {
		close(w.done)
		w.debounce.Stop()
		err = w.fs.Close()
	})
	return err
}
