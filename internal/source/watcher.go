package source

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherInterface is what the app needs from a watcher
type WatcherInterface interface {
	Items() <-chan []string
	Errors() <-chan error
	Close() error
}

// Watcher reloads an items file whenever it is written
type Watcher struct {
	watcher   *fsnotify.Watcher
	filePath  string
	modTime   time.Time
	size      int64
	itemsChan chan []string
	errorChan chan error
	done      chan struct{}
	interval  time.Duration
}

// NewWatcher starts watching filePath. The current content is sent on
// Items right away.
func NewWatcher(filePath string) (*Watcher, error) {
	return newWatcher(filePath, 500*time.Millisecond)
}

func newWatcher(filePath string, interval time.Duration) (*Watcher, error) {
	if _, err := ReadItems(filePath); err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Editors replace files on save, so the directory is watched rather
	// than the file itself.
	if err := fsWatcher.Add(filepath.Dir(filePath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:   fsWatcher,
		filePath:  filepath.Clean(filePath),
		itemsChan: make(chan []string, 10),
		errorChan: make(chan error, 10),
		done:      make(chan struct{}),
		interval:  interval,
	}

	w.reload()
	go w.watch()

	return w, nil
}

// watch runs the file watching loop
func (w *Watcher) watch() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.itemsChan)
	defer close(w.errorChan)

	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			// polling backup for filesystems without events
			if w.changed() {
				w.reload()
			}

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 && w.changed() {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		}
	}
}

// changed reports whether the file's size or modification time moved
func (w *Watcher) changed() bool {
	info, err := os.Stat(w.filePath)
	if err != nil {
		return false
	}
	return !info.ModTime().Equal(w.modTime) || info.Size() != w.size
}

func (w *Watcher) reload() {
	if info, err := os.Stat(w.filePath); err == nil {
		w.modTime = info.ModTime()
		w.size = info.Size()
	}
	items, err := ReadItems(w.filePath)
	w.send(items, err)
}

func (w *Watcher) send(items []string, err error) {
	if err != nil {
		select {
		case w.errorChan <- err:
		case <-w.done:
		}
		return
	}
	select {
	case w.itemsChan <- items:
	case <-w.done:
	}
}

// Items returns a channel receiving the full item list after every change
func (w *Watcher) Items() <-chan []string {
	return w.itemsChan
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching the file
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}

// TestWatcher is a helper for testing that provides direct control over channels
type TestWatcher struct {
	itemsChan chan []string
	errorChan chan error
	closed    bool
	mu        sync.Mutex
}

// NewTestWatcher creates a test watcher with controllable channels
func NewTestWatcher() *TestWatcher {
	return &TestWatcher{
		itemsChan: make(chan []string, 10),
		errorChan: make(chan error, 10),
	}
}

func (tw *TestWatcher) Items() <-chan []string {
	return tw.itemsChan
}

func (tw *TestWatcher) Errors() <-chan error {
	return tw.errorChan
}

func (tw *TestWatcher) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return nil
	}
	tw.closed = true
	close(tw.itemsChan)
	close(tw.errorChan)
	return nil
}

// SendItems sends a test item list to the watcher
func (tw *TestWatcher) SendItems(items []string) {
	tw.itemsChan <- items
}

// SendError sends a test error to the watcher
func (tw *TestWatcher) SendError(err error) {
	tw.errorChan <- err
}
