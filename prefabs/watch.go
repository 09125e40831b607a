package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Editors tend to fire several filesystem events per save; changes to
// the same board file within this window collapse into one reload.
const debounceWindow = 100 * time.Millisecond

// Watcher reports board spec changes so a running table can rebuild
// itself from the edited file without restarting.
type Watcher struct {
	fs      *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the given directories for yaml spec changes.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fs,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.deliver(event, last) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// Best effort: the game loop polls, it must never block here.
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// deliver forwards one debounced spec change. Returns false when the
// watcher is closing.
func (w *Watcher) deliver(event fsnotify.Event, last map[string]time.Time) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return true
	}
	if !isSpecFile(event.Name) {
		return true
	}
	now := time.Now()
	if t, ok := last[event.Name]; ok && now.Sub(t) < debounceWindow {
		return true
	}
	last[event.Name] = now
	select {
	case w.Events <- event.Name:
	case <-w.closeCh:
		return false
	default:
	}
	return true
}

func isSpecFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
