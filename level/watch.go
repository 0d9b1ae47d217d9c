package level

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a level file on disk so the game can reload it
// live. Events are debounced: editors tend to fire several writes per save.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the directory containing path and reports writes to
// that file. Watching the directory rather than the file survives the
// rename-and-replace dance most editors do on save.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now
			select {
			case w.Events <- event.Name:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
