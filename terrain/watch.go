package terrain

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is how long a spec file must stay quiet before it is
// reloaded. Editors that truncate and rewrite produce one reload.
const debounceDelay = 100 * time.Millisecond

// Reload is the outcome of re-reading a changed terrain set file. Err is set
// when the file could not be read or failed validation; Set is nil then.
type Reload struct {
	Path string
	Set  *Set
	Err  error
}

// Watcher rebuilds terrain sets when spec files in the watched directories
// change and delivers the results on Reloads.
type Watcher struct {
	watcher *fsnotify.Watcher
	Reloads chan Reload
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Reloads: make(chan Reload, 16),
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
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Reloads)
	defer close(w.Errors)

	pending := make(map[string]struct{})
	timer := time.NewTimer(debounceDelay)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSpecFile(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(debounceDelay)
		case <-timer.C:
			for path := range pending {
				delete(pending, path)
				set, err := LoadSet(path)
				select {
				case w.Reloads <- Reload{Path: path, Set: set, Err: err}:
				case <-w.closeCh:
					return
				}
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

func isSpecFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
