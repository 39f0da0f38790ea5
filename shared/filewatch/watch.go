// Package filewatch reports changes to individual files on disk.
package filewatch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// quiet is how long a file must go without events before it is reported;
// editors often write a file in several steps.
const quiet = 100 * time.Millisecond

// Watcher sends the path of a watched file on Events once it has been
// written, created or replaced and then left alone for a short while.
// Directories are watched rather than the files themselves so that atomic
// saves (write then rename) are seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	Events  chan string
	Errors  chan error
	settled chan settle
	closeCh chan struct{}
	once    sync.Once
	done    chan struct{}
}

// settle fires when a file's quiet period ends. gen tells a stale timer that
// was already firing when the file changed again apart from the current one.
type settle struct {
	name string
	gen  int
}

type pendingFile struct {
	timer *time.Timer
	gen   int
}

// New starts watching paths.
func New(paths ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		files:   files,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		settled: make(chan settle),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes Events and Errors.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	pending := make(map[string]*pendingFile)
	gen := 0
	defer func() {
		for _, p := range pending {
			p.timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !w.files[name] {
				continue
			}
			if p, ok := pending[name]; ok {
				p.timer.Stop()
			}
			gen++
			s := settle{name: name, gen: gen}
			pending[name] = &pendingFile{
				gen: gen,
				timer: time.AfterFunc(quiet, func() {
					select {
					case w.settled <- s:
					case <-w.closeCh:
					}
				}),
			}
		case s := <-w.settled:
			if p, ok := pending[s.name]; !ok || p.gen != s.gen {
				continue
			}
			delete(pending, s.name)
			select {
			case w.Events <- s.name:
			case <-w.closeCh:
				return
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
