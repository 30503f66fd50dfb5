package glsteps

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher collects changes to a fixed set of shader files.
//
// Events are gathered on a background goroutine; the render thread drains
// them with Changed between frames, so GL work never leaves that thread.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// files maps cleaned absolute paths to the name the caller registered.
	files map[string]string

	mu      sync.Mutex
	pending map[string]struct{}

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewWatcher starts watching files. Their parent directories are watched,
// since editors often replace a file instead of writing it in place.
func NewWatcher(files []string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = defaultLogger
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{
		watcher: fw,
		logger:  logger,
		files:   make(map[string]string),
		pending: make(map[string]struct{}),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", f, err)
		}
		w.files[abs] = f
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			name, ok := w.files[abs]
			if !ok {
				continue
			}
			w.mu.Lock()
			w.pending[name] = struct{}{}
			w.mu.Unlock()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("shader watcher", "err", err)
		}
	}
}

// Changed returns the registered names of files modified since the last
// call, sorted, and clears the set.
func (w *Watcher) Changed() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) == 0 {
		return nil
	}
	out := make([]string, 0, len(w.pending))
	for name := range w.pending {
		out = append(out, name)
	}
	clear(w.pending)
	sort.Strings(out)
	return out
}

// Close stops the watcher and waits for its goroutine.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}
