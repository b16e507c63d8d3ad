package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Reload is delivered by a Watcher after the watched file changes.
// Err is set when the new content fails to load; Config is then zero.
type Reload struct {
	Config GameConfig
	Err    error
}

// Watcher re-reads a config file whenever it is written.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan Reload
	done    chan struct{}
}

// Watch starts watching path. The parent directory is watched so editors
// that replace the file on save are still observed.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", path, err)
	}

	w := &Watcher{
		path:    filepath.Clean(path),
		watcher: fw,
		updates: make(chan Reload, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Updates returns the channel of reload results. It is closed by Close.
func (w *Watcher) Updates() <-chan Reload {
	return w.updates
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.updates)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadFile(w.path)
			w.publish(Reload{Config: cfg, Err: err})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.publish(Reload{Err: fmt.Errorf("config: watch error: %w", err)})
		}
	}
}

// publish keeps only the newest result when the consumer lags.
func (w *Watcher) publish(r Reload) {
	select {
	case <-w.updates:
	default:
	}
	w.updates <- r
}
