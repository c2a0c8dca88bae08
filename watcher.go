package mimekit

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// DefinitionsWatcher watches a TOML definitions file and rebuilds the
// registry (built-in types plus the file's types) whenever the file
// changes, handing each freshly frozen Registry to the reload callback.
//
// The parent directory is watched rather than the file itself, so
// editors that replace the file on save still trigger a reload.
type DefinitionsWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	reload  func(*Registry)
	errs    chan error
	done    chan struct{}
}

// NewDefinitionsWatcher starts watching the given definitions file.
// onReload is called from the watcher goroutine with each rebuilt
// registry; build failures are delivered on Errors instead.
func NewDefinitionsWatcher(path string, onReload func(*Registry)) (*DefinitionsWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &DefinitionsWatcher{
		watcher: fw,
		path:    abs,
		reload:  onReload,
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Errors returns build and watch errors. The channel is buffered; when
// nobody listens, older errors are dropped in favor of new ones.
func (w *DefinitionsWatcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and releases its resources.
func (w *DefinitionsWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *DefinitionsWatcher) run() {
	for {
		select {
		case <-w.done:
			return
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
			reg, err := loadRegistry(w.path)
			if err != nil {
				w.report(err)
				continue
			}
			w.reload(reg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *DefinitionsWatcher) report(err error) {
	select {
	case w.errs <- err:
	default:
		// drop the stale error, keep the newest
		select {
		case <-w.errs:
		default:
		}
		select {
		case w.errs <- err:
		default:
		}
	}
}

// loadRegistry builds a registry from the built-in types plus the given
// definitions file.
func loadRegistry(path string) (*Registry, error) {
	b := DefaultRegistryBuilder()
	if err := LoadDefinitions(b, path); err != nil {
		return nil, err
	}
	return b.Build()
}
