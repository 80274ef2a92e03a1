package config

import (
	"path/filepath"

	"github.com/dshills/caret/internal/config/watcher"
)

// Reloader reloads a config file whenever it changes on disk.
type Reloader struct {
	path     string
	opts     []LoadOption
	w        *watcher.Watcher
	onReload func(Config)
	onError  func(error)
}

// Watch starts watching the config file at path. onReload receives every
// successfully loaded and validated configuration; onError, if not nil,
// receives load and watcher failures. A failed reload leaves the previous
// configuration in effect.
func Watch(path string, onReload func(Config), onError func(error), opts ...LoadOption) (*Reloader, error) {
	r := &Reloader{
		path:     filepath.Clean(path),
		opts:     opts,
		onReload: onReload,
		onError:  onError,
	}

	w, err := watcher.New(watcher.WithErrorHandler(r.reportError))
	if err != nil {
		return nil, err
	}
	if err := w.Watch(path); err != nil {
		_ = w.Stop()
		return nil, err
	}
	w.OnChange(r.handleChange)
	if err := w.Start(); err != nil {
		_ = w.Stop()
		return nil, err
	}

	r.w = w
	return r, nil
}

func (r *Reloader) handleChange(ev watcher.Event) {
	if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
		return
	}
	cfg, err := Load(r.path, r.opts...)
	if err != nil {
		r.reportError(err)
		return
	}
	if r.onReload != nil {
		r.onReload(cfg)
	}
}

func (r *Reloader) reportError(err error) {
	if r.onError != nil {
		r.onError(err)
	}
}

// Path returns the watched file.
func (r *Reloader) Path() string {
	return r.path
}

// Close stops watching.
func (r *Reloader) Close() error {
	return r.w.Stop()
}
