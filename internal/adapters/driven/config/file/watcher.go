package file

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/marquee-labs/marquee-cli/internal/logger"
)

// Watcher reloads the config store when the config file changes on disk
// and notifies a callback with the fresh configuration. Editors often
// replace files rather than writing in place, so the watch covers the
// config directory and filters for the config file name.
type Watcher struct {
	fsw      *fsnotify.Watcher
	store    *Store
	onChange func(Config)
	done     chan struct{}
}

// Watch starts watching the store's config file. onChange runs on the
// watcher goroutine after every successful reload.
func Watch(store *Store, onChange func(Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(store.Dir()); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", store.Dir(), err)
	}

	w := &Watcher{
		fsw:      fsw,
		store:    store,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != ConfigFileName {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := w.store.Load(); err != nil {
				logger.Warn("Config reload failed: %v", err)
				continue
			}
			logger.Debug("Config reloaded from %s", w.store.Path())
			if w.onChange != nil {
				w.onChange(w.store.Config())
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("Config watcher: %v", err)
		}
	}
}

// Close stops the watcher and waits for the loop to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
