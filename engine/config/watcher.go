package config

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

type watcherImpl struct {
	path    string
	fs      *fsnotify.Watcher
	changes chan Settings
	done    chan struct{}
}

// Watcher delivers reloaded settings whenever the watched file changes on
// disk. Reload failures (half-written or malformed files) are logged and
// skipped; the consumer only ever sees settings that parsed cleanly.
type Watcher interface {
	// Changes returns the channel of reloaded settings. The channel holds the
	// most recent snapshot only: if the consumer lags, intermediate edits are
	// replaced, never queued.
	//
	// Returns:
	//   - <-chan Settings: the reload channel
	Changes() <-chan Settings

	// Close stops watching and releases the underlying OS watch handles.
	// The changes channel is not closed; readers must select against it.
	//
	// Returns:
	//   - error: failure to release the watch handles
	Close() error
}

var _ Watcher = &watcherImpl{}

// Watch starts watching a settings file for edits. The parent directory is
// watched rather than the file itself, so editors that save via rename
// (write temp file, rename over target) are still observed.
//
// Parameters:
//   - path: the settings file path
//
// Returns:
//   - Watcher: the running watcher
//   - error: failure to create the OS watcher or watch the directory
func Watch(path string) (Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create settings watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch settings directory %s: %w", dir, err)
	}

	w := &watcherImpl{
		path:    path,
		fs:      fs,
		changes: make(chan Settings, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	log.Printf("[Config] watching %s for live edits", path)
	return w, nil
}

func (w *watcherImpl) Changes() <-chan Settings {
	return w.changes
}

func (w *watcherImpl) Close() error {
	close(w.done)
	return w.fs.Close()
}

func (w *watcherImpl) run() {
	base := filepath.Base(w.path)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			// Editors emit truncate/write bursts; let the write settle
			// before reading.
			time.Sleep(25 * time.Millisecond)
			s, err := Load(w.path)
			if err != nil {
				log.Printf("[Config] reload skipped: %v", err)
				continue
			}
			w.publish(s)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("[Config] watcher error: %v", err)
		}
	}
}

// publish replaces any undelivered snapshot with the newest one.
func (w *watcherImpl) publish(s Settings) {
	select {
	case w.changes <- s:
		return
	default:
	}
	select {
	case <-w.changes:
	default:
	}
	select {
	case w.changes <- s:
	default:
	}
}
