package core

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads a config file whenever it is written or
// re-created and hands every valid result to a callback. Invalid files are
// reported on Errors and the previous configuration stays in effect.
type ConfigWatcher struct {
	path     string
	onChange func(*Config)

	mutex    sync.Mutex
	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	started  bool
	errors   chan error
}

func NewConfigWatcher(path string, onChange func(*Config)) (*ConfigWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsWatch.Close()
		return nil, err
	}

	return &ConfigWatcher{
		path:     abs,
		onChange: onChange,
		fsnotify: fsWatch,
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}, nil
}

// Start watches the directory of the file, since editors often replace a
// file instead of writing to it.
func (w *ConfigWatcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.isClosed {
		return ErrWatcherClosed
	}
	if err := w.fsnotify.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	if !w.started {
		w.started = true
		go w.start()
	}
	return nil
}

// Errors delivers load and watch failures. Only the latest unread error
// is kept.
func (w *ConfigWatcher) Errors() <-chan error {
	return w.errors
}

func (w *ConfigWatcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return ErrWatcherClosed
	}
	w.isClosed = true
	started := w.started
	close(w.done)
	w.mutex.Unlock()

	if started {
		<-w.stopped
		return nil
	}
	return w.fsnotify.Close()
}

func (w *ConfigWatcher) start() {
	defer close(w.stopped)
	for {
		select {

		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}

		case e, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			LogError(e.Error())
			w.report(e)

		case <-w.done:
			w.fsnotify.Close()
			return
		}
	}
}

func (w *ConfigWatcher) reload() {
	cfg, err := LoadConfig(w.path)
	if err != nil {
		LogWarn("config reload failed, keeping previous settings: %v", err)
		w.report(err)
		return
	}
	LogInfo("config reloaded from %s", w.path)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

func (w *ConfigWatcher) report(err error) {
	select {
	case w.errors <- err:
	default:
		// Drop the stale error in favour of the new one.
		select {
		case <-w.errors:
		default:
		}
		select {
		case w.errors <- err:
		default:
		}
	}
}
