// Package watch reports changes to a single deck file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/carousel/internal/logger"
)

// DefaultDebounce groups the burst of events an editor save produces.
const DefaultDebounce = 150 * time.Millisecond

// Event is a debounced change to the watched file.
type Event struct {
	Path string
	Op   fsnotify.Op
	At   time.Time
}

// Watcher watches one file. The parent directory is watched so that
// editors which save by rename are still seen.
type Watcher struct {
	path  string
	delay time.Duration
	fs    *fsnotify.Watcher
	log   *logger.Logger

	events chan Event
	errs   chan error

	closeOnce sync.Once
	done      chan struct{}
}

// New starts watching path. A non-positive delay uses DefaultDebounce.
func New(path string, delay time.Duration, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if delay <= 0 {
		delay = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:   abs,
		delay:  delay,
		fs:     fsw,
		log:    log.With("component", "watch", "path", abs),
		events: make(chan Event, 1),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events delivers debounced changes. At most one change is buffered; later
// changes coalesce into it.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors delivers watcher errors. Errors are dropped while one is pending.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Run processes filesystem events until ctx is cancelled or Close is called.
func (w *Watcher) Run(ctx context.Context) {
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending Event
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			pending = Event{Path: w.path, Op: ev.Op, At: time.Now()}
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.delay)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.deliver(pending)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

func (w *Watcher) deliver(ev Event) {
	select {
	case w.events <- ev:
		w.log.Debug("deck changed", "op", ev.Op.String())
	default:
		// a change is already waiting to be read
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}
