package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/seriesview/internal/catalog"
)

// Event carries a freshly loaded catalog or the error that prevented it.
type Event struct {
	Path    string
	Catalog *catalog.Catalog
	Err     error
}

// Watcher polls a catalog file and publishes a reload whenever its size or
// modification time changes. It never touches viewport state; consumers apply
// events on their own goroutine.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	modTime time.Time
	size    int64
	lastErr string
}

// NewWatcher starts polling path every interval. The file's current state is
// the baseline; only later changes produce events.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}
	if info, err := os.Stat(path); err == nil {
		w.modTime = info.ModTime()
		w.size = info.Size()
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of reload events. It is closed after Stop once
// the poller exits.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	interval := w.interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			evt, changed := w.check()
			if !changed {
				continue
			}
			select {
			case <-w.ctx.Done():
				return
			case w.events <- evt:
			}
		}
	}
}

// check stats the file and loads it when it changed. Repeated identical
// errors are reported once.
func (w *Watcher) check() (Event, bool) {
	info, err := os.Stat(w.path)
	if err != nil {
		return w.failure(err)
	}
	if info.ModTime().Equal(w.modTime) && info.Size() == w.size {
		return Event{}, false
	}
	c, err := catalog.Load(w.path)
	if err != nil {
		return w.failure(err)
	}
	w.modTime = info.ModTime()
	w.size = info.Size()
	w.lastErr = ""
	return Event{Path: w.path, Catalog: c}, true
}

func (w *Watcher) failure(err error) (Event, bool) {
	if err.Error() == w.lastErr {
		return Event{}, false
	}
	w.lastErr = err.Error()
	return Event{Path: w.path, Err: err}, true
}
