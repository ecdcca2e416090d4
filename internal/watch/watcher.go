package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/sandeepkv93/dayboard/internal/logging"
)

const DefaultDebounce = 200 * time.Millisecond

type Event struct {
	Path string
	At   time.Time
}

// Watcher reports changes to one file. It watches the parent directory so
// that replace-by-rename writes are seen, and coalesces bursts of events
// into one notification per debounce window.
type Watcher struct {
	log      *zap.Logger
	path     string
	dir      string
	debounce time.Duration

	watcher   *fsnotify.Watcher
	out       chan Event
	stopCh    chan struct{}
	doneCh    chan struct{}
	closeOnce sync.Once

	mu      sync.Mutex
	running bool
}

func New(path string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		log:      logging.OrNop(logger),
		path:     abs,
		dir:      filepath.Dir(abs),
		debounce: debounce,
		watcher:  fw,
		out:      make(chan Event, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

func (w *Watcher) C() <-chan Event {
	return w.out
}

// Start is non-blocking. The parent directory is created when missing so a
// store that has never been persisted can still be watched.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", w.dir, err)
	}
	w.running = true
	w.log.Info("watching data file", zap.String("path", w.path))
	go w.run(ctx)
	return nil
}

// Stop ends the loop and releases the underlying watcher. It is safe to call
// without Start and more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	w.closeOnce.Do(func() {
		close(w.stopCh)
		if running {
			<-w.doneCh
		}
		if err := w.watcher.Close(); err != nil {
			w.log.Warn("closing watcher", zap.Error(err))
		}
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	timer := time.NewTimer(w.debounce)
	stopTimer(timer)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("data file event", zap.String("op", event.Op.String()))
			stopTimer(timer)
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		case <-timer.C:
			select {
			case w.out <- Event{Path: w.path, At: time.Now()}:
			default:
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

func stopTimer(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
