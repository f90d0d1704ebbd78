package notify

import (
	"context"
	"sync"
	"time"

	"github.com/trezcool/safari/core"
)

// Watcher keeps an unread-count badge current for one inbox by polling: an
// immediate fetch on start, then one per interval until the watcher is
// stopped. A fetch failure keeps the previously displayed count rather than
// zeroing it, so a transient network error never makes the badge flicker.
type Watcher struct {
	inbox    *Inbox
	interval time.Duration
	log      core.Logger

	// OnCount, when set, is invoked with the unread count after every
	// successful fetch. It is never invoked after Stop.
	OnCount func(count int)

	mu     sync.Mutex
	count  int
	cancel context.CancelFunc
	done   chan struct{}
}

func NewWatcher(inbox *Inbox, interval time.Duration, log core.Logger) *Watcher {
	if interval <= 0 {
		interval = core.Conf.GetDuration("pollInterval")
	}
	return &Watcher{inbox: inbox, interval: interval, log: log}
}

// Start launches the polling loop. The loop stops when ctx is cancelled or
// Stop is called; a fetch already in flight at that point is discarded and
// never updates the count.
func (w *Watcher) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	w.mu.Lock()
	if w.cancel != nil {
		w.mu.Unlock()
		cancel()
		return // already running
	}
	w.cancel = cancel
	done := make(chan struct{})
	w.done = done
	w.mu.Unlock()

	go func() {
		defer close(done)
		w.poll(ctx)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.poll(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for it to wind down. Safe to call more
// than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Count returns the last successfully fetched unread count.
func (w *Watcher) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

func (w *Watcher) poll(ctx context.Context) {
	if err := w.inbox.Refresh(ctx); err != nil {
		if ctx.Err() == nil {
			w.log.Warn("notify: poll failed; keeping previous count", err)
		}
		return
	}
	if ctx.Err() != nil {
		return // torn down while the fetch was in flight
	}
	count := w.inbox.UnreadCount()

	w.mu.Lock()
	w.count = count
	onCount := w.OnCount
	w.mu.Unlock()

	if onCount != nil {
		onCount(count)
	}
}
