package notify_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/safari/core/notify"
)

func waitForCount(t *testing.T, w *notify.Watcher, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if w.Count() == want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("watcher count = %d; want %d", w.Count(), want)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestWatcher_polls(t *testing.T) {
	api := seededAPI()
	inbox := notify.NewInbox(api, notify.AdminAudience(), testLogger)
	w := notify.NewWatcher(inbox, 20*time.Millisecond, testLogger)

	counts := make(chan int, 16)
	w.OnCount = func(count int) {
		select {
		case counts <- count:
		default:
		}
	}

	w.Start(context.Background())
	defer w.Stop()

	// immediate poll
	waitForCount(t, w, 2)
	assert.Equal(t, 2, <-counts)

	// server-side change picked up on the next tick
	api.mu.Lock()
	api.items = append(api.items, notify.Notification{ID: 9, Subject: "New", Status: notify.StatusSent})
	api.mu.Unlock()
	waitForCount(t, w, 3)
}

func TestWatcher_failureKeepsPreviousCount(t *testing.T) {
	api := seededAPI()
	inbox := notify.NewInbox(api, notify.AdminAudience(), testLogger)
	w := notify.NewWatcher(inbox, 10*time.Millisecond, testLogger)

	w.Start(context.Background())
	defer w.Stop()
	waitForCount(t, w, 2)

	api.mu.Lock()
	api.failFetch = errors.New("backend down")
	api.mu.Unlock()

	// give it a few failed polls; the badge must not flicker to zero
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, w.Count())
}

func TestWatcher_stop(t *testing.T) {
	api := seededAPI()
	inbox := notify.NewInbox(api, notify.AdminAudience(), testLogger)
	w := notify.NewWatcher(inbox, 10*time.Millisecond, testLogger)

	var calls int32
	w.OnCount = func(int) { atomic.AddInt32(&calls, 1) }

	w.Start(context.Background())
	waitForCount(t, w, 2)
	w.Stop()

	after := atomic.LoadInt32(&calls)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&calls), "OnCount must not fire after Stop")

	// Stop is idempotent
	w.Stop()
}

func TestWatcher_contextCancelStops(t *testing.T) {
	inbox := notify.NewInbox(seededAPI(), notify.AdminAudience(), testLogger)
	w := notify.NewWatcher(inbox, 10*time.Millisecond, testLogger)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	waitForCount(t, w, 2)
	cancel()

	time.Sleep(30 * time.Millisecond)
	count := w.Count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, count, w.Count())
	w.Stop()
}
