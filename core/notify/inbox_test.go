package notify_test

import (
	"context"
	"io/ioutil"
	"log"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/safari/core/notify"
	logsvc "github.com/trezcool/safari/services/logger"
)

var testLogger = logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0))

// apiMock serves a mutable admin inbox and fails mark-read for chosen ids.
type apiMock struct {
	mu           sync.Mutex
	items        []notify.Notification
	failFetch    error
	failMarkRead map[int]bool
}

func (m *apiMock) AdminNotifications(ctx context.Context) ([]notify.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFetch != nil {
		return nil, m.failFetch
	}
	items := make([]notify.Notification, len(m.items))
	copy(items, m.items)
	return items, nil
}

func (m *apiMock) StudentNotifications(ctx context.Context, studentID int) ([]notify.Notification, error) {
	return m.AdminNotifications(ctx)
}

func (m *apiMock) MarkNotificationRead(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failMarkRead[id] {
		return errors.New("boom")
	}
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Status = notify.StatusRead
		}
	}
	return nil
}

func (m *apiMock) DeleteNotification(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := m.items[:0]
	for _, item := range m.items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	m.items = items
	return nil
}

func seededAPI() *apiMock {
	return &apiMock{
		items: []notify.Notification{
			{ID: 1, Subject: "Welcome", Status: notify.StatusRead},
			{ID: 2, Subject: "Application received", Status: notify.StatusSent},
			{ID: 3, Subject: "Payment pending", Status: notify.StatusPending},
			{ID: 4, Subject: "Old news", Status: notify.StatusDelivered},
		},
		failMarkRead: make(map[int]bool),
	}
}

func TestInbox_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the local list", func(t *testing.T) {
		inbox := notify.NewInbox(seededAPI(), notify.AdminAudience(), testLogger)
		assert.NoError(t, inbox.Refresh(ctx))
		assert.Len(t, inbox.Notifications(), 4)
		// SENT and PENDING count as unread; DELIVERED and READ do not
		assert.Equal(t, 2, inbox.UnreadCount())
	})

	t.Run("fetch failure leaves the list untouched", func(t *testing.T) {
		api := seededAPI()
		inbox := notify.NewInbox(api, notify.AdminAudience(), testLogger)
		assert.NoError(t, inbox.Refresh(ctx))

		api.failFetch = errors.New("backend down")
		assert.Error(t, inbox.Refresh(ctx))
		assert.Len(t, inbox.Notifications(), 4)
	})

	t.Run("result arriving after cancellation is discarded", func(t *testing.T) {
		api := seededAPI()
		inbox := notify.NewInbox(api, notify.AdminAudience(), testLogger)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Error(t, inbox.Refresh(ctx))
		assert.Empty(t, inbox.Notifications())
	})
}

func TestInbox_MarkRead(t *testing.T) {
	ctx := context.Background()
	api := seededAPI()
	inbox := notify.NewInbox(api, notify.StudentAudience(42), testLogger)
	assert.NoError(t, inbox.Refresh(ctx))

	assert.NoError(t, inbox.MarkRead(ctx, 2))
	assert.Equal(t, 1, inbox.UnreadCount())

	// backend failure leaves the item unread locally
	api.failMarkRead[3] = true
	assert.Error(t, inbox.MarkRead(ctx, 3))
	assert.Equal(t, 1, inbox.UnreadCount())

	// marking an already-read item is a no-op, not an error
	assert.NoError(t, inbox.MarkRead(ctx, 1))
	assert.Equal(t, 1, inbox.UnreadCount())
}

func TestInbox_MarkAllRead(t *testing.T) {
	ctx := context.Background()

	t.Run("all succeed", func(t *testing.T) {
		inbox := notify.NewInbox(seededAPI(), notify.AdminAudience(), testLogger)
		assert.NoError(t, inbox.Refresh(ctx))
		assert.NoError(t, inbox.MarkAllRead(ctx))
		assert.Equal(t, 0, inbox.UnreadCount())
	})

	t.Run("partial failure applies the successes and reports the batch", func(t *testing.T) {
		api := seededAPI()
		api.failMarkRead[3] = true
		inbox := notify.NewInbox(api, notify.AdminAudience(), testLogger)
		assert.NoError(t, inbox.Refresh(ctx))

		err := inbox.MarkAllRead(ctx)
		assert.EqualError(t, err, "failed to mark 1 of 2 notifications read")
		// id 2 was rewritten locally, id 3 stays unread until the next refresh
		assert.Equal(t, 1, inbox.UnreadCount())
		for _, n := range inbox.Notifications() {
			if n.ID == 3 {
				assert.True(t, n.Unread())
			}
		}
	})

	t.Run("nothing unread is a no-op", func(t *testing.T) {
		api := &apiMock{items: []notify.Notification{{ID: 1, Status: notify.StatusRead}}}
		inbox := notify.NewInbox(api, notify.AdminAudience(), testLogger)
		assert.NoError(t, inbox.Refresh(ctx))
		assert.NoError(t, inbox.MarkAllRead(ctx))
	})
}

func TestInbox_Delete(t *testing.T) {
	ctx := context.Background()
	inbox := notify.NewInbox(seededAPI(), notify.AdminAudience(), testLogger)
	assert.NoError(t, inbox.Refresh(ctx))

	assert.NoError(t, inbox.Delete(ctx, 2))
	assert.Len(t, inbox.Notifications(), 3)
	assert.Equal(t, 1, inbox.UnreadCount())
}
