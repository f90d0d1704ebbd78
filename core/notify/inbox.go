package notify

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/safari/core"
)

type (
	// API is the notification surface of the portal backend.
	API interface {
		AdminNotifications(ctx context.Context) ([]Notification, error)
		StudentNotifications(ctx context.Context, studentID int) ([]Notification, error)
		MarkNotificationRead(ctx context.Context, id int) error
		DeleteNotification(ctx context.Context, id int) error
	}

	// Audience scopes an inbox to its single recipient: the admin broadcast
	// inbox or one student's inbox. The client never merges audiences.
	Audience struct {
		admin     bool
		studentID int
	}

	// Inbox holds the local copy of one audience's notification list. A
	// refresh fully replaces the list with server truth; MarkRead and
	// MarkAllRead apply local rewrites only after the backend call succeeds,
	// to be reconciled by the next refresh.
	Inbox struct {
		api API
		log core.Logger

		audience Audience

		mu    sync.Mutex
		items []Notification
	}
)

func AdminAudience() Audience         { return Audience{admin: true} }
func StudentAudience(id int) Audience { return Audience{studentID: id} }

func NewInbox(api API, audience Audience, log core.Logger) *Inbox {
	return &Inbox{api: api, audience: audience, log: log}
}

func (in *Inbox) fetch(ctx context.Context) ([]Notification, error) {
	if in.audience.admin {
		return in.api.AdminNotifications(ctx)
	}
	return in.api.StudentNotifications(ctx, in.audience.studentID)
}

// Refresh replaces the local list with the server's. A result arriving after
// ctx is cancelled is discarded: the consumer that asked for it is gone.
func (in *Inbox) Refresh(ctx context.Context) error {
	items, err := in.fetch(ctx)
	if err != nil {
		return errors.Wrap(err, "fetching notifications")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	in.mu.Lock()
	in.items = items
	in.mu.Unlock()
	return nil
}

// Notifications returns a copy of the local list.
func (in *Inbox) Notifications() []Notification {
	in.mu.Lock()
	defer in.mu.Unlock()
	items := make([]Notification, len(in.items))
	copy(items, in.items)
	return items
}

// UnreadCount counts the local list's unread notifications.
func (in *Inbox) UnreadCount() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return UnreadCount(in.items)
}

// MarkRead acknowledges one notification. The local item is rewritten to READ
// only once the backend call succeeds, so the badge reflects the change
// without waiting for the next poll and no rollback is ever needed.
func (in *Inbox) MarkRead(ctx context.Context, id int) error {
	if err := in.api.MarkNotificationRead(ctx, id); err != nil {
		return errors.Wrapf(err, "marking notification %d read", id)
	}
	in.setStatus(StatusRead, id)
	return nil
}

// MarkAllRead acknowledges every unread notification with one concurrent
// backend call per item, waits for all of them, then rewrites the items whose
// call succeeded. A partially-failed batch reports failure for the whole
// batch and leaves the failed items unread locally; the next refresh
// reconciles any remaining drift with server truth.
func (in *Inbox) MarkAllRead(ctx context.Context) error {
	in.mu.Lock()
	unread := make([]int, 0, len(in.items))
	for _, item := range in.items {
		if item.Unread() {
			unread = append(unread, item.ID)
		}
	}
	in.mu.Unlock()

	if len(unread) == 0 {
		return nil
	}

	var (
		wg        sync.WaitGroup
		resMu     sync.Mutex
		succeeded = make([]int, 0, len(unread))
		failed    int
	)
	for _, id := range unread {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if err := in.api.MarkNotificationRead(ctx, id); err != nil {
				in.log.Warn("notify: marking notification read", err, map[string]interface{}{"id": id})
				resMu.Lock()
				failed++
				resMu.Unlock()
				return
			}
			resMu.Lock()
			succeeded = append(succeeded, id)
			resMu.Unlock()
		}(id)
	}
	wg.Wait()

	in.setStatus(StatusRead, succeeded...)
	if failed > 0 {
		return errors.Errorf("failed to mark %d of %d notifications read", failed, len(unread))
	}
	return nil
}

// Delete removes a notification on the backend, then locally.
func (in *Inbox) Delete(ctx context.Context, id int) error {
	if err := in.api.DeleteNotification(ctx, id); err != nil {
		return errors.Wrapf(err, "deleting notification %d", id)
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	items := in.items[:0]
	for _, item := range in.items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	in.items = items
	return nil
}

func (in *Inbox) setStatus(status string, ids ...int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, id := range ids {
		for i := range in.items {
			if in.items[i].ID == id {
				in.items[i].Status = status
			}
		}
	}
}
