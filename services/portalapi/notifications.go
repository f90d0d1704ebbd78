package portalapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trezcool/safari/core/notify"
)

var _ notify.API = (*Client)(nil)

func (c *Client) Notifications(ctx context.Context) ([]notify.Notification, error) {
	var out []notify.Notification
	err := c.do(ctx, http.MethodGet, "/notifications", nil, &out)
	return out, err
}

func (c *Client) Notification(ctx context.Context, id int) (notify.Notification, error) {
	var out notify.Notification
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/notifications/%d", id), nil, &out)
	return out, err
}

// AdminNotifications is the single global admin inbox.
func (c *Client) AdminNotifications(ctx context.Context) ([]notify.Notification, error) {
	var out []notify.Notification
	err := c.do(ctx, http.MethodGet, "/notifications/admin", nil, &out)
	return out, err
}

func (c *Client) StudentNotifications(ctx context.Context, studentID int) ([]notify.Notification, error) {
	var out []notify.Notification
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/notifications/student/%d", studentID), nil, &out)
	return out, err
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/notifications/%d/mark-read", id), nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notifications/%d", id), nil, nil)
}

// SendNotification delivers an admin-composed message to one student.
func (c *Client) SendNotification(ctx context.Context, studentID int, data notify.NewNotification) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/notifications/send-to-student/%d", studentID), data, nil)
}
