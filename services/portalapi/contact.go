package portalapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/trezcool/safari/core/contact"
)

var _ contact.API = (*Client)(nil)

func (c *Client) SendMessage(ctx context.Context, data contact.NewMessage) (contact.Message, error) {
	var out contact.Message
	err := c.do(ctx, http.MethodPost, "/contact-messages", data, &out)
	return out, err
}

func (c *Client) Messages(ctx context.Context) ([]contact.Message, error) {
	var out []contact.Message
	err := c.do(ctx, http.MethodGet, "/contact-messages", nil, &out)
	return out, err
}

func (c *Client) Message(ctx context.Context, id int) (contact.Message, error) {
	var out contact.Message
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/contact-messages/%d", id), nil, &out)
	return out, err
}

func (c *Client) MessagesByType(ctx context.Context, typ string) ([]contact.Message, error) {
	var out []contact.Message
	err := c.do(ctx, http.MethodGet, "/contact-messages/type/"+url.PathEscape(typ), nil, &out)
	return out, err
}

func (c *Client) MarkMessageRead(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/contact-messages/%d/mark-read", id), nil, nil)
}

func (c *Client) UnreadMessageCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	err := c.do(ctx, http.MethodGet, "/contact-messages/unread-count", nil, &out)
	return out.Count, err
}

func (c *Client) DeleteMessage(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/contact-messages/%d", id), nil, nil)
}
