package portalapi

import (
	"context"
	"net/http"

	"github.com/trezcool/safari/core/session"
)

var _ session.API = (*Client)(nil)

// Login authenticates and returns the bearer token with the principal fields
// the backend sends alongside it.
func (c *Client) Login(ctx context.Context, email, password string) (string, session.Principal, error) {
	var resp struct {
		Token string `json:"token"`
		session.Principal
	}
	creds := session.Credentials{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &resp); err != nil {
		return "", session.Principal{}, err
	}
	return resp.Token, resp.Principal, nil
}

func (c *Client) RegisterStudent(ctx context.Context, data session.NewStudent) error {
	return c.do(ctx, http.MethodPost, "/auth/register/student", data, nil)
}

func (c *Client) RegisterAdmin(ctx context.Context, data session.NewAdmin) error {
	return c.do(ctx, http.MethodPost, "/auth/register/admin", data, nil)
}
