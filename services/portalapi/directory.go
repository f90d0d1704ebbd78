package portalapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/trezcool/safari/core/directory"
)

var _ directory.API = (*Client)(nil)

func (c *Client) Students(ctx context.Context) ([]directory.Student, error) {
	var out []directory.Student
	err := c.do(ctx, http.MethodGet, "/students", nil, &out)
	return out, err
}

func (c *Client) Student(ctx context.Context, id int) (directory.Student, error) {
	var out directory.Student
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/students/%d", id), nil, &out)
	return out, err
}

func (c *Client) StudentByEmail(ctx context.Context, email string) (directory.Student, error) {
	var out directory.Student
	err := c.do(ctx, http.MethodGet, "/students/email/"+url.PathEscape(email), nil, &out)
	return out, err
}

func (c *Client) UpdateStudent(ctx context.Context, id int, data directory.Student) (directory.Student, error) {
	var out directory.Student
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/students/%d", id), data, &out)
	return out, err
}

func (c *Client) DeleteStudent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/students/%d", id), nil, nil)
}

func (c *Client) Admins(ctx context.Context) ([]directory.Admin, error) {
	var out []directory.Admin
	err := c.do(ctx, http.MethodGet, "/admins", nil, &out)
	return out, err
}

func (c *Client) Admin(ctx context.Context, id int) (directory.Admin, error) {
	var out directory.Admin
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admins/%d", id), nil, &out)
	return out, err
}

func (c *Client) DeleteAdmin(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admins/%d", id), nil, nil)
}
