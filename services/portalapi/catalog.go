package portalapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/trezcool/safari/core/catalog"
)

var _ catalog.API = (*Client)(nil)

func (c *Client) Universities(ctx context.Context) ([]catalog.University, error) {
	var out []catalog.University
	err := c.do(ctx, http.MethodGet, "/universities", nil, &out)
	return out, err
}

func (c *Client) University(ctx context.Context, id int) (catalog.University, error) {
	var out catalog.University
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/universities/%d", id), nil, &out)
	return out, err
}

func (c *Client) CreateUniversity(ctx context.Context, data catalog.NewUniversity) (catalog.University, error) {
	var out catalog.University
	err := c.do(ctx, http.MethodPost, "/universities", data, &out)
	return out, err
}

func (c *Client) UpdateUniversity(ctx context.Context, id int, data catalog.NewUniversity) (catalog.University, error) {
	var out catalog.University
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/universities/%d", id), data, &out)
	return out, err
}

func (c *Client) DeleteUniversity(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/universities/%d", id), nil, nil)
}

func (c *Client) Programs(ctx context.Context) ([]catalog.Program, error) {
	var out []catalog.Program
	err := c.do(ctx, http.MethodGet, "/programs", nil, &out)
	return out, err
}

func (c *Client) Program(ctx context.Context, id int) (catalog.Program, error) {
	var out catalog.Program
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/programs/%d", id), nil, &out)
	return out, err
}

func (c *Client) ProgramsByUniversity(ctx context.Context, universityID int) ([]catalog.Program, error) {
	var out []catalog.Program
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/programs/university/%d", universityID), nil, &out)
	return out, err
}

func (c *Client) ProgramsByDegreeType(ctx context.Context, degreeType string) ([]catalog.Program, error) {
	var out []catalog.Program
	err := c.do(ctx, http.MethodGet, "/programs/degree/"+url.PathEscape(degreeType), nil, &out)
	return out, err
}

func (c *Client) ProgramsByStatus(ctx context.Context, status string) ([]catalog.Program, error) {
	var out []catalog.Program
	err := c.do(ctx, http.MethodGet, "/programs/status/"+url.PathEscape(status), nil, &out)
	return out, err
}

func (c *Client) CreateProgram(ctx context.Context, data catalog.NewProgram) (catalog.Program, error) {
	var out catalog.Program
	err := c.do(ctx, http.MethodPost, "/programs", data, &out)
	return out, err
}

func (c *Client) UpdateProgram(ctx context.Context, id int, data catalog.NewProgram) (catalog.Program, error) {
	var out catalog.Program
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/programs/%d", id), data, &out)
	return out, err
}

func (c *Client) DeleteProgram(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/programs/%d", id), nil, nil)
}
