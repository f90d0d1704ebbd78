package portalapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/application"
)

var _ application.API = (*Client)(nil)

func (c *Client) Applications(ctx context.Context) ([]application.Application, error) {
	var out []application.Application
	err := c.do(ctx, http.MethodGet, "/applications", nil, &out)
	return out, err
}

func (c *Client) Application(ctx context.Context, id int) (application.Application, error) {
	var out application.Application
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/applications/%d", id), nil, &out)
	return out, err
}

func (c *Client) ApplicationsByStudent(ctx context.Context, studentID int) ([]application.Application, error) {
	var out []application.Application
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/applications/student/%d", studentID), nil, &out)
	return out, err
}

func (c *Client) ApplicationsByUniversity(ctx context.Context, universityID int) ([]application.Application, error) {
	var out []application.Application
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/applications/university/%d", universityID), nil, &out)
	return out, err
}

func (c *Client) ApplicationsByProgram(ctx context.Context, programID int) ([]application.Application, error) {
	var out []application.Application
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/applications/program/%d", programID), nil, &out)
	return out, err
}

func (c *Client) ApplicationsByStatus(ctx context.Context, status string) ([]application.Application, error) {
	var out []application.Application
	err := c.do(ctx, http.MethodGet, "/applications/status/"+url.PathEscape(status), nil, &out)
	return out, err
}

// SubmitApplication creates an application through the per-student
// convenience endpoint.
func (c *Client) SubmitApplication(ctx context.Context, studentID int, data application.NewApplication) (application.Application, error) {
	var out application.Application
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/students/%d/application", studentID), data, &out)
	return out, err
}

func (c *Client) UpdateApplication(ctx context.Context, id int, data application.NewApplication) (application.Application, error) {
	var out application.Application
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/applications/%d", id), data, &out)
	return out, err
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, id int, status string) error {
	path := fmt.Sprintf("/applications/%d/status?status=%s", id, url.QueryEscape(status))
	return c.do(ctx, http.MethodPatch, path, nil, nil)
}

func (c *Client) DeleteApplication(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/applications/%d", id), nil, nil)
}

// UploadCV stores the CV ahead of application submission and returns the
// stored file path to reference in the form.
func (c *Client) UploadCV(ctx context.Context, cv core.Attachment) (string, error) {
	var out struct {
		FilePath string `json:"filePath"`
	}
	files := map[string]core.Attachment{"file": cv}
	if err := c.doMultipart(ctx, "/files/upload-cv", nil, files, &out); err != nil {
		return "", err
	}
	return out.FilePath, nil
}
