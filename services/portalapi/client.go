// Package portalapi is the JSON-over-HTTP client for the Safari portal
// backend. It owns the boundary concerns: bearer auth on every authenticated
// request, fixed timeouts (longer for uploads), multipart encoding for file
// uploads, and translation of backend error payloads into core.APIError.
package portalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/session"
)

type (
	Options struct {
		BaseURL string
		// Token supplies the current bearer token; empty means
		// unauthenticated. Read per request, localStorage-style, so login and
		// logout take effect immediately.
		Token  func() string
		Logger core.Logger

		Timeout       time.Duration // ordinary calls; default from config
		UploadTimeout time.Duration // multipart calls
	}

	Client struct {
		base   string
		token  func() string
		log    core.Logger
		http   *http.Client
		upload *http.Client
	}
)

func NewClient(opts *Options) *Client {
	base := opts.BaseURL
	if base == "" {
		base = core.Conf.GetString("apiBaseURL")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = core.Conf.GetDuration("requestTimeout")
	}
	uploadTimeout := opts.UploadTimeout
	if uploadTimeout <= 0 {
		uploadTimeout = core.Conf.GetDuration("uploadTimeout")
	}
	token := opts.Token
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		base:   strings.TrimRight(base, "/"),
		token:  token,
		log:    opts.Logger,
		http:   &http.Client{Timeout: timeout},
		upload: &http.Client{Timeout: uploadTimeout},
	}
}

// TokenFromStorage adapts durable session storage into a token source, the
// way the SPA read localStorage on every request.
func TokenFromStorage(st session.Storage) func() string {
	return func() string {
		token, err := st.ReadToken()
		if err != nil {
			return ""
		}
		return token
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s %s", method, path)
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	return req, nil
}

// do sends a JSON request and decodes the JSON response into out (when
// non-nil). A non-2xx response is returned as *core.APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "marshalling %s %s body", method, path)
		}
		buf = bytes.NewReader(data)
	}
	req, err := c.newRequest(ctx, method, path, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(c.http, req, out)
}

// doMultipart sends fields and files as multipart/form-data on the upload
// client. No Content-Type is set by hand beyond the writer's own, so the
// boundary always matches the body.
func (c *Client) doMultipart(ctx context.Context, path string, fields map[string]string, files map[string]core.Attachment, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return errors.Wrapf(err, "writing field %q", name)
		}
	}
	for name, att := range files {
		part, err := w.CreateFormFile(name, att.Filename)
		if err != nil {
			return errors.Wrapf(err, "creating file part %q", name)
		}
		if _, err := io.Copy(part, att.Content); err != nil {
			return errors.Wrapf(err, "copying file part %q", name)
		}
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "closing multipart writer")
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(c.upload, req, out)
}

func (c *Client) send(hc *http.Client, req *http.Request, out interface{}) error {
	resp, err := hc.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.errorFromResponse(req, resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decoding %s %s response", req.Method, req.URL.Path)
	}
	return nil
}

// errorFromResponse translates a failed response into *core.APIError. A 401
// is logged and surfaced like any other failure; the session is never torn
// down here, so an in-flight upload cannot be destroyed by a transient 401.
func (c *Client) errorFromResponse(req *http.Request, resp *http.Response) error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	_ = json.Unmarshal(body, &payload)

	msg := payload.Error
	if msg == "" {
		msg = payload.Message
	}

	if resp.StatusCode == http.StatusUnauthorized && c.log != nil {
		c.log.Warn("portalapi: unauthenticated response; leaving session intact", map[string]interface{}{
			"method": req.Method,
			"path":   req.URL.Path,
			"error":  msg,
		})
	}
	return core.NewAPIError(resp.StatusCode, msg)
}
