package portalapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/payment"
)

var _ payment.API = (*Client)(nil)

func (c *Client) Payments(ctx context.Context) ([]payment.Payment, error) {
	var out []payment.Payment
	err := c.do(ctx, http.MethodGet, "/payments", nil, &out)
	return out, err
}

func (c *Client) Payment(ctx context.Context, id int) (payment.Payment, error) {
	var out payment.Payment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/payments/%d", id), nil, &out)
	return out, err
}

func (c *Client) PaymentsByApplication(ctx context.Context, applicationID int) ([]payment.Payment, error) {
	var out []payment.Payment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/payments/application/%d", applicationID), nil, &out)
	return out, err
}

// UploadPayment posts the payment form as a JSON part next to the slip file.
func (c *Client) UploadPayment(ctx context.Context, data payment.NewPayment, slip core.Attachment) (payment.Payment, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return payment.Payment{}, errors.Wrap(err, "marshalling payment payload")
	}
	fields := map[string]string{"payment": string(payload)}
	files := map[string]core.Attachment{"slipFile": slip}

	var out payment.Payment
	err = c.doMultipart(ctx, "/payments/upload", fields, files, &out)
	return out, err
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, id int, status, reason string) error {
	path := fmt.Sprintf("/payments/%d/status?status=%s&reason=%s", id, url.QueryEscape(status), url.QueryEscape(reason))
	return c.do(ctx, http.MethodPatch, path, nil, nil)
}

func (c *Client) DeletePayment(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/payments/%d", id), nil, nil)
}
