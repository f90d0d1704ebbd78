package payment

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/safari/core"
)

type (
	// API is the payment surface of the portal backend.
	API interface {
		Payments(ctx context.Context) ([]Payment, error)
		Payment(ctx context.Context, id int) (Payment, error)
		PaymentsByApplication(ctx context.Context, applicationID int) ([]Payment, error)
		// UploadPayment posts the payment form and slip file as multipart.
		UploadPayment(ctx context.Context, data NewPayment, slip core.Attachment) (Payment, error)
		UpdatePaymentStatus(ctx context.Context, id int, status, reason string) error
		DeletePayment(ctx context.Context, id int) error
	}

	Service struct {
		api API
		log core.Logger
	}
)

func NewService(api API, log core.Logger) *Service {
	return &Service{api: api, log: log}
}

// Upload validates the form client-side, then posts it with the slip. The
// slip itself is mandatory; a form that never had one does not reach the
// network.
func (svc *Service) Upload(ctx context.Context, data NewPayment, slip *core.Attachment) (Payment, error) {
	if err := data.Validate(); err != nil {
		return Payment{}, err
	}
	if slip == nil || slip.Content == nil {
		return Payment{}, core.NewValidationError(
			errors.New("payment slip is required"),
			core.FieldError{Field: "slipFile", Error: "Payment slip is required"},
		)
	}
	return svc.api.UploadPayment(ctx, data, *slip)
}

func (svc *Service) All(ctx context.Context) ([]Payment, error) {
	return svc.api.Payments(ctx)
}

func (svc *Service) Get(ctx context.Context, id int) (Payment, error) {
	return svc.api.Payment(ctx, id)
}

func (svc *Service) ByApplication(ctx context.Context, applicationID int) ([]Payment, error) {
	return svc.api.PaymentsByApplication(ctx, applicationID)
}

// Approve marks a payment approved.
func (svc *Service) Approve(ctx context.Context, id int) error {
	return svc.api.UpdatePaymentStatus(ctx, id, StatusApproved, "")
}

// Reject marks a payment rejected with an optional reason shown to the student.
func (svc *Service) Reject(ctx context.Context, id int, reason string) error {
	return svc.api.UpdatePaymentStatus(ctx, id, StatusRejected, reason)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	return svc.api.DeletePayment(ctx, id)
}
