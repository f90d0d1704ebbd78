package payment

import (
	"time"

	"github.com/trezcool/safari/core"
)

// Payment statuses
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Payment struct {
	ID            int       `json:"paymentId"`
	ApplicationID int       `json:"applicationId"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"paymentMethod"`
	SlipFilePath  string    `json:"slipFilePath,omitempty"`
	Status        string    `json:"status"`
	Reason        string    `json:"reason,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewPayment is the student's payment-proof form; the slip travels as a
// multipart part next to the JSON payload.
type NewPayment struct {
	ApplicationID int     `json:"applicationId" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Method        string  `json:"paymentMethod" validate:"required"`
}

func (np *NewPayment) Validate() error {
	np.Method = core.CleanString(np.Method)
	return core.Validate.Struct(np)
}
