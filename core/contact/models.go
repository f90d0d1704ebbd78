package contact

import (
	"time"

	"github.com/trezcool/safari/core"
)

// Message types
const (
	TypeGeneral     = "GENERAL"
	TypeAdmission   = "ADMISSION"
	TypePayment     = "PAYMENT"
	TypeTechnical   = "TECHNICAL"
	TypePartnership = "PARTNERSHIP"
)

type Message struct {
	ID        int       `json:"messageId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewMessage is the public contact form; it may be sent unauthenticated.
type NewMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"message" validate:"required"`
	Type    string `json:"type"`
}

func (nm *NewMessage) Validate() error {
	nm.Name = core.CleanString(nm.Name)
	nm.Email = core.CleanString(nm.Email, true /* lower */)
	nm.Subject = core.CleanString(nm.Subject)
	if nm.Type == "" {
		nm.Type = TypeGeneral
	}
	return core.Validate.Struct(nm)
}
