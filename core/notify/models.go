package notify

import "time"

// Notification statuses
const (
	StatusPending   = "PENDING"
	StatusSent      = "SENT"
	StatusDelivered = "DELIVERED"
	StatusRead      = "READ"
	StatusFailed    = "FAILED"
)

// Notification types
const (
	TypeSignup              = "SIGNUP"
	TypeApplicationUpdate   = "APPLICATION_UPDATE"
	TypePaymentConfirmation = "PAYMENT_CONFIRMATION"
	TypeGeneral             = "GENERAL"
)

// Notification is a message scoped to exactly one recipient: a student by id,
// or the admin broadcast audience.
type Notification struct {
	ID          int        `json:"notificationId"`
	Subject     string     `json:"subject"`
	Title       string     `json:"title,omitempty"` // legacy alias of Subject
	Message     string     `json:"message"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	SentAt      time.Time  `json:"sentAt"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

// Unread reports whether the notification has not been acknowledged yet.
func (n Notification) Unread() bool {
	return n.Status == StatusSent || n.Status == StatusPending
}

// DisplaySubject falls back through the legacy title field.
func (n Notification) DisplaySubject() string {
	switch {
	case n.Subject != "":
		return n.Subject
	case n.Title != "":
		return n.Title
	}
	return "Notification"
}

// Timestamp falls back to CreatedAt for backends that never set SentAt.
func (n Notification) Timestamp() time.Time {
	if n.SentAt.IsZero() {
		return n.CreatedAt
	}
	return n.SentAt
}

// UnreadCount counts notifications whose status marks them unread.
func UnreadCount(items []Notification) int {
	var n int
	for _, item := range items {
		if item.Unread() {
			n++
		}
	}
	return n
}

// NewNotification is a message an admin sends to a specific student.
type NewNotification struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type"`
}
