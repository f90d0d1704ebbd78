package session

import (
	"errors"

	"github.com/trezcool/safari/core"
)

// User types
const (
	TypeStudent = "STUDENT"
	TypeAdmin   = "ADMIN"
)

var (
	// errors
	ErrNoSession = errors.New("no stored session")
)

// Principal is the authenticated identity held by the Store. It is either
// fully absent (zero value) or fully populated; StudentID/AdminID are
// compatibility aliases of UserID derived from UserType, never persisted.
type Principal struct {
	Email     string `json:"email"`
	UserType  string `json:"userType"`
	Role      string `json:"role"`
	UserID    int    `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	StudentID int `json:"-"`
	AdminID   int `json:"-"`
}

func (p Principal) IsZero() bool {
	return p == Principal{}
}

func (p Principal) IsAdmin() bool {
	return p.UserType == TypeAdmin
}

func (p Principal) IsStudent() bool {
	return p.UserType == TypeStudent
}

func (p Principal) DisplayName() string {
	if p.FirstName != "" {
		return p.FirstName
	}
	return "User"
}

// withAliases populates the type-specific id aliases for callers that expect them.
func (p Principal) withAliases() Principal {
	p.StudentID, p.AdminID = 0, 0
	switch p.UserType {
	case TypeStudent:
		p.StudentID = p.UserID
	case TypeAdmin:
		p.AdminID = p.UserID
	}
	return p
}

// Credentials is a login request.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return core.Validate.Struct(c)
}

// NewStudent contains information needed to register a student account.
// Registration does not establish a session; students log in afterwards.
type NewStudent struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,phone"`
	Country     string `json:"country"`
}

func (ns *NewStudent) Validate() error {
	ns.FirstName = core.CleanString(ns.FirstName)
	ns.LastName = core.CleanString(ns.LastName)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	return core.Validate.Struct(ns)
}

// NewAdmin contains information needed to register an admin account.
type NewAdmin struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required"`
}

func (na *NewAdmin) Validate() error {
	na.FirstName = core.CleanString(na.FirstName)
	na.LastName = core.CleanString(na.LastName)
	na.Email = core.CleanString(na.Email, true /* lower */)
	return core.Validate.Struct(na)
}
