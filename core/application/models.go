package application

import (
	"time"

	"github.com/trezcool/safari/core"
)

// Application statuses
const (
	StatusPending     = "PENDING"
	StatusUnderReview = "UNDER_REVIEW"
	StatusApproved    = "APPROVED"
	StatusRejected    = "REJECTED"
)

// Application types
const (
	TypeUndergraduate = "UNDERGRADUATE"
	TypePostgraduate  = "POSTGRADUATE"
	TypeDoctorate     = "DOCTORATE"
)

type Application struct {
	ID               int       `json:"applicationId"`
	StudentID        int       `json:"studentId"`
	UniversityID     int       `json:"universityId"`
	ProgramID        int       `json:"programId"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phoneNumber"`
	Country          string    `json:"country"`
	ApplicationType  string    `json:"applicationType"`
	Status           string    `json:"status"`
	CVFilePath       string    `json:"cvFilePath,omitempty"`
	MotivationLetter string    `json:"motivationLetter,omitempty"`
	SubmittedAt      time.Time `json:"submittedAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// NewApplication is the student application form. The CV is uploaded first
// and its stored path submitted with the rest of the form.
type NewApplication struct {
	FirstName        string `json:"firstName" validate:"required"`
	LastName         string `json:"lastName" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	PhoneNumber      string `json:"phoneNumber" validate:"required,phone"`
	DateOfBirth      string `json:"dateOfBirth"`
	Gender           string `json:"gender"`
	Country          string `json:"country" validate:"required"`
	Address          string `json:"address"`
	UniversityID     int    `json:"universityId" validate:"required"`
	ProgramID        int    `json:"programId" validate:"required"`
	ApplicationType  string `json:"applicationType" validate:"required,oneof=UNDERGRADUATE POSTGRADUATE DOCTORATE"`
	MotivationLetter string `json:"motivationLetter"`
	CVFilePath       string `json:"cvFilePath"`
}

func (na *NewApplication) Validate() error {
	na.FirstName = core.CleanString(na.FirstName)
	na.LastName = core.CleanString(na.LastName)
	na.Email = core.CleanString(na.Email, true /* lower */)
	return core.Validate.Struct(na)
}
