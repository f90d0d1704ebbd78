// Package directory covers the admin management screens for student and
// admin records.
package directory

import "time"

type Student struct {
	ID          int       `json:"studentId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Country     string    `json:"country"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Admin struct {
	ID        int       `json:"adminId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
