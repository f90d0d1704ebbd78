package core

import "fmt"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// APIError is a failed response from the portal backend, translated into a
// plain message at the client boundary so callers never inspect raw payloads.
type APIError struct {
	StatusCode int
	Message    string
}

func NewAPIError(code int, msg string) *APIError {
	return &APIError{StatusCode: code, Message: msg}
}

func (err APIError) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("request failed with status %d", err.StatusCode)
	}
	return err.Message
}
