package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness. Code is only set
// for machine-checkable conflicts; Details carries field-level validation
// messages and ValidValues the accepted members of an enum field.
type Error struct {
	Code        string   `json:"code,omitempty"`
	Status      int      `json:"-"`
	Message     string   `json:"message"`
	Details     []string `json:"details,omitempty"`
	ValidValues []string `json:"validValues,omitempty"`
	Err         error    `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrNotFound    = New("", http.StatusNotFound, "Not found")
	ErrValidation  = New("", http.StatusBadRequest, "Invalid request data")
	ErrInternal    = New("", http.StatusInternalServerError, "Internal server error")
	ErrEmailExists = New("EMAIL_EXISTS", http.StatusConflict, "Student with this email already exists")
	ErrCourseFull  = New("COURSE_FULL", http.StatusConflict, "Course is at full capacity")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// WithDetails returns a copy of the error carrying field-level messages.
func WithDetails(err *Error, details []string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	clone.Details = details
	return &clone
}

// WithValidValues returns a copy of the error listing the accepted enum values.
func WithValidValues(err *Error, values []string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	clone.ValidValues = values
	return &clone
}
