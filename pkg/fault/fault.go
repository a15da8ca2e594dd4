package fault

import (
	"errors"
	"fmt"
)

// ErrNotFound marks an expected absence (e.g. no briefing at a slug), as
// opposed to a storage failure.
var ErrNotFound = errors.New("resource not found")

type ErrorType int

const (
	ErrClient ErrorType = iota
	ErrValidation
	ErrInternal
)

// FieldError is a single human-readable validation failure for one payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Fault struct {
	Type    ErrorType
	Message string
	Fields  []FieldError // populated for ErrValidation only
	Err     error
}

func (e *Fault) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.typeString(), e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.typeString(), e.Message)
}

// Unwrap allows errors.Is and errors.As to work.
func (e *Fault) Unwrap() error {
	return e.Err
}

func (e *Fault) typeString() string {
	switch e.Type {
	case ErrClient:
		return "ClientError"
	case ErrValidation:
		return "ValidationError"
	case ErrInternal:
		return "InternalError"
	default:
		return "UnknownError"
	}
}

// NewClientError creates a new client error.
func NewClientError(msg string, err error) error {
	return &Fault{Type: ErrClient, Message: msg, Err: err}
}

// NewValidationError creates a validation error carrying per-field messages.
func NewValidationError(msg string, fields []FieldError) error {
	return &Fault{Type: ErrValidation, Message: msg, Fields: fields}
}

// NewInternalError creates a new internal server error.
func NewInternalError(msg string, err error) error {
	return &Fault{Type: ErrInternal, Message: msg, Err: err}
}

// IsClientError checks if an error is a client error.
func IsClientError(err error) bool {
	var f *Fault
	if errors.As(err, &f) {
		return f.Type == ErrClient
	}
	return false
}

// ValidationFields returns the field errors carried by err, if any.
func ValidationFields(err error) ([]FieldError, bool) {
	var f *Fault
	if errors.As(err, &f) && f.Type == ErrValidation {
		return f.Fields, true
	}
	return nil, false
}

// IsInternalError checks if an error is an internal error.
func IsInternalError(err error) bool {
	var f *Fault
	if errors.As(err, &f) {
		return f.Type == ErrInternal
	}
	return false
}
