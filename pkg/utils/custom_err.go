package utils

import "errors"

// Error kinds. Services wrap these so HandleServiceError can pick a status.
var (
	ErrValidation      = errors.New("validation error")
	ErrAuth            = errors.New("invalid credentials")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrStorage         = errors.New("storage error")
)

// ServiceError pairs an error kind with a message that is safe to show to the caller.
type ServiceError struct {
	Kind    error
	Message string
}

func NewServiceError(kind error, message string) *ServiceError {
	return &ServiceError{Kind: kind, Message: message}
}

func (e *ServiceError) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Kind
}

func ValidationError(message string) error {
	return NewServiceError(ErrValidation, message)
}

// PublicMessage returns the caller-facing message carried by err, or fallback.
func PublicMessage(err error, fallback string) string {
	var se *ServiceError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}
