package utils

import (
	"errors"
	"fmt"
)

// Sentinel kinds for request-level failures. Handlers translate these to
// HTTP status codes; the wrapped message is what the client sees.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnauthorized      = errors.New("unauthorized")
)

// RequestError carries a sentinel kind plus the user-facing message.
type RequestError struct {
	Kind    error
	Message string
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Unwrap() error { return e.Kind }

func NotFound(format string, args ...interface{}) error {
	return &RequestError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidInput(format string, args ...interface{}) error {
	return &RequestError{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &RequestError{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func InsufficientStock(format string, args ...interface{}) error {
	return &RequestError{Kind: ErrInsufficientStock, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...interface{}) error {
	return &RequestError{Kind: ErrUnauthorized, Message: fmt.Sprintf(format, args...)}
}
