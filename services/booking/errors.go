package booking

import (
	"errors"
	"fmt"
)

// ErrorCode classifies booking engine failures.
type ErrorCode string

const (
	CodeNotFound         ErrorCode = "notFound"
	CodeInvalidArgument  ErrorCode = "invalidArgument"
	CodeConflict         ErrorCode = "conflict"
	CodePermissionDenied ErrorCode = "permissionDenied"
	CodeInvalidState     ErrorCode = "invalidState"
)

// BookingError carries a machine-readable code alongside the message.
type BookingError struct {
	Code    ErrorCode
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(what string) error {
	return &BookingError{Code: CodeNotFound, Message: what + " not found"}
}

func NewInvalidArgumentError(msg string) error {
	return &BookingError{Code: CodeInvalidArgument, Message: msg}
}

func NewConflictError(msg string) error {
	return &BookingError{Code: CodeConflict, Message: msg}
}

func NewPermissionDeniedError(msg string) error {
	return &BookingError{Code: CodePermissionDenied, Message: msg}
}

func NewInvalidStateError(msg string) error {
	return &BookingError{Code: CodeInvalidState, Message: msg}
}

// IsCode reports whether err is a BookingError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var be *BookingError
	return errors.As(err, &be) && be.Code == code
}
