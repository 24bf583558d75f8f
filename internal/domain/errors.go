package domain

import (
	"errors"
	"fmt"
)

// Failure taxonomy shared by the repositories and the HTTP layer.
// Repositories classify store errors into these; handlers map them to
// status codes and never leak raw store errors to clients.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid input")
)

// Invalidf wraps ErrInvalid with a caller-facing message.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Conflictf wraps ErrConflict with a caller-facing message.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}
