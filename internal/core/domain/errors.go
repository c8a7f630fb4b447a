package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUserExists signals the pre-insert duplicate check found an existing
// record with the same email or username.
var ErrUserExists = errors.New("user with this email or username already exists")

// ErrNotConnected signals the storage backend is unreachable.
var ErrNotConnected = errors.New("database not connected")

// ValidationError rejects a submitted record with a precise, client-facing
// reason.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewMissingFieldsError enumerates every missing required field, in the
// order they were checked.
func NewMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{Message: "missing required fields: " + strings.Join(fields, ", ")}
}

// DuplicateKeyError is the storage layer's authoritative duplicate signal: a
// unique-index violation raised at insert time, beyond the pre-check.
type DuplicateKeyError struct {
	Fields []string
}

func (e *DuplicateKeyError) Error() string {
	fields := "unknown"
	if len(e.Fields) > 0 {
		fields = strings.Join(e.Fields, ", ")
	}
	return fmt.Sprintf("duplicate value for field(s): %s", fields)
}
