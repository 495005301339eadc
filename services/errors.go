package services

import (
	"errors"
	"strings"
)

// Domain errors controllers translate into HTTP statuses. Every one of
// these is recoverable by the user re-initiating the action.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrSubtotalMismatch   = errors.New("subtotal mismatch")
)

// FieldErrors carries per-field validation messages for catalog forms.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for k, v := range f {
		parts = append(parts, k+": "+v)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
