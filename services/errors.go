// services/errors.go
package services

import "errors"

// Sentinel errors returned by the game services. Handlers map these to
// HTTP statuses; anything else is an internal failure. All validation
// happens before any mutating step, so a returned error means nothing
// was written.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyExists     = errors.New("already exists")
	ErrNotDue            = errors.New("not due")
)
