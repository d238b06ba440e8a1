package services

import "errors"

// Failure kinds surfaced by every service operation. Controllers map these
// to HTTP statuses in one place; raw store errors never cross this boundary.
var (
	ErrValidation        = errors.New("validation failed")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyReviewed   = errors.New("order already reviewed")
	ErrNotDelivered      = errors.New("order not delivered yet")
)
