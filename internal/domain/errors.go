package domain

import "errors"

// Sentinel errors shared across services and repositories. Controllers map
// these to HTTP status codes with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidInput    = errors.New("invalid input")
	ErrHostSignup      = errors.New("event host cannot sign up to their own event")
	ErrAlreadySignedUp = errors.New("already signed up to this event")
)
