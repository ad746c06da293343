package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// wizard session does not exist (never created, or expired from memory).
// Handlers treat this as "start a fresh session".
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when form input fails
// validation (e.g. blank location, end time not after start time).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
