package booking

import "errors"

// Domain-specific errors for the booking package.
var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrNoSlotSelected  = errors.New("no slot selected")
	ErrInvalidSlot     = errors.New("selected slot has invalid times")
	ErrSessionNotFound = errors.New("session not found")
)
