package domain

import "errors"

var (
	// ErrNotFound is returned when a lookup that expects one row finds none.
	ErrNotFound = errors.New("not found")

	// ErrInstanceClosed is returned when a flight instance already has a
	// flown reservation and accepts no further bookings.
	ErrInstanceClosed = errors.New("flight instance is closed")

	// ErrCapacityExhausted is returned when an identifier space has no
	// values left.
	ErrCapacityExhausted = errors.New("identifier space exhausted")
)
