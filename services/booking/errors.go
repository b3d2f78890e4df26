package booking

import "errors"

var (
	// ErrSessionNotFound means the booking-creation session expired or never existed.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrSlotUnavailable means the chosen slot is blocked and cannot be selected.
	ErrSlotUnavailable = errors.New("slot is not available")
	// ErrSlotNotFound means the chosen slot id is not in the session's current slot list.
	ErrSlotNotFound = errors.New("slot not found in session")
	// ErrNoSlotSelected means confirmation was attempted without an explicit slot selection.
	ErrNoSlotSelected = errors.New("no slot selected")
	// ErrIncompleteForm means customer, vehicle or service fields are missing.
	ErrIncompleteForm = errors.New("customer, vehicle and services must all be provided")
	// ErrInvalidTransition means the requested step does not fit the session's current state.
	ErrInvalidTransition = errors.New("invalid session state for this operation")
)
