package statusflow

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment is not part of
	// the currently loaded day
	ErrAppointmentNotFound = errors.New("statusflow: appointment not found")

	// ErrNotAllowed is returned when the requested transition is not among
	// the actions offered to the viewer (authorization or state machine)
	ErrNotAllowed = errors.New("statusflow: transition not allowed")

	// ErrChangeInFlight is returned when another status change on the same
	// record has not resolved yet
	ErrChangeInFlight = errors.New("statusflow: status change already in flight")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("statusflow: invalid input")

	// ErrChangeFailed is returned after a failed upstream request; the local
	// record has been rolled back to its pre-change snapshot
	ErrChangeFailed = errors.New("statusflow: status change failed and was rolled back")
)
