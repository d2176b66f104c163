package salonapi

import "errors"

var (
	// ErrAppointmentNotFound is returned when the salon API knows no such appointment
	ErrAppointmentNotFound = errors.New("salonapi client: appointment not found")

	// ErrStatusRejected is returned when the salon API refuses the status change
	// (validation failure on the authoritative side)
	ErrStatusRejected = errors.New("salonapi client: status change rejected")

	// ErrInternal is returned on internal client errors (request building, transport)
	ErrInternal = errors.New("salonapi client: internal error")

	// ErrInvalidResponse is returned when the salon API responds with an
	// unexpected status code or a malformed body
	ErrInvalidResponse = errors.New("salonapi client: invalid response")
)
