package dayview

import "errors"

var (
	// ErrLoadFailed is returned when the salon API could not be reached or
	// answered with a malformed payload; local collections are reset to empty
	ErrLoadFailed = errors.New("dayview: failed to load day from salon API")

	// ErrDayNotLoaded is returned when the view is requested before any
	// successful load
	ErrDayNotLoaded = errors.New("dayview: no day loaded")

	// ErrAppointmentNotFound is returned when the appointment is not part of
	// the currently loaded day
	ErrAppointmentNotFound = errors.New("dayview: appointment not found in loaded day")
)
