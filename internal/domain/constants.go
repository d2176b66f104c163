package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// "Can start now" window around the planned start time.
// Starting is allowed from 15 minutes before the planned start up to
// 4 hours after it, tolerating both early and late actual starts.
const (
	CanStartEarly = 15 * time.Minute
	CanStartLate  = 4 * time.Hour
)

// Default day grid window (minutes since midnight), 08:00-20:00.
// Overridable via [dayview] config.
const (
	DefaultGridStartMinute = 8 * 60
	DefaultGridEndMinute   = 20 * 60
)

// MaxCancellationReasonLength limits the free-text reason forwarded upstream
const MaxCancellationReasonLength = 500

// TerminalStatuses lists statuses with no outgoing transitions
var TerminalStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// statusDisplayPL maps statuses to the local Polish labels shown proactively
// before the server-supplied label arrives
var statusDisplayPL = map[AppointmentStatus]string{
	StatusPending:    "Oczekująca",
	StatusConfirmed:  "Potwierdzona",
	StatusInProgress: "W trakcie",
	StatusCompleted:  "Zakończona",
	StatusCancelled:  "Anulowana",
	StatusNoShow:     "Nieobecność",
}

// StatusDisplayPL returns the local Polish label for a status.
// Unknown statuses fall back to the raw value.
func StatusDisplayPL(s AppointmentStatus) string {
	if label, ok := statusDisplayPL[s]; ok {
		return label
	}
	return string(s)
}
