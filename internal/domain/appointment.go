package domain

import (
	"time"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// Appointment represents a booked salon visit as seen by the day view.
// The upstream API owns the record; this is a per-day cached projection.
type Appointment struct {
	ID            int64
	StartAt       time.Time
	EndAt         time.Time
	Status        AppointmentStatus
	StatusDisplay string // server-supplied human label, falls back to the local map
	EmployeeID    int64
	ClientID      *int64 // nil for walk-ins
	ServiceName   string
}

// IsTerminal returns true if no further status transitions are possible
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted ||
		a.Status == StatusCancelled ||
		a.Status == StatusNoShow
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// CanStartNow reports whether starting the visit is currently allowed.
// The window tolerates early starts up to CanStartEarly before the planned
// start and late starts up to CanStartLate after it.
func (a *Appointment) CanStartNow(now time.Time) bool {
	earliest := a.StartAt.Add(-CanStartEarly)
	latest := a.StartAt.Add(CanStartLate)
	return !now.Before(earliest) && !now.After(latest)
}

// DisplayLabel returns the server-supplied status label when present,
// otherwise the local Polish label for the status.
func (a *Appointment) DisplayLabel() string {
	if a.StatusDisplay != "" {
		return a.StatusDisplay
	}
	return StatusDisplayPL(a.Status)
}

// StatusSnapshot captures the pre-change {status, display} pair used by the
// optimistic update rollback path. Restored byte-for-byte on failure.
type StatusSnapshot struct {
	Status        AppointmentStatus
	StatusDisplay string
}

// Snapshot captures the appointment's current status pair
func (a *Appointment) Snapshot() StatusSnapshot {
	return StatusSnapshot{
		Status:        a.Status,
		StatusDisplay: a.StatusDisplay,
	}
}

// Restore reverts the appointment to a previously captured snapshot
func (a *Appointment) Restore(s StatusSnapshot) {
	a.Status = s.Status
	a.StatusDisplay = s.StatusDisplay
}

// IsValidStatus returns true for a known status value.
// Unknown values coming from the upstream API are rejected at the boundary.
func IsValidStatus(s string) bool {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}
