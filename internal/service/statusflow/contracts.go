package statusflow

import (
	"context"
	"time"

	"github.com/klyszcz/salon-dayview/internal/domain"
)

// DayState is the mutable in-memory day view state the coordinator applies
// optimistic changes against. Implemented by the dayview service.
type DayState interface {
	GetAppointment(id int64) (domain.Appointment, error)
	ApplyStatus(id int64, status domain.AppointmentStatus) (domain.StatusSnapshot, error)
	RestoreStatus(id int64, snapshot domain.StatusSnapshot)
	TryBeginChange(id int64) bool
	EndChange(id int64)
}

// SalonAPIClient is the slice of the salon API used by the coordinator
type SalonAPIClient interface {
	ChangeStatus(ctx context.Context, appointmentID int64, status domain.AppointmentStatus, reason string) (*domain.Appointment, error)
}

// TimeProvider supplies the current time; swapped out in tests
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production TimeProvider
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }

// MetricsRecorder records status-change outcomes; may be nil
type MetricsRecorder interface {
	RecordStatusChange(target, outcome string)
}

// Logger is the logging interface required by the coordinator
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
