package dayview

import (
	"context"
	"time"

	"github.com/klyszcz/salon-dayview/internal/domain"
)

// SalonAPIClient is the slice of the salon API used by the day view
type SalonAPIClient interface {
	ListAppointmentsForDay(ctx context.Context, day time.Time) ([]*domain.Appointment, error)
	ListActiveEmployees(ctx context.Context) ([]*domain.Employee, error)
}

// TimeProvider supplies the current time; swapped out in tests
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production TimeProvider
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }

// Logger is the logging interface required by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
