package get_appointment_actions

import (
	"time"

	"github.com/klyszcz/salon-dayview/internal/domain"
)

type DayViewService interface {
	GetAppointment(id int64) (domain.Appointment, error)
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
