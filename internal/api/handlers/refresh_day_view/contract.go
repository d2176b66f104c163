package refresh_day_view

import (
	"context"
	"time"

	"github.com/klyszcz/salon-dayview/internal/domain"
	"github.com/klyszcz/salon-dayview/internal/service/dayview/models"
)

type DayViewService interface {
	LoadDay(ctx context.Context, day time.Time) error
	View(viewer domain.Viewer) (*models.DayViewResponse, error)
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
