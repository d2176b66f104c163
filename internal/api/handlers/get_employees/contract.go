package get_employees

import (
	"context"

	"github.com/klyszcz/salon-dayview/internal/domain"
)

type EmployeeLister interface {
	ListActiveEmployees(ctx context.Context) ([]*domain.Employee, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
