package change_status

import (
	"context"

	"github.com/klyszcz/salon-dayview/internal/service/statusflow"
)

type StatusFlowService interface {
	ChangeStatus(ctx context.Context, req *statusflow.ChangeRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
