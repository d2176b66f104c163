package change_status

import (
	"github.com/klyszcz/salon-dayview/internal/domain"
	"github.com/klyszcz/salon-dayview/internal/service/statusflow"
	"github.com/klyszcz/salon-dayview/pkg/ptr"
)

// ChangeStatusRequest is the HTTP request model
type ChangeStatusRequest struct {
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest converts the HTTP request into the coordinator's model
func (r *ChangeStatusRequest) ToServiceRequest(appointmentID int64, viewer domain.Viewer) *statusflow.ChangeRequest {
	return &statusflow.ChangeRequest{
		AppointmentID: appointmentID,
		Target:        domain.AppointmentStatus(r.Status),
		Reason:        ptr.Deref(r.CancellationReason),
		Viewer:        viewer,
	}
}
