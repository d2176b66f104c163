package change_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/klyszcz/salon-dayview/internal/api/handlers"
	"github.com/klyszcz/salon-dayview/internal/api/middleware"
	"github.com/klyszcz/salon-dayview/internal/service/statusflow"
)

const (
	msgInvalidAppointmentID = "nieprawidłowy identyfikator wizyty"
	msgInvalidRequestBody   = "nieprawidłowe dane żądania"
	msgMissingViewer        = "brak danych uwierzytelniających"
	msgNotFound             = "wizyta nie została znaleziona"
	msgForbidden            = "brak uprawnień do zmiany statusu"
	msgChangeInFlight       = "zmiana statusu jest już w toku"
	msgChangeFailed         = "nie udało się zmienić statusu"
)

type Handler struct {
	service StatusFlowService
	logger  Logger
}

func NewHandler(service StatusFlowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/{id}/status - Missing viewer identity")
		handlers.RespondUnauthorized(w, msgMissingViewer)
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := req.ToServiceRequest(appointmentID, viewer)

	err = h.service.ChangeStatus(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, statusflow.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/status - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, statusflow.ErrNotAllowed):
			h.logger.Warn("POST /appointments/{id}/status - Not allowed: appointment_id=%d, user=%d, target=%s",
				appointmentID, viewer.UserID, req.Status)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, statusflow.ErrChangeInFlight):
			h.logger.Warn("POST /appointments/{id}/status - Change in flight: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgChangeInFlight)

		case errors.Is(err, statusflow.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/status - Invalid input: appointment_id=%d, target=%s",
				appointmentID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, statusflow.ErrChangeFailed):
			h.logger.Error("POST /appointments/{id}/status - Rolled back: appointment_id=%d, target=%s, error=%v",
				appointmentID, req.Status, err)
			handlers.RespondBadGateway(w, msgChangeFailed)

		default:
			h.logger.Error("POST /appointments/{id}/status - Failed: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/status - Status changed: appointment_id=%d, target=%s, user=%d",
		appointmentID, req.Status, viewer.UserID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
