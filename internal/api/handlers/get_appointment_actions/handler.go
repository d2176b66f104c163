package get_appointment_actions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/klyszcz/salon-dayview/internal/api/handlers"
	"github.com/klyszcz/salon-dayview/internal/api/middleware"
	"github.com/klyszcz/salon-dayview/internal/domain"
	"github.com/klyszcz/salon-dayview/internal/service/dayview"
	"github.com/klyszcz/salon-dayview/internal/service/dayview/models"
)

const (
	msgInvalidAppointmentID = "nieprawidłowy identyfikator wizyty"
	msgMissingViewer        = "brak danych uwierzytelniających"
	msgNotFound             = "wizyta nie została znaleziona"
)

type Handler struct {
	service DayViewService
	logger  Logger
}

func NewHandler(service DayViewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}/actions
// The action list is derived server-side for the requesting viewer; the UI
// never computes or caches legality itself.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/{id}/actions - Missing viewer identity")
		handlers.RespondUnauthorized(w, msgMissingViewer)
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/{id}/actions - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	appt, err := h.service.GetAppointment(appointmentID)
	if err != nil {
		if errors.Is(err, dayview.ErrAppointmentNotFound) {
			h.logger.Warn("GET /appointments/{id}/actions - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /appointments/{id}/actions - Failed: appointment_id=%d, error=%v", appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	actions := domain.ActionsFor(&appt, viewer, h.service.Now())

	h.logger.Info("GET /appointments/{id}/actions - %d actions for appointment_id=%d, user=%d",
		len(actions), appointmentID, viewer.UserID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainActions(actions))
}
