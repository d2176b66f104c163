package refresh_day_view

import (
	"net/http"
	"time"

	"github.com/klyszcz/salon-dayview/internal/api/handlers"
	"github.com/klyszcz/salon-dayview/internal/api/middleware"
	"github.com/klyszcz/salon-dayview/internal/domain"
)

const (
	msgInvalidDate   = "nieprawidłowa data"
	msgMissingViewer = "brak danych uwierzytelniających"
	msgLoadFailed    = "nie udało się pobrać wizyt"
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

// Handle POST /api/v1/dayview/refresh
// Query params: date (YYYY-MM-DD, optional, defaults to today)
// Always refetches from the salon API, even for the currently loaded day.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		h.logger.Warn("POST /dayview/refresh - Missing viewer identity")
		handlers.RespondUnauthorized(w, msgMissingViewer)
		return
	}

	day := h.service.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
		if err != nil {
			h.logger.Warn("POST /dayview/refresh - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		day = parsed
	}

	if err := h.service.LoadDay(r.Context(), day); err != nil {
		h.logger.Error("POST /dayview/refresh - Failed to reload day: date=%s, error=%v",
			day.Format(domain.DateFormat), err)
		handlers.RespondBadGateway(w, msgLoadFailed)
		return
	}

	view, err := h.service.View(viewer)
	if err != nil {
		h.logger.Error("POST /dayview/refresh - Failed to render view: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /dayview/refresh - Day reloaded: date=%s, user=%d", view.Date, viewer.UserID)
	handlers.RespondJSON(w, http.StatusOK, view)
}
