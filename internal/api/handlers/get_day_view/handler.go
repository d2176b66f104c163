package get_day_view

import (
	"errors"
	"net/http"
	"time"

	"github.com/klyszcz/salon-dayview/internal/api/handlers"
	"github.com/klyszcz/salon-dayview/internal/api/middleware"
	"github.com/klyszcz/salon-dayview/internal/domain"
	"github.com/klyszcz/salon-dayview/internal/service/dayview"
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

// Handle GET /api/v1/dayview
// Query params: date (YYYY-MM-DD, optional, defaults to today)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewer, ok := middleware.GetViewer(r.Context())
	if !ok {
		h.logger.Warn("GET /dayview - Missing viewer identity")
		handlers.RespondUnauthorized(w, msgMissingViewer)
		return
	}

	day := h.service.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
		if err != nil {
			h.logger.Warn("GET /dayview - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		day = parsed
	}

	if err := h.service.EnsureDay(r.Context(), day); err != nil {
		h.logger.Error("GET /dayview - Failed to load day: date=%s, error=%v",
			day.Format(domain.DateFormat), err)
		handlers.RespondBadGateway(w, msgLoadFailed)
		return
	}

	view, err := h.service.View(viewer)
	if err != nil {
		if errors.Is(err, dayview.ErrDayNotLoaded) {
			handlers.RespondBadGateway(w, msgLoadFailed)
			return
		}
		h.logger.Error("GET /dayview - Failed to render view: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dayview - Day view rendered: date=%s, user=%d, columns=%d",
		view.Date, viewer.UserID, len(view.Columns))
	handlers.RespondJSON(w, http.StatusOK, view)
}
