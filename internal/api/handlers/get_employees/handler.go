package get_employees

import (
	"net/http"

	"github.com/klyszcz/salon-dayview/internal/api/handlers"
	"github.com/klyszcz/salon-dayview/internal/service/dayview/models"
)

const msgLoadFailed = "nie udało się pobrać listy pracowników"

type Handler struct {
	client EmployeeLister
	logger Logger
}

func NewHandler(client EmployeeLister, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/v1/employees
// Returns the active employees used as day-grid columns, straight from the
// salon API (no day state required).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employees, err := h.client.ListActiveEmployees(r.Context())
	if err != nil {
		h.logger.Error("GET /employees - Failed to fetch employees: %v", err)
		handlers.RespondBadGateway(w, msgLoadFailed)
		return
	}

	h.logger.Info("GET /employees - Fetched %d active employees", len(employees))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainEmployees(employees))
}
