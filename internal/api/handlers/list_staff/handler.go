package list_staff

import (
	"net/http"

	"github.com/fotodesk/FD-ScheduleService/internal/api/handlers"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// includeInactive=true also returns archived staff members.
	activeOnly := r.URL.Query().Get("includeInactive") != "true"

	staff, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /staff - Failed to list staff: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff - Listed %d staff members", len(staff.Staff))
	handlers.RespondJSON(w, http.StatusOK, staff)
}
