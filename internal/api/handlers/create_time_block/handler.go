package create_time_block

import (
	"errors"
	"net/http"

	"github.com/fotodesk/FD-ScheduleService/internal/api/handlers"
	"github.com/fotodesk/FD-ScheduleService/internal/service/timeblocks"
	"github.com/fotodesk/FD-ScheduleService/internal/service/timeblocks/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgStaffNotFound      = "staff member not found"
	msgInvalidTimeRange   = "end must be after start"
	msgInvalidInput       = "invalid time block data"
)

type Handler struct {
	service TimeBlockService
	logger  Logger
}

func NewHandler(service TimeBlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/time-blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTimeBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time-blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, timeblocks.ErrStaffNotFound):
			h.logger.Warn("POST /time-blocks - Staff not found: staff_id=%s", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, timeblocks.ErrInvalidTimeRange):
			h.logger.Warn("POST /time-blocks - Invalid time range: staff_id=%s", req.StaffID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, timeblocks.ErrInvalidInput):
			h.logger.Warn("POST /time-blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /time-blocks - Failed to create time block: staff_id=%s, error=%v", req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /time-blocks - Time block created: id=%s, staff_id=%s", created.ID, created.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
