package update_time_block

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fotodesk/FD-ScheduleService/internal/api/handlers"
	"github.com/fotodesk/FD-ScheduleService/internal/service/timeblocks"
	"github.com/fotodesk/FD-ScheduleService/internal/service/timeblocks/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingTimeBlockID = "missing time block id"
	msgNotFound           = "time block not found"
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

// Handle PATCH /api/v1/time-blocks/{timeBlockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	timeBlockID := mux.Vars(r)["timeBlockId"]
	if timeBlockID == "" {
		h.logger.Warn("PATCH /time-blocks/{id} - Missing time block ID")
		handlers.RespondBadRequest(w, msgMissingTimeBlockID)
		return
	}

	var req models.UpdateTimeBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /time-blocks/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), timeBlockID, &req)
	if err != nil {
		switch {
		case errors.Is(err, timeblocks.ErrTimeBlockNotFound):
			h.logger.Warn("PATCH /time-blocks/{id} - Time block not found: time_block_id=%s", timeBlockID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, timeblocks.ErrInvalidTimeRange):
			h.logger.Warn("PATCH /time-blocks/{id} - Invalid time range: time_block_id=%s", timeBlockID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, timeblocks.ErrInvalidInput):
			h.logger.Warn("PATCH /time-blocks/{id} - Invalid input: time_block_id=%s", timeBlockID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /time-blocks/{id} - Failed to update time block: time_block_id=%s, error=%v", timeBlockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /time-blocks/{id} - Time block updated successfully: time_block_id=%s", timeBlockID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
