package delete_time_block

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fotodesk/FD-ScheduleService/internal/api/handlers"
	"github.com/fotodesk/FD-ScheduleService/internal/service/timeblocks"
)

const (
	msgMissingTimeBlockID = "missing time block id"
	msgNotFound           = "time block not found"
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

// Handle DELETE /api/v1/time-blocks/{timeBlockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	timeBlockID := mux.Vars(r)["timeBlockId"]
	if timeBlockID == "" {
		h.logger.Warn("DELETE /time-blocks/{id} - Missing time block ID")
		handlers.RespondBadRequest(w, msgMissingTimeBlockID)
		return
	}

	if err := h.service.Delete(r.Context(), timeBlockID); err != nil {
		switch {
		case errors.Is(err, timeblocks.ErrTimeBlockNotFound):
			h.logger.Warn("DELETE /time-blocks/{id} - Time block not found: id=%s", timeBlockID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /time-blocks/{id} - Failed to delete time block: id=%s, error=%v", timeBlockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /time-blocks/{id} - Time block deleted: id=%s", timeBlockID)
	w.WriteHeader(http.StatusNoContent)
}
