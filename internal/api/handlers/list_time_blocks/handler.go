package list_time_blocks

import (
	"net/http"
	"time"

	"github.com/fotodesk/FD-ScheduleService/internal/api/handlers"
	"github.com/fotodesk/FD-ScheduleService/internal/service/timeblocks/models"
)

const (
	msgInvalidQuery = "invalid query parameters"
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

// Handle GET /api/v1/time-blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	req := &models.ListTimeBlocksRequest{}
	if ids, ok := values["staffId"]; ok {
		req.StaffIDs = ids
	}
	if raw := values.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /time-blocks - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		from = from.UTC()
		req.From = &from
	}
	if raw := values.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /time-blocks - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		to = to.UTC()
		req.To = &to
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /time-blocks - Failed to list time blocks: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /time-blocks - Listed %d time blocks", len(result.TimeBlocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
