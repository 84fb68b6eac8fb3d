package get_week_view

import (
	"errors"
	"net/http"

	"github.com/fotodesk/FD-ScheduleService/internal/api/handlers"
	getWeekView "github.com/fotodesk/FD-ScheduleService/internal/usecase/get_week_view"
)

const (
	msgInvalidQuery = "invalid query parameters"
)

type Handler struct {
	useCase GetWeekViewUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/week-view
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /week-view - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getWeekView.ErrInvalidInput):
			h.logger.Warn("GET /week-view - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /week-view - Failed to compute week view: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /week-view - Computed week=%s lanes=%d jump=%v",
		result.WeekStart.Format("2006-01-02"), len(result.Lanes), result.JumpToWeek != nil)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
