package check_availability

import (
	"errors"
	"net/http"

	"github.com/fotodesk/FD-ScheduleService/internal/api/handlers"
	checkAvailability "github.com/fotodesk/FD-ScheduleService/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTimestamps  = "invalid start or end, expected RFC 3339"
	msgInvalidInterval    = "end must be after start"
	msgStaffNotFound      = "staff member not found"
	msgInvalidInput       = "invalid availability query"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability/check - Failed to parse timestamps: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamps)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrStaffNotFound):
			h.logger.Warn("POST /availability/check - Staff not found: staff_id=%s", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInterval):
			h.logger.Warn("POST /availability/check - Invalid interval: staff_id=%s", req.StaffID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability/check - Failed to check availability: staff_id=%s, error=%v", req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/check - Checked staff_id=%s available=%v", req.StaffID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
