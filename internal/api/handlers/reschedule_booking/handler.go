package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fotodesk/FD-ScheduleService/internal/api/handlers"
	rescheduleBooking "github.com/fotodesk/FD-ScheduleService/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidWeekStart   = "invalid weekStart, expected RFC 3339"
	msgMissingBookingID   = "missing booking id"
	msgNotFound           = "booking not found"
	msgStaffNotFound      = "target staff member not found"
	msgDropAborted        = "drop aborted, nothing changed"
	msgInvalidInput       = "invalid drag parameters"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("POST /bookings/{id}/reschedule - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/reschedule - Invalid weekStart: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reschedule - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrStaffNotFound):
			h.logger.Warn("POST /bookings/{id}/reschedule - Staff not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, rescheduleBooking.ErrDropAborted):
			// An aborted gesture is not an error for the client, the card
			// simply snaps back.
			h.logger.Info("POST /bookings/{id}/reschedule - Drop aborted: booking_id=%s", bookingID)
			handlers.RespondJSON(w, http.StatusOK, map[string]string{"result": msgDropAborted})

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/reschedule - Invalid input: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/{id}/reschedule - Failed to reschedule: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reschedule - Booking rescheduled: booking_id=%s, staff_id=%s, conflict=%v",
		bookingID, result.Booking.StaffID, result.Conflict != nil)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
