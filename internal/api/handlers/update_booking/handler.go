package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fotodesk/FD-ScheduleService/internal/api/handlers"
	"github.com/fotodesk/FD-ScheduleService/internal/service/bookings"
	"github.com/fotodesk/FD-ScheduleService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingBookingID   = "missing booking id"
	msgNotFound           = "booking not found"
	msgStaffNotFound      = "staff member not found"
	msgInvalidStatus      = "unknown booking status"
	msgInvalidTimeRange   = "end must be after start"
	msgEmptyUpdate        = "update contains no fields"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{id} - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	var req models.UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrStaffNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Staff not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{id} - Invalid status: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidTimeRange):
			h.logger.Warn("PATCH /bookings/{id} - Invalid time range: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, bookings.ErrEmptyUpdate):
			h.logger.Warn("PATCH /bookings/{id} - Empty update: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgEmptyUpdate)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
