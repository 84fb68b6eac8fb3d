package reschedule_booking

import (
	"time"

	bookingModels "github.com/fotodesk/FD-ScheduleService/internal/service/bookings/models"
	rescheduleBooking "github.com/fotodesk/FD-ScheduleService/internal/usecase/reschedule_booking"
)

// DropTargetPayload names the lane the card was dropped on.
type DropTargetPayload struct {
	StaffID  string `json:"staffId"`
	DayIndex int    `json:"dayIndex"`
}

// RescheduleBookingRequest is the HTTP payload for one drag gesture.
// A null target means the drop was aborted. weekStart is any instant inside
// the displayed week, RFC 3339 UTC.
type RescheduleBookingRequest struct {
	Target      *DropTargetPayload `json:"target"`
	DeltaPixels float64            `json:"deltaPixels"`
	PxPerMinute float64            `json:"pxPerMinute"`
	WeekStart   string             `json:"weekStart"`
}

// ToUseCaseRequest parses the week start and attaches the path id.
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID string) (*rescheduleBooking.Request, error) {
	weekStart, err := time.Parse(time.RFC3339, r.WeekStart)
	if err != nil {
		return nil, err
	}

	req := &rescheduleBooking.Request{
		BookingID:   bookingID,
		DeltaPixels: r.DeltaPixels,
		PxPerMinute: r.PxPerMinute,
		WeekStart:   weekStart.UTC(),
	}
	if r.Target != nil {
		req.Target = &rescheduleBooking.DropTarget{
			StaffID:  r.Target.StaffID,
			DayIndex: r.Target.DayIndex,
		}
	}
	return req, nil
}

// ConflictPayload describes an overlap the committed move created.
type ConflictPayload struct {
	Kind  string `json:"kind"`
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// RescheduleBookingResponse is the committed placement plus an optional
// advisory conflict.
type RescheduleBookingResponse struct {
	Booking  *bookingModels.BookingResponse `json:"booking"`
	Conflict *ConflictPayload               `json:"conflict,omitempty"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	out := &RescheduleBookingResponse{
		Booking: bookingModels.FromDomainBooking(resp.Booking),
	}
	if resp.Conflict != nil {
		out.Conflict = &ConflictPayload{
			Kind:  string(resp.Conflict.Kind),
			ID:    resp.Conflict.ID,
			Start: resp.Conflict.Start.UTC().Format(time.RFC3339),
			End:   resp.Conflict.End.UTC().Format(time.RFC3339),
		}
	}
	return out
}
