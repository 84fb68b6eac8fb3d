package create_booking

import (
	"time"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	bookingModels "github.com/fotodesk/FD-ScheduleService/internal/service/bookings/models"
	createBooking "github.com/fotodesk/FD-ScheduleService/internal/usecase/create_booking"
)

// CreateBookingRequest is the HTTP payload for POST /bookings.
// Start and end are RFC 3339 UTC instants; status defaults to INQUIRY.
type CreateBookingRequest struct {
	Title      string  `json:"title"`
	ClientName string  `json:"clientName"`
	Location   *string `json:"location,omitempty"`
	StaffID    string  `json:"staffId"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Status     string  `json:"status,omitempty"`

	Notes         *string `json:"notes,omitempty"`
	Email         *string `json:"email,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	ClientPhone   *string `json:"clientPhone,omitempty"`
	PackageName   *string `json:"packageName,omitempty"`
}

// ToUseCaseRequest parses the timestamps and optional status.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	var status domain.BookingStatus
	if r.Status != "" {
		status, err = domain.ParseBookingStatus(r.Status)
		if err != nil {
			return nil, err
		}
	}

	return &createBooking.Request{
		Title:         r.Title,
		ClientName:    r.ClientName,
		Location:      r.Location,
		StaffID:       r.StaffID,
		Start:         start.UTC(),
		End:           end.UTC(),
		Status:        status,
		Notes:         r.Notes,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		ClientPhone:   r.ClientPhone,
		PackageName:   r.PackageName,
	}, nil
}

// FromUseCaseResponse converts the created booking into the shared DTO.
func FromUseCaseResponse(resp *createBooking.Response) *bookingModels.BookingResponse {
	return bookingModels.FromDomainBooking(resp.Booking)
}
