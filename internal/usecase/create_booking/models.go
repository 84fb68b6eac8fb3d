package create_booking

import (
	"time"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

// Request carries the fields of a new booking.
type Request struct {
	Title      string
	ClientName string
	Location   *string
	StaffID    string
	Start      time.Time
	End        time.Time
	Status     domain.BookingStatus

	Notes         *string
	Email         *string
	ContactNumber *string
	ClientPhone   *string
	PackageName   *string
}

// Response is the created booking.
type Response struct {
	Booking *domain.Booking
}

func (r *Request) toDomain(id string) *domain.Booking {
	status := r.Status
	if status == "" {
		status = domain.StatusInquiry
	}
	return &domain.Booking{
		ID:            id,
		Title:         r.Title,
		ClientName:    r.ClientName,
		Location:      r.Location,
		StaffID:       r.StaffID,
		Start:         r.Start.UTC(),
		End:           r.End.UTC(),
		Status:        status,
		Notes:         r.Notes,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		ClientPhone:   r.ClientPhone,
		PackageName:   r.PackageName,
	}
}
