package get_week_view

import (
	"context"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

// BookingRepository lists bookings for the timeline.
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// StaffRepository lists the staff members whose lanes the week renders.
type StaffRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Staff, error)
}

// Logger is the leveled printf logger consumed by this use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
