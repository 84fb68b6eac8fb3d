package check_availability

import (
	"context"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

// BookingRepository lists bookings for the conflict scan.
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// TimeBlockRepository lists staff time-blocks for the conflict scan.
type TimeBlockRepository interface {
	List(ctx context.Context, filter domain.TimeBlocksFilter) ([]*domain.TimeBlock, error)
}

// StaffRepository resolves the staff member being checked.
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
}

// Logger is the leveled printf logger consumed by this use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
