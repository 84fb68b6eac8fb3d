package create_booking

import (
	"context"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

// BookingRepository persists bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// TimeBlockRepository lists staff time-blocks for the availability gate.
type TimeBlockRepository interface {
	List(ctx context.Context, filter domain.TimeBlocksFilter) ([]*domain.TimeBlock, error)
}

// StaffRepository resolves the assigned staff member.
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
}

// TransactionManager serializes the availability check with the insert.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the leveled printf logger consumed by this use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
