package reschedule_booking

import (
	"context"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

// BookingRepository reads and writes bookings.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, id string, update domain.BookingUpdate) error
}

// TimeBlockRepository lists staff time-blocks for the conflict report.
type TimeBlockRepository interface {
	List(ctx context.Context, filter domain.TimeBlocksFilter) ([]*domain.TimeBlock, error)
}

// StaffRepository resolves the target lane's staff member.
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
}

// TransactionManager keeps read-plan-write of one drag atomic.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the leveled printf logger consumed by this use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
