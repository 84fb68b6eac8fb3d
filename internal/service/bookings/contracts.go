package bookings

import (
	"context"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

// BookingRepository is the bookings storage contract.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, id string, update domain.BookingUpdate) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Delete(ctx context.Context, id string) error
}

// StaffRepository resolves staff referenced by booking updates.
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
}

// Logger is the leveled printf logger consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
