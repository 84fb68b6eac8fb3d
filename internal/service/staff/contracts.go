package staff

import (
	"context"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

// StaffRepository is the staff storage contract.
type StaffRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Staff, error)
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
}

// Logger is the leveled printf logger consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
