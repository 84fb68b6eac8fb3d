package timeblocks

import (
	"context"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

// TimeBlockRepository is the time-blocks storage contract.
type TimeBlockRepository interface {
	List(ctx context.Context, filter domain.TimeBlocksFilter) ([]*domain.TimeBlock, error)
	GetByID(ctx context.Context, id string) (*domain.TimeBlock, error)
	Create(ctx context.Context, tb *domain.TimeBlock) (*domain.TimeBlock, error)
	Update(ctx context.Context, id string, update domain.TimeBlockUpdate) error
	Delete(ctx context.Context, id string) error
}

// StaffRepository resolves the staff member a block belongs to.
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
}

// Logger is the leveled printf logger consumed by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
