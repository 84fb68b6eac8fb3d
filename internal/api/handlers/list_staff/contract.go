package list_staff

import (
	"context"

	"github.com/fotodesk/FD-ScheduleService/internal/service/staff/models"
)

type StaffService interface {
	List(ctx context.Context, activeOnly bool) (*models.StaffListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
