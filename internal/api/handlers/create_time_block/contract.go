package create_time_block

import (
	"context"

	"github.com/fotodesk/FD-ScheduleService/internal/service/timeblocks/models"
)

type TimeBlockService interface {
	Create(ctx context.Context, req *models.CreateTimeBlockRequest) (*models.TimeBlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
