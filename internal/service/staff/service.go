package staff

import (
	"context"
	"errors"
	"fmt"

	staffRepo "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/staff"
	"github.com/fotodesk/FD-ScheduleService/internal/service/staff/models"
)

// Service exposes the staff roster.
type Service struct {
	staffRepo StaffRepository
	logger    Logger
}

// NewService creates the staff service.
func NewService(staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// List fetches staff members, optionally restricted to active ones.
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.StaffListResponse, error) {
	s.logger.Info("List: fetching staff, activeOnly=%v", activeOnly)

	staff, err := s.staffRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d staff members", len(staff))
	return models.FromDomainStaffList(staff), nil
}

// GetByID fetches one staff member.
func (s *Service) GetByID(ctx context.Context, id string) (*models.StaffResponse, error) {
	s.logger.Info("GetByID: fetching staff id=%s", id)

	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetByID: staff id=%s not found", id)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetByID: repository error for staff id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaff(staff), nil
}
