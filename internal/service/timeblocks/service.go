package timeblocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	staffRepo "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/staff"
	timeblockRepo "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/timeblock"
	"github.com/fotodesk/FD-ScheduleService/internal/service/timeblocks/models"
)

// Service manages staff time-blocks. Only BUSY blocks affect availability;
// AVAILABLE ones are informational.
type Service struct {
	timeBlockRepo TimeBlockRepository
	staffRepo     StaffRepository
	logger        Logger
}

// NewService creates the time-blocks service.
func NewService(timeBlockRepo TimeBlockRepository, staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		timeBlockRepo: timeBlockRepo,
		staffRepo:     staffRepo,
		logger:        logger,
	}
}

// List fetches time-blocks with optional staff and window filters.
func (s *Service) List(ctx context.Context, req *models.ListTimeBlocksRequest) (*models.TimeBlockListResponse, error) {
	s.logger.Info("List: fetching time blocks for %d staff", len(req.StaffIDs))

	blocks, err := s.timeBlockRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d time blocks", len(blocks))
	return models.FromDomainTimeBlockList(blocks), nil
}

// Create stores a new time-block for an existing staff member.
func (s *Service) Create(ctx context.Context, req *models.CreateTimeBlockRequest) (*models.TimeBlockResponse, error) {
	s.logger.Info("Create: creating %s block for staff id=%s", req.Type, req.StaffID)

	if req.StaffID == "" {
		return nil, fmt.Errorf("%w: staffId is required", ErrInvalidInput)
	}
	if !req.End.After(req.Start) {
		s.logger.Warn("Create: invalid interval for staff id=%s", req.StaffID)
		return nil, ErrInvalidTimeRange
	}

	block, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid type=%s for staff id=%s", req.Type, req.StaffID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("Create: staff id=%s not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Create: failed to get staff id=%s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: Create - failed to get staff: %v", ErrInternal, err)
	}

	block.ID = uuid.NewString()
	created, err := s.timeBlockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error for staff id=%s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created time block id=%s for staff id=%s", created.ID, created.StaffID)
	return models.FromDomainTimeBlock(created), nil
}

// Update applies a partial edit to a time-block. When the edit touches the
// interval the resulting pair must keep a positive duration.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateTimeBlockRequest) (*models.TimeBlockResponse, error) {
	s.logger.Info("Update: updating time block id=%s", id)

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid payload for time block id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if update.IsEmpty() {
		s.logger.Warn("Update: empty update for time block id=%s", id)
		return nil, fmt.Errorf("%w: update contains no fields", ErrInvalidInput)
	}

	current, err := s.timeBlockRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, timeblockRepo.ErrTimeBlockNotFound) {
			s.logger.Warn("Update: time block id=%s not found", id)
			return nil, ErrTimeBlockNotFound
		}
		s.logger.Error("Update: repository error for time block id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if update.Start != nil || update.End != nil {
		start, end := current.Start, current.End
		if update.Start != nil {
			start = *update.Start
		}
		if update.End != nil {
			end = *update.End
		}
		if !end.After(start) {
			s.logger.Warn("Update: invalid interval for time block id=%s", id)
			return nil, ErrInvalidTimeRange
		}
	}

	if err := s.timeBlockRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, timeblockRepo.ErrTimeBlockNotFound) {
			return nil, ErrTimeBlockNotFound
		}
		s.logger.Error("Update: repository error for time block id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.timeBlockRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to re-read time block id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated time block id=%s", id)
	return models.FromDomainTimeBlock(updated), nil
}

// Delete removes a time-block.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting time block id=%s", id)

	if err := s.timeBlockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, timeblockRepo.ErrTimeBlockNotFound) {
			s.logger.Warn("Delete: time block id=%s not found", id)
			return ErrTimeBlockNotFound
		}
		s.logger.Error("Delete: repository error for time block id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted time block id=%s", id)
	return nil
}
