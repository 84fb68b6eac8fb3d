package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	staffRepo "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/staff"
	"github.com/fotodesk/FD-ScheduleService/internal/schedule"
)

// UseCase answers "is this staff member free for [start, end)?".
// It is the gate the booking-creation panel calls before submitting; the
// drag-reschedule flow only uses it to warn, never to block.
type UseCase struct {
	bookingRepo   BookingRepository
	timeBlockRepo TimeBlockRepository
	staffRepo     StaffRepository
	logger        Logger
}

// NewUseCase creates the availability-check use case.
func NewUseCase(
	bookingRepo BookingRepository,
	timeBlockRepo TimeBlockRepository,
	staffRepo StaffRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		timeBlockRepo: timeBlockRepo,
		staffRepo:     staffRepo,
		logger:        logger,
	}
}

// Execute runs the availability check.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CheckAvailability: staff id=%s not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get staff id=%s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: get staff: %v", ErrInternal, err)
	}

	blocks, err := uc.timeBlockRepo.List(ctx, domain.TimeBlocksFilter{
		StaffIDs: []string{req.StaffID},
		From:     &req.Start,
		To:       &req.End,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list time blocks: %v", err)
		return nil, fmt.Errorf("%w: list time blocks: %v", ErrInternal, err)
	}

	existing, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		StaffIDs: []string{req.StaffID},
		From:     &req.Start,
		To:       &req.End,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: list bookings: %v", ErrInternal, err)
	}

	if req.ExcludeBookingID != nil {
		filtered := existing[:0]
		for _, b := range existing {
			if b.ID != *req.ExcludeBookingID {
				filtered = append(filtered, b)
			}
		}
		existing = filtered
	}

	resp := &Response{
		StaffID:   req.StaffID,
		Start:     req.Start,
		End:       req.End,
		Available: true,
	}
	if c, found := schedule.FirstConflict(req.StaffID, req.Start, req.End, blocks, existing); found {
		resp.Available = false
		resp.Conflict = &ConflictInfo{Kind: c.Kind, ID: c.ID, Start: c.Start, End: c.End}
	}

	uc.logger.Info("CheckAvailability: staff=%s %s-%s available=%v",
		req.StaffID, req.Start.Format(domain.TimeFormat), req.End.Format(domain.TimeFormat), resp.Available)
	return resp, nil
}
