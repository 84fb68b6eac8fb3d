package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	bookingRepo "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/booking"
	staffRepo "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/staff"
	"github.com/fotodesk/FD-ScheduleService/internal/schedule"
	"github.com/fotodesk/FD-ScheduleService/pkg/ptr"
)

// UseCase commits a drag-reschedule. The planning itself is pure
// (schedule.PlanReschedule); this use case loads the original placement,
// persists the proposal and reports - without blocking - any overlap the
// move created. Held bookings come out confirmed.
type UseCase struct {
	bookingRepo      BookingRepository
	timeBlockRepo    TimeBlockRepository
	staffRepo        StaffRepository
	txManager        TransactionManager
	visibleStartHour int
	logger           Logger
}

// NewUseCase creates the reschedule use case. visibleStartHour anchors the
// timeline's vertical baseline (07:00 by default).
func NewUseCase(
	bookingRepo BookingRepository,
	timeBlockRepo TimeBlockRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	visibleStartHour int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		timeBlockRepo:    timeBlockRepo,
		staffRepo:        staffRepo,
		txManager:        txManager,
		visibleStartHour: visibleStartHour,
		logger:           logger,
	}
}

// Execute plans and commits the move described by req.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}
	if req.Target == nil {
		// Aborted gesture: deliberate no-op, nothing read or written.
		uc.logger.Info("RescheduleBooking: drop aborted for booking id=%s", req.BookingID)
		return nil, ErrDropAborted
	}

	if _, err := uc.staffRepo.GetByID(ctx, req.Target.StaffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("RescheduleBooking: target staff id=%s not found", req.Target.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get staff id=%s: %v", req.Target.StaffID, err)
		return nil, fmt.Errorf("%w: get staff: %v", ErrInternal, err)
	}

	var resp *Response
	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: get booking: %v", ErrInternal, err)
		}

		proposal, err := schedule.PlanReschedule(schedule.DragInput{
			Booking:     booking,
			Target:      &schedule.DropTarget{StaffID: req.Target.StaffID, DayIndex: req.Target.DayIndex},
			DeltaPixels: req.DeltaPixels,
			PxPerMinute: req.PxPerMinute,
		}, req.WeekStart, uc.visibleStartHour)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		conflict, err := uc.findConflict(ctx, booking.ID, proposal)
		if err != nil {
			return err
		}

		update := domain.BookingUpdate{
			StaffID: ptr.Ptr(proposal.StaffID),
			Start:   ptr.Ptr(proposal.Start),
			End:     ptr.Ptr(proposal.End),
		}
		if proposal.Status != booking.Status {
			update.Status = ptr.Ptr(proposal.Status)
		}
		if err := uc.bookingRepo.Update(ctx, booking.ID, update); err != nil {
			return fmt.Errorf("%w: update booking: %v", ErrInternal, err)
		}

		moved := *booking
		moved.StaffID = proposal.StaffID
		moved.Start = proposal.Start
		moved.End = proposal.End
		moved.Status = proposal.Status
		resp = &Response{Booking: &moved, Conflict: conflict}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrInvalidInput) {
			uc.logger.Warn("RescheduleBooking: booking id=%s: %v", req.BookingID, err)
		} else {
			uc.logger.Error("RescheduleBooking: transaction failed for booking id=%s: %v", req.BookingID, err)
		}
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: booking id=%s moved to staff=%s start=%s status=%s conflict=%v",
		resp.Booking.ID, resp.Booking.StaffID, resp.Booking.Start.Format(domain.TimeFormat),
		resp.Booking.Status, resp.Conflict != nil)
	return resp, nil
}

// findConflict scans the proposed interval with the moved booking excluded.
// Conflicts are reported, not enforced: the product favors operator
// flexibility on drag and lets the layout engine render overlaps.
func (uc *UseCase) findConflict(ctx context.Context, movedID string, p *schedule.Proposal) (*ConflictInfo, error) {
	blocks, err := uc.timeBlockRepo.List(ctx, domain.TimeBlocksFilter{
		StaffIDs: []string{p.StaffID},
		From:     &p.Start,
		To:       &p.End,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list time blocks: %v", ErrInternal, err)
	}

	existing, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		StaffIDs: []string{p.StaffID},
		From:     &p.Start,
		To:       &p.End,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list bookings: %v", ErrInternal, err)
	}

	others := existing[:0]
	for _, b := range existing {
		if b.ID != movedID {
			others = append(others, b)
		}
	}

	if c, found := schedule.FirstConflict(p.StaffID, p.Start, p.End, blocks, others); found {
		return &ConflictInfo{Kind: c.Kind, ID: c.ID, Start: c.Start, End: c.End}, nil
	}
	return nil, nil
}
