package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	staffRepo "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/staff"
	"github.com/fotodesk/FD-ScheduleService/internal/schedule"
)

// UseCase creates a booking after an availability gate. Unlike the drag
// reschedule, creation does block on conflicts: the create panel is where
// overlap prevention is enforced.
type UseCase struct {
	bookingRepo   BookingRepository
	timeBlockRepo TimeBlockRepository
	staffRepo     StaffRepository
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase creates the booking-creation use case.
func NewUseCase(
	bookingRepo BookingRepository,
	timeBlockRepo TimeBlockRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		timeBlockRepo: timeBlockRepo,
		staffRepo:     staffRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute validates, gates on availability and inserts the booking. The
// check and the insert run in one serializable transaction so two operators
// cannot race the same slot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: staff=%s start=%s end=%s",
		req.StaffID, req.Start.Format(domain.TimeFormat), req.End.Format(domain.TimeFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateBooking: staff id=%s not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateBooking: failed to get staff id=%s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: get staff: %v", ErrInternal, err)
	}

	booking := req.toDomain(uuid.NewString())

	var created *domain.Booking
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		blocks, err := uc.timeBlockRepo.List(ctx, domain.TimeBlocksFilter{
			StaffIDs: []string{req.StaffID},
			From:     &booking.Start,
			To:       &booking.End,
		})
		if err != nil {
			return fmt.Errorf("%w: list time blocks: %v", ErrInternal, err)
		}

		existing, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
			StaffIDs: []string{req.StaffID},
			From:     &booking.Start,
			To:       &booking.End,
		})
		if err != nil {
			return fmt.Errorf("%w: list bookings: %v", ErrInternal, err)
		}

		if !schedule.IsAvailable(req.StaffID, booking.Start, booking.End, blocks, existing) {
			return ErrSlotNotAvailable
		}

		created, err = uc.bookingRepo.Create(ctx, booking)
		if err != nil {
			return fmt.Errorf("%w: insert booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: slot not available for staff=%s", req.StaffID)
		} else {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%s", created.ID)
	return &Response{Booking: created}, nil
}
