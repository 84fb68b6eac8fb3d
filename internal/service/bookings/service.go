package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/booking"
	staffRepo "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/staff"
	"github.com/fotodesk/FD-ScheduleService/internal/service/bookings/models"
)

// Service covers booking reads and direct edits. Creation and drag
// rescheduling live in their own use cases; this service handles the side
// panel: fetch, list, field edits, status changes and deletion.
type Service struct {
	bookingRepo BookingRepository
	staffRepo   StaffRepository
	logger      Logger
}

// NewService creates the bookings service.
func NewService(bookingRepo BookingRepository, staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// GetByID fetches one booking.
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List fetches bookings with flexible filtering. Cancelled and expired
// bookings are excluded unless the filter asks for them.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, query=%q includeInactive=%v", req.Query, req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update applies a partial edit to a booking. When the edit touches the
// interval the resulting Start/End pair must keep a positive duration;
// when it names a new staff member that staff must exist.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%s", id)

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid payload for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	if update.IsEmpty() {
		s.logger.Warn("Update: empty update for booking id=%s", id)
		return nil, ErrEmptyUpdate
	}

	current, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
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
			s.logger.Warn("Update: invalid interval for booking id=%s", id)
			return nil, ErrInvalidTimeRange
		}
	}

	if update.StaffID != nil && *update.StaffID != current.StaffID {
		if _, err := s.staffRepo.GetByID(ctx, *update.StaffID); err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				s.logger.Warn("Update: staff id=%s not found for booking id=%s", *update.StaffID, id)
				return nil, ErrStaffNotFound
			}
			s.logger.Error("Update: failed to get staff id=%s: %v", *update.StaffID, err)
			return nil, fmt.Errorf("%w: Update - failed to get staff: %v", ErrInternal, err)
		}
	}

	if err := s.bookingRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to re-read booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%s", id)
	return models.FromDomainBooking(updated), nil
}

// UpdateStatus sets a booking's workflow status. Any known status may be
// assigned from any other; the workflow does not restrict transitions.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", id, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", id, status)
	return nil
}

// Delete removes a booking permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}
