package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	staffstorage "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/staff"
	"github.com/fotodesk/FD-ScheduleService/internal/schedule"
	"github.com/fotodesk/FD-ScheduleService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if len(filter.StaffIDs) > 0 && b.StaffID != filter.StaffIDs[0] {
			continue
		}
		if filter.From != nil && !b.End.After(*filter.From) {
			continue
		}
		if filter.To != nil && !b.Start.Before(*filter.To) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeTimeBlockRepo struct {
	blocks []*domain.TimeBlock
}

func (r *fakeTimeBlockRepo) List(_ context.Context, filter domain.TimeBlocksFilter) ([]*domain.TimeBlock, error) {
	var out []*domain.TimeBlock
	for _, tb := range r.blocks {
		if len(filter.StaffIDs) > 0 && tb.StaffID != filter.StaffIDs[0] {
			continue
		}
		out = append(out, tb)
	}
	return out, nil
}

type fakeStaffRepo struct {
	known map[string]bool
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id string) (*domain.Staff, error) {
	if !r.known[id] {
		return nil, staffstorage.ErrStaffNotFound
	}
	return &domain.Staff{ID: id, StaffType: domain.StaffTypePhotographer, Active: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var day = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func newTestUseCase(bookings *fakeBookingRepo, blocks *fakeTimeBlockRepo) *UseCase {
	staff := &fakeStaffRepo{known: map[string]bool{"st-1": true}}
	return NewUseCase(bookings, blocks, staff, nopLogger{})
}

func TestUseCase_Execute_FreeSlot(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTimeBlockRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: "st-1",
		Start:   at(9, 0),
		End:     at(11, 0),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Nil(t, resp.Conflict)
}

func TestUseCase_Execute_BusyBlockWins(t *testing.T) {
	blocks := &fakeTimeBlockRepo{blocks: []*domain.TimeBlock{
		{ID: "tb-1", StaffID: "st-1", Start: at(10, 0), End: at(12, 0), Type: domain.TimeBlockBusy},
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, blocks)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: "st-1",
		Start:   at(9, 0),
		End:     at(11, 0),
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, schedule.ConflictTimeBlock, resp.Conflict.Kind)
	assert.Equal(t, "tb-1", resp.Conflict.ID)
}

func TestUseCase_Execute_AvailableBlockDoesNotBlock(t *testing.T) {
	blocks := &fakeTimeBlockRepo{blocks: []*domain.TimeBlock{
		{ID: "tb-1", StaffID: "st-1", Start: at(10, 0), End: at(12, 0), Type: domain.TimeBlockAvailable},
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, blocks)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: "st-1",
		Start:   at(9, 0),
		End:     at(11, 0),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestUseCase_Execute_ExcludesOwnBooking(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: "bk-1", StaffID: "st-1", Start: at(9, 0), End: at(11, 0), Status: domain.StatusScheduled},
	}}
	uc := newTestUseCase(bookings, &fakeTimeBlockRepo{})

	// Without exclusion the booking collides with itself.
	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: "st-1",
		Start:   at(9, 30),
		End:     at(10, 30),
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)

	// Excluded, the slot reads as free.
	resp, err = uc.Execute(context.Background(), &Request{
		StaffID:          "st-1",
		Start:            at(9, 30),
		End:              at(10, 30),
		ExcludeBookingID: ptr.Ptr("bk-1"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestUseCase_Execute_TouchingIntervalsDoNotConflict(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: "bk-1", StaffID: "st-1", Start: at(9, 0), End: at(11, 0), Status: domain.StatusScheduled},
	}}
	uc := newTestUseCase(bookings, &fakeTimeBlockRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID: "st-1",
		Start:   at(11, 0),
		End:     at(12, 0),
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestUseCase_Execute_InvalidInterval(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTimeBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		StaffID: "st-1",
		Start:   at(11, 0),
		End:     at(11, 0),
	})
	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestUseCase_Execute_UnknownStaff(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTimeBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		StaffID: "ghost",
		Start:   at(9, 0),
		End:     at(10, 0),
	})
	require.ErrorIs(t, err, ErrStaffNotFound)
}
