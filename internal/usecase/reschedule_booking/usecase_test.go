package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	storage "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/booking"
	staffstorage "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/staff"
	"github.com/fotodesk/FD-ScheduleService/internal/schedule"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
	updates  map[string]domain.BookingUpdate
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{
		bookings: make(map[string]*domain.Booking),
		updates:  make(map[string]domain.BookingUpdate),
	}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
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
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, id string, update domain.BookingUpdate) error {
	if _, ok := r.bookings[id]; !ok {
		return storage.ErrBookingNotFound
	}
	r.updates[id] = update
	return nil
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
	staff map[string]*domain.Staff
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id string) (*domain.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, staffstorage.ErrStaffNotFound
	}
	return s, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testWeekStart = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC) // Monday

func testStaff() *fakeStaffRepo {
	return &fakeStaffRepo{staff: map[string]*domain.Staff{
		"st-1": {ID: "st-1", Name: "Anna", StaffType: domain.StaffTypePhotographer, Active: true},
		"st-2": {ID: "st-2", Name: "Boris", StaffType: domain.StaffTypeEditor, Active: true},
	}}
}

func newTestUseCase(bookings *fakeBookingRepo, blocks *fakeTimeBlockRepo) *UseCase {
	return NewUseCase(bookings, blocks, testStaff(), fakeTxManager{}, domain.DefaultVisibleStartHour, nopLogger{})
}

func TestUseCase_Execute_SnapsAndConfirmsHold(t *testing.T) {
	start := testWeekStart.Add(10 * time.Hour)
	booking := &domain.Booking{
		ID:      "bk-1",
		StaffID: "st-1",
		Title:   "Portrait session",
		Start:   start,
		End:     start.Add(90 * time.Minute),
		Status:  domain.StatusHold,
	}
	repo := newFakeBookingRepo(booking)
	uc := newTestUseCase(repo, &fakeTimeBlockRepo{})

	// 47px at 1.2 px/min is 39 raw minutes, snapping to +30.
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:   "bk-1",
		Target:      &DropTarget{StaffID: "st-1", DayIndex: 0},
		DeltaPixels: 47,
		PxPerMinute: 1.2,
		WeekStart:   testWeekStart,
	})
	require.NoError(t, err)

	assert.Equal(t, start.Add(30*time.Minute), resp.Booking.Start)
	assert.Equal(t, 90*time.Minute, resp.Booking.End.Sub(resp.Booking.Start))
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
	assert.Nil(t, resp.Conflict)

	update, ok := repo.updates["bk-1"]
	require.True(t, ok)
	require.NotNil(t, update.Status)
	assert.Equal(t, domain.StatusConfirmed, *update.Status)
}

func TestUseCase_Execute_CrossLaneMoveReportsConflictButCommits(t *testing.T) {
	start := testWeekStart.Add(9 * time.Hour)
	moved := &domain.Booking{
		ID:      "bk-1",
		StaffID: "st-1",
		Title:   "Retouch batch",
		Start:   start,
		End:     start.Add(2 * time.Hour),
		Status:  domain.StatusConfirmed,
	}
	occupying := &domain.Booking{
		ID:      "bk-2",
		StaffID: "st-2",
		Title:   "Color grade",
		Start:   start,
		End:     start.Add(time.Hour),
		Status:  domain.StatusScheduled,
	}
	repo := newFakeBookingRepo(moved, occupying)
	uc := newTestUseCase(repo, &fakeTimeBlockRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:   "bk-1",
		Target:      &DropTarget{StaffID: "st-2", DayIndex: 0},
		DeltaPixels: 0,
		PxPerMinute: 1.2,
		WeekStart:   testWeekStart,
	})
	require.NoError(t, err)

	assert.Equal(t, "st-2", resp.Booking.StaffID)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, schedule.ConflictBooking, resp.Conflict.Kind)
	assert.Equal(t, "bk-2", resp.Conflict.ID)

	// The conflict is advisory: the update was still written.
	_, ok := repo.updates["bk-1"]
	assert.True(t, ok)
}

func TestUseCase_Execute_NegativeDeltaClampsAtBaseline(t *testing.T) {
	// 07:15 on Monday, 15 minutes above would cross the visible start.
	start := testWeekStart.Add(7*time.Hour + 15*time.Minute)
	booking := &domain.Booking{
		ID:      "bk-1",
		StaffID: "st-1",
		Title:   "Early slot",
		Start:   start,
		End:     start.Add(time.Hour),
		Status:  domain.StatusScheduled,
	}
	repo := newFakeBookingRepo(booking)
	uc := newTestUseCase(repo, &fakeTimeBlockRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:   "bk-1",
		Target:      &DropTarget{StaffID: "st-1", DayIndex: 0},
		DeltaPixels: -120,
		PxPerMinute: 1.2,
		WeekStart:   testWeekStart,
	})
	require.NoError(t, err)

	assert.Equal(t, testWeekStart.Add(7*time.Hour), resp.Booking.Start)
	assert.Equal(t, time.Hour, resp.Booking.End.Sub(resp.Booking.Start))
}

func TestUseCase_Execute_NilTargetAborts(t *testing.T) {
	repo := newFakeBookingRepo(&domain.Booking{ID: "bk-1", StaffID: "st-1"})
	uc := newTestUseCase(repo, &fakeTimeBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: "bk-1",
		Target:    nil,
		WeekStart: testWeekStart,
	})
	require.ErrorIs(t, err, ErrDropAborted)
	assert.Empty(t, repo.updates)
}

func TestUseCase_Execute_UnknownBooking(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(), &fakeTimeBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:   "missing",
		Target:      &DropTarget{StaffID: "st-1", DayIndex: 0},
		PxPerMinute: 1.2,
		WeekStart:   testWeekStart,
	})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_Execute_UnknownStaff(t *testing.T) {
	uc := newTestUseCase(newFakeBookingRepo(&domain.Booking{ID: "bk-1"}), &fakeTimeBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:   "bk-1",
		Target:      &DropTarget{StaffID: "ghost", DayIndex: 0},
		PxPerMinute: 1.2,
		WeekStart:   testWeekStart,
	})
	require.ErrorIs(t, err, ErrStaffNotFound)
}
