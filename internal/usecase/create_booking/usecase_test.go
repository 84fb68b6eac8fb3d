package create_booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	staffstorage "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/staff"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	created := *b
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	r.bookings = append(r.bookings, &created)
	return &created, nil
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

func (r *fakeTimeBlockRepo) List(_ context.Context, _ domain.TimeBlocksFilter) ([]*domain.TimeBlock, error) {
	return r.blocks, nil
}

type fakeStaffRepo struct{}

func (fakeStaffRepo) GetByID(_ context.Context, id string) (*domain.Staff, error) {
	if id != "st-1" {
		return nil, staffstorage.ErrStaffNotFound
	}
	return &domain.Staff{ID: id, StaffType: domain.StaffTypePhotographer, Active: true}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var day = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func at(hour int) time.Time {
	return day.Add(time.Duration(hour) * time.Hour)
}

func validRequest() *Request {
	return &Request{
		Title:      "Portrait session",
		ClientName: "Ivanov",
		StaffID:    "st-1",
		Start:      at(10),
		End:        at(12),
	}
}

func newTestUseCase(bookings *fakeBookingRepo, blocks *fakeTimeBlockRepo) *UseCase {
	return NewUseCase(bookings, blocks, fakeStaffRepo{}, fakeTxManager{}, nopLogger{})
}

func TestUseCase_Execute_CreatesWithDefaultStatus(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeTimeBlockRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Booking.ID)
	assert.Equal(t, domain.StatusInquiry, resp.Booking.Status)
	assert.False(t, resp.Booking.CreatedAt.IsZero())
	require.Len(t, repo.bookings, 1)
}

func TestUseCase_Execute_BlockedByBusyBlock(t *testing.T) {
	blocks := &fakeTimeBlockRepo{blocks: []*domain.TimeBlock{
		{ID: "tb-1", StaffID: "st-1", Start: at(11), End: at(13), Type: domain.TimeBlockBusy},
	}}
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, blocks)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, repo.bookings)
}

func TestUseCase_Execute_BlockedByExistingBooking(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: "bk-1", StaffID: "st-1", Start: at(11), End: at(13), Status: domain.StatusScheduled},
	}}
	uc := newTestUseCase(repo, &fakeTimeBlockRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_BackToBackAllowed(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: "bk-1", StaffID: "st-1", Start: at(12), End: at(14), Status: domain.StatusScheduled},
	}}
	uc := newTestUseCase(repo, &fakeTimeBlockRepo{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, at(12), resp.Booking.End)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTimeBlockRepo{})

	t.Run("missing title", func(t *testing.T) {
		req := validRequest()
		req.Title = ""
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("title too long", func(t *testing.T) {
		req := validRequest()
		req.Title = strings.Repeat("x", domain.MaxTitleLength+1)
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero duration", func(t *testing.T) {
		req := validRequest()
		req.End = req.Start
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("unknown status", func(t *testing.T) {
		req := validRequest()
		req.Status = domain.BookingStatus("NOPE")
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown staff", func(t *testing.T) {
		req := validRequest()
		req.StaffID = "ghost"
		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrStaffNotFound)
	})
}
