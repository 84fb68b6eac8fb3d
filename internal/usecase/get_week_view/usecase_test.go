package get_week_view

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.BookingsFilter
}

func (r *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	var out []*domain.Booking
	for _, b := range r.bookings {
		if filter.From != nil && !b.End.After(*filter.From) {
			continue
		}
		if filter.To != nil && !b.Start.Before(*filter.To) {
			continue
		}
		if !filter.MatchesQuery(b) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeStaffRepo struct {
	staff []*domain.Staff
}

func (r *fakeStaffRepo) List(_ context.Context, _ bool) ([]*domain.Staff, error) {
	return r.staff, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testWeekStart = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC) // Monday

func booking(id, staffID, title string, start time.Time, d time.Duration) *domain.Booking {
	return &domain.Booking{
		ID:      id,
		StaffID: staffID,
		Title:   title,
		Start:   start,
		End:     start.Add(d),
		Status:  domain.StatusScheduled,
	}
}

func newTestUseCase(bookings *fakeBookingRepo) *UseCase {
	staff := &fakeStaffRepo{staff: []*domain.Staff{
		{ID: "st-1", Name: "Anna", StaffType: domain.StaffTypePhotographer, Active: true},
		{ID: "st-2", Name: "Boris", StaffType: domain.StaffTypeEditor, Active: true},
	}}
	return NewUseCase(bookings, staff, 0, nopLogger{})
}

func TestUseCase_Execute_WindowsFetchWithoutQuery(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("bk-1", "st-1", "Portrait", testWeekStart.Add(9*time.Hour), time.Hour),
		booking("bk-2", "st-1", "Wedding", testWeekStart.Add(9*time.Hour+30*time.Minute), time.Hour),
		booking("bk-3", "st-2", "Retouch", testWeekStart.Add(24*time.Hour+10*time.Hour), time.Hour),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{WeekStart: testWeekStart})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.From)
	require.NotNil(t, repo.lastFilter.To)
	assert.Equal(t, testWeekStart, *repo.lastFilter.From)
	assert.Equal(t, testWeekStart.AddDate(0, 0, 7), *repo.lastFilter.To)

	assert.Equal(t, 2, resp.DayCounts[0])
	assert.Equal(t, 1, resp.DayCounts[1])
	assert.Equal(t, "2025-10-13", resp.Days[0].Date)
	assert.Equal(t, "Mon 13", resp.Days[0].Label)
	assert.Equal(t, 2, resp.Days[0].Count)
	require.Len(t, resp.Lanes, 2)
	// Overlapping pair shares Monday's st-1 lane, split side by side.
	monday := resp.Lanes[0]
	assert.Equal(t, "st-1", monday.StaffID)
	require.Len(t, monday.Events, 2)
	assert.Less(t, monday.Events[1].WidthPct, monday.Events[0].WidthPct)
	assert.Nil(t, resp.JumpToWeek)
}

func TestUseCase_Execute_SearchJumpsToEarliestMatchWeek(t *testing.T) {
	nextWeek := testWeekStart.AddDate(0, 0, 7)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("bk-1", "st-1", "Corporate headshots", nextWeek.Add(14*time.Hour), time.Hour),
		booking("bk-2", "st-1", "Portrait", testWeekStart.Add(9*time.Hour), time.Hour),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{WeekStart: testWeekStart, Query: "headshots"})
	require.NoError(t, err)

	// Searches fetch unwindowed so the jump can see other weeks.
	assert.Nil(t, repo.lastFilter.From)
	assert.Nil(t, repo.lastFilter.To)
	require.NotNil(t, resp.JumpToWeek)
	assert.Equal(t, nextWeek, *resp.JumpToWeek)
	assert.Empty(t, resp.Lanes)
}

func TestUseCase_Execute_InWeekMatchSuppressesJump(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("bk-1", "st-1", "Portrait", testWeekStart.Add(9*time.Hour), time.Hour),
		booking("bk-2", "st-1", "Portrait redo", testWeekStart.AddDate(0, 0, 14).Add(9*time.Hour), time.Hour),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{WeekStart: testWeekStart, Query: "portrait"})
	require.NoError(t, err)

	assert.Nil(t, resp.JumpToWeek)
	assert.Equal(t, 1, resp.DayCounts[0])
}

func TestUseCase_Execute_NormalizesWeekStart(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	// A mid-week Thursday resolves to its Monday.
	resp, err := uc.Execute(context.Background(), &Request{WeekStart: testWeekStart.AddDate(0, 0, 3)})
	require.NoError(t, err)
	assert.Equal(t, testWeekStart, resp.WeekStart)
}

func TestUseCase_Execute_RejectsUnknownStatus(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})
	bad := domain.BookingStatus("NOPE")

	_, err := uc.Execute(context.Background(), &Request{WeekStart: testWeekStart, Status: &bad})
	require.ErrorIs(t, err, ErrInvalidInput)
}
