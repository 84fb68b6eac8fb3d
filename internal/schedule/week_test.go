package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	"github.com/fotodesk/FD-ScheduleService/pkg/ptr"
)

func weekStaff() []*domain.Staff {
	return []*domain.Staff{
		{ID: "stf-rina", Name: "Rina", StaffType: domain.StaffTypePhotographer, Active: true},
		{ID: "stf-adi", Name: "Adi", StaffType: domain.StaffTypePhotographer, Active: true},
		{ID: "stf-andi", Name: "Andi", StaffType: domain.StaffTypeEditor, Active: true},
	}
}

func weekBooking(id, staffID, title, client string, start time.Time, dur time.Duration) *domain.Booking {
	return &domain.Booking{
		ID: id, StaffID: staffID, Title: title, ClientName: client,
		Start: start, End: start.Add(dur), Status: domain.StatusConfirmed,
	}
}

func TestComputeWeekView_GroupsAndCounts(t *testing.T) {
	bookings := []*domain.Booking{
		weekBooking("b1", "stf-rina", "Portrait", "Budi", weekStart.Add(9*time.Hour), 2*time.Hour),
		weekBooking("b2", "stf-rina", "Event", "SMA 3", weekStart.Add(9*time.Hour+30*time.Minute), time.Hour),
		weekBooking("b3", "stf-adi", "Wedding", "Dony", weekStart.AddDate(0, 0, 2).Add(8*time.Hour), 4*time.Hour),
		weekBooking("b4", "stf-andi", "Editing", "Dony", weekStart.AddDate(0, 0, 7).Add(9*time.Hour), time.Hour), // next week
	}

	view, err := ComputeWeekView(bookings, weekStaff(), domain.BookingsFilter{}, weekStart)
	require.NoError(t, err)

	assert.Equal(t, [7]int{2, 0, 1, 0, 0, 0, 0}, view.DayCounts)
	assert.Nil(t, view.JumpToWeek)

	lane := view.Lanes[LaneKey{StaffID: "stf-rina", DayIndex: 0}]
	require.Len(t, lane, 2)
	assert.Equal(t, "b1", lane[0].Booking.ID)
	assert.InDelta(t, 47.5, lane[0].WidthPct, 1e-9)
	assert.InDelta(t, 50.0, lane[1].LeftPct, 1e-9)

	require.Len(t, view.Lanes[LaneKey{StaffID: "stf-adi", DayIndex: 2}], 1)
	assert.NotContains(t, view.Lanes, LaneKey{StaffID: "stf-andi", DayIndex: 0})
}

func TestComputeWeekView_UnknownStaffExcluded(t *testing.T) {
	bookings := []*domain.Booking{
		weekBooking("b1", "stf-ghost", "Orphan", "X", weekStart.Add(9*time.Hour), time.Hour),
		weekBooking("b2", "stf-rina", "Portrait", "Budi", weekStart.Add(9*time.Hour), time.Hour),
	}

	view, err := ComputeWeekView(bookings, weekStaff(), domain.BookingsFilter{}, weekStart)
	require.NoError(t, err)

	assert.Equal(t, 1, view.DayCounts[0], "unplaceable booking must not be counted")
	require.Len(t, view.Lanes, 1)
	assert.Contains(t, view.Lanes, LaneKey{StaffID: "stf-rina", DayIndex: 0})
}

func TestComputeWeekView_StatusAndTypeFilters(t *testing.T) {
	bookings := []*domain.Booking{
		weekBooking("b1", "stf-rina", "Portrait", "Budi", weekStart.Add(9*time.Hour), time.Hour),
		weekBooking("b2", "stf-andi", "Editing", "Dony", weekStart.Add(9*time.Hour), time.Hour),
	}
	bookings[0].Status = domain.StatusHold

	view, err := ComputeWeekView(bookings, weekStaff(), domain.BookingsFilter{
		Status: ptr.Ptr(domain.StatusHold),
	}, weekStart)
	require.NoError(t, err)
	assert.Equal(t, 1, view.DayCounts[0])
	assert.Contains(t, view.Lanes, LaneKey{StaffID: "stf-rina", DayIndex: 0})

	view, err = ComputeWeekView(bookings, weekStaff(), domain.BookingsFilter{
		StaffType: ptr.Ptr(domain.StaffTypeEditor),
	}, weekStart)
	require.NoError(t, err)
	assert.Equal(t, 1, view.DayCounts[0])
	assert.Contains(t, view.Lanes, LaneKey{StaffID: "stf-andi", DayIndex: 0})
}

func TestComputeWeekView_SearchJump(t *testing.T) {
	nextWeek := weekStart.AddDate(0, 0, 7)
	later := weekStart.AddDate(0, 0, 16)
	bookings := []*domain.Booking{
		weekBooking("b1", "stf-rina", "Portrait", "Budi", weekStart.Add(9*time.Hour), time.Hour),
		weekBooking("b2", "stf-adi", "Wedding", "Citra", later.Add(10*time.Hour), time.Hour),
		weekBooking("b3", "stf-adi", "Wedding prep", "Citra", nextWeek.Add(13*time.Hour), time.Hour),
	}

	// Query matches only outside the displayed week: jump to the week of the
	// earliest match (b3, next week).
	view, err := ComputeWeekView(bookings, weekStaff(), domain.BookingsFilter{Query: "citra"}, weekStart)
	require.NoError(t, err)
	require.NotNil(t, view.JumpToWeek)
	assert.Equal(t, nextWeek, *view.JumpToWeek)

	// Query matching inside the current week never jumps.
	view, err = ComputeWeekView(bookings, weekStaff(), domain.BookingsFilter{Query: "budi"}, weekStart)
	require.NoError(t, err)
	assert.Nil(t, view.JumpToWeek)
	assert.Equal(t, 1, view.DayCounts[0])

	// Query matching nothing at all never jumps.
	view, err = ComputeWeekView(bookings, weekStaff(), domain.BookingsFilter{Query: "nobody"}, weekStart)
	require.NoError(t, err)
	assert.Nil(t, view.JumpToWeek)
}

func TestComputeWeekView_EmptyQueryNeverJumps(t *testing.T) {
	// Even a week with zero bookings stays put when the query is empty.
	bookings := []*domain.Booking{
		weekBooking("b1", "stf-rina", "Portrait", "Budi", weekStart.AddDate(0, 0, 14).Add(9*time.Hour), time.Hour),
	}

	view, err := ComputeWeekView(bookings, weekStaff(), domain.BookingsFilter{}, weekStart)
	require.NoError(t, err)
	assert.Nil(t, view.JumpToWeek)
	assert.Equal(t, [7]int{}, view.DayCounts)
}

func TestComputeWeekView_Deterministic(t *testing.T) {
	bookings := []*domain.Booking{
		weekBooking("b1", "stf-rina", "A", "c1", weekStart.Add(9*time.Hour), 2*time.Hour),
		weekBooking("b2", "stf-rina", "B", "c2", weekStart.Add(9*time.Hour), time.Hour),
		weekBooking("b3", "stf-rina", "C", "c3", weekStart.Add(10*time.Hour), time.Hour),
	}

	first, err := ComputeWeekView(bookings, weekStaff(), domain.BookingsFilter{}, weekStart)
	require.NoError(t, err)
	second, err := ComputeWeekView(bookings, weekStaff(), domain.BookingsFilter{}, weekStart)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
