package schedule

import (
	"sort"
	"time"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	"github.com/fotodesk/FD-ScheduleService/internal/timeutil"
)

// LaneKey addresses one staff member's column on one day of the week.
type LaneKey struct {
	StaffID  string
	DayIndex int
}

// WeekView is the computed state for one displayed week.
type WeekView struct {
	WeekStart time.Time

	// Lanes maps each (staff, day) lane to its laid-out cards. Bookings
	// referencing a staff id absent from the staff list are unplaceable and
	// appear in no lane.
	Lanes map[LaneKey][]domain.PositionedEvent

	// DayCounts holds per-day badge counts of visible bookings.
	DayCounts [domain.DaysPerWeek]int

	// JumpToWeek is set when a non-empty search matched nothing in the
	// displayed week but matched somewhere else: it names the Monday of the
	// week containing the earliest match. The jump is one-shot; the caller
	// navigates once and recomputes.
	JumpToWeek *time.Time
}

// ComputeWeekView filters the full booking set for one week and lays out
// every lane. Pure: repeated calls with unchanged input yield identical
// results.
func ComputeWeekView(bookings []*domain.Booking, staff []*domain.Staff, filter domain.BookingsFilter, weekStart time.Time) (*WeekView, error) {
	weekStart = timeutil.StartOfWeek(weekStart)
	staffIdx := domain.BuildStaffIndex(staff)

	// Apply status, staff-type and free-text filters over the whole set.
	// Bookings with an unknown staff reference are dropped here: they cannot
	// be placed on any lane and must not crash the view.
	matched := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		s, ok := staffIdx[b.StaffID]
		if !ok {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.StaffType != nil && s.StaffType != *filter.StaffType {
			continue
		}
		if !filter.MatchesQuery(b) {
			continue
		}
		matched = append(matched, b)
	}

	view := &WeekView{
		WeekStart: weekStart,
		Lanes:     make(map[LaneKey][]domain.PositionedEvent),
	}

	byLane := make(map[LaneKey][]*domain.Booking)
	inWeek := 0
	for _, b := range matched {
		di := timeutil.DayIndex(b.Start, weekStart)
		if !timeutil.InWeek(di) {
			continue
		}
		inWeek++
		view.DayCounts[di]++
		key := LaneKey{StaffID: b.StaffID, DayIndex: di}
		byLane[key] = append(byLane[key], b)
	}

	for key, laneBookings := range byLane {
		sort.SliceStable(laneBookings, func(i, j int) bool {
			return laneBookings[i].Start.Before(laneBookings[j].Start)
		})
		placed, err := ComputePlacement(laneBookings)
		if err != nil {
			return nil, err
		}
		view.Lanes[key] = placed
	}

	// One-shot auto-navigation: only a non-empty text query with zero
	// in-week results but at least one result overall triggers a jump, to
	// the week of the earliest-starting match.
	if filter.Query != "" && inWeek == 0 && len(matched) > 0 {
		earliest := matched[0]
		for _, b := range matched[1:] {
			if b.Start.Before(earliest.Start) {
				earliest = b
			}
		}
		jump := timeutil.StartOfWeek(earliest.Start)
		view.JumpToWeek = &jump
	}

	return view, nil
}
