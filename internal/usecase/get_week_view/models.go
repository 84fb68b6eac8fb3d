package get_week_view

import (
	"time"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

// Request selects the displayed week and optional filters.
type Request struct {
	WeekStart time.Time
	Status    *domain.BookingStatus
	StaffType *domain.StaffType
	Query     string
}

// Lane is one staff member's column on one day, with its cards already
// laid out.
type Lane struct {
	StaffID  string
	DayIndex int
	Events   []domain.PositionedEvent
}

// Day is one header cell of the week: its date, its label in the operator's
// display offset and its badge count.
type Day struct {
	Date  string
	Label string
	Count int
}

// Response is one computed week. Lanes are ordered by day then staff id so
// the payload is stable across calls.
type Response struct {
	WeekStart time.Time
	Staff     []*domain.Staff
	Lanes     []Lane
	Days      [domain.DaysPerWeek]Day
	DayCounts [domain.DaysPerWeek]int

	// JumpToWeek is set when a non-empty search matched only outside the
	// displayed week. The client navigates there once and re-requests.
	JumpToWeek *time.Time
}
