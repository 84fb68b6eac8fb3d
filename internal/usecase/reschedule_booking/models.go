package reschedule_booking

import (
	"time"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	"github.com/fotodesk/FD-ScheduleService/internal/schedule"
)

// DropTarget names the lane the booking was dropped on. A nil target in the
// request means the gesture was aborted.
type DropTarget struct {
	StaffID  string
	DayIndex int
}

// Request describes one completed drag gesture.
type Request struct {
	BookingID   string
	Target      *DropTarget
	DeltaPixels float64
	PxPerMinute float64
	WeekStart   time.Time
}

// ConflictInfo reports an overlap the move created. The move still commits;
// the timeline renders overlapping cards side by side and the UI may warn.
type ConflictInfo struct {
	Kind  schedule.ConflictKind
	ID    string
	Start time.Time
	End   time.Time
}

// Response is the committed new placement.
type Response struct {
	Booking  *domain.Booking
	Conflict *ConflictInfo
}
