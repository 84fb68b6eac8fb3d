package schedule

import (
	"math"
	"time"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	"github.com/fotodesk/FD-ScheduleService/internal/timeutil"
)

// DropTarget identifies the (staff, day) lane a booking was dropped on.
type DropTarget struct {
	StaffID  string
	DayIndex int // 0 = Monday of the active week
}

// DragInput is the single synchronous description of a completed drag
// gesture. The core does not depend on any event-dispatch mechanism; the UI
// boundary folds its pointer events into this struct.
type DragInput struct {
	Booking     *domain.Booking
	Target      *DropTarget // nil when the drag was aborted
	DeltaPixels float64     // vertical pixel delta of the gesture
	PxPerMinute float64     // current zoom scale
}

// Proposal is the update a successful reschedule asks the caller to commit.
// The core never persists; it hands the proposal back and stays stateless.
type Proposal struct {
	BookingID string
	StaffID   string
	Start     time.Time
	End       time.Time
	Status    domain.BookingStatus
}

// PlanReschedule converts a drag gesture into a proposed new placement.
//
// The booking's duration is preserved exactly; a reschedule changes position,
// never length. The pixel delta is converted to minutes at the current zoom
// and snapped to the nearest 30-minute step, in both directions. The new
// start is anchored to the target day's visible-hours baseline and cannot
// resolve to a time before it. weekStart may be any instant inside the
// displayed week; it is normalized to its Monday before anchoring.
//
// Availability is deliberately not consulted here: drops are allowed to
// create overlaps, which the layout engine renders side by side. Callers
// that want to warn on conflicts run FirstConflict separately, excluding the
// moved booking itself.
func PlanReschedule(in DragInput, weekStart time.Time, visibleStartHour int) (*Proposal, error) {
	if in.Target == nil {
		return nil, ErrNoDropTarget
	}
	if in.Booking == nil {
		return nil, ErrNoDropTarget
	}
	if err := ValidateInterval(in.Booking.Start, in.Booking.End); err != nil {
		return nil, err
	}
	if in.PxPerMinute <= 0 {
		return nil, ErrInvalidZoom
	}
	if !timeutil.InWeek(in.Target.DayIndex) {
		return nil, ErrInvalidDayIndex
	}

	duration := in.Booking.Duration()

	// Half-step ties resolve upward, so a raw -15 snaps to 0, not -30.
	rawDeltaMin := math.Floor(in.DeltaPixels/in.PxPerMinute + 0.5)
	deltaMin := math.Floor(rawDeltaMin/domain.SnapMinutes+0.5) * domain.SnapMinutes

	base := timeutil.DayBaseline(timeutil.StartOfWeek(weekStart), in.Target.DayIndex, visibleStartHour)
	originalOffset := timeutil.MinutesFromBaseline(in.Booking.Start, visibleStartHour)

	newOffset := float64(originalOffset) + deltaMin
	if newOffset < 0 {
		newOffset = 0
	}

	newStart := base.Add(time.Duration(newOffset) * time.Minute)
	return &Proposal{
		BookingID: in.Booking.ID,
		StaffID:   in.Target.StaffID,
		Start:     newStart,
		End:       newStart.Add(duration),
		Status:    in.Booking.Status.AfterReschedule(),
	}, nil
}
