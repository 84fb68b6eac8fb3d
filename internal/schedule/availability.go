// Package schedule is the pure scheduling core: availability checks, lane
// layout, drag-reschedule planning and week-view computation. Every function
// here is a synchronous pure function over in-memory snapshots; the package
// holds no state and performs no I/O. Callers own the snapshots and commit
// (or discard) the proposals this package returns.
package schedule

import (
	"time"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) overlap. Touching boundaries (one ends exactly where the
// other starts) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ConflictKind identifies what a candidate interval collided with.
type ConflictKind string

const (
	ConflictTimeBlock ConflictKind = "time_block"
	ConflictBooking   ConflictKind = "booking"
)

// Conflict describes the first obstacle found for a candidate interval.
type Conflict struct {
	Kind  ConflictKind
	ID    string
	Start time.Time
	End   time.Time
}

// IsAvailable reports whether staffID is free for [start, end).
//
// The interval must satisfy end > start; callers validate before invoking.
// Only blocking time-blocks owned by staffID and bookings assigned to
// staffID participate. When checking a move of an existing booking the
// caller must exclude that booking from existing before calling.
func IsAvailable(staffID string, start, end time.Time, blocks []*domain.TimeBlock, existing []*domain.Booking) bool {
	_, ok := FirstConflict(staffID, start, end, blocks, existing)
	return !ok
}

// FirstConflict returns the first blocking time-block or booking overlapping
// [start, end) for staffID, scanning blocks before bookings. The second
// return value is false when the interval is free.
func FirstConflict(staffID string, start, end time.Time, blocks []*domain.TimeBlock, existing []*domain.Booking) (*Conflict, bool) {
	for _, tb := range blocks {
		if tb.StaffID != staffID || !tb.IsBlocking() {
			continue
		}
		if Overlaps(start, end, tb.Start, tb.End) {
			return &Conflict{Kind: ConflictTimeBlock, ID: tb.ID, Start: tb.Start, End: tb.End}, true
		}
	}
	for _, b := range existing {
		if b.StaffID != staffID {
			continue
		}
		if Overlaps(start, end, b.Start, b.End) {
			return &Conflict{Kind: ConflictBooking, ID: b.ID, Start: b.Start, End: b.End}, true
		}
	}
	return nil, false
}

// ValidateInterval rejects zero-duration and inverted intervals.
func ValidateInterval(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidInterval
	}
	return nil
}
