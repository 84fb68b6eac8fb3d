package schedule

import (
	"sort"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

// ComputePlacement assigns side-by-side sub-columns to the bookings of one
// (staff, day) lane so that temporally overlapping cards never cover each
// other and non-overlapping cards render full width.
//
// Placement is greedy and incremental: bookings are processed in ascending
// start order (ties keep the original list order), and each booking is
// offset past the already-placed bookings it overlaps. With k overlaps the
// card gets width 95/(k+1)% and left 2.5 + k*width %. The pass does not
// repack earlier cards once a group's final concurrency is known; placements
// of existing cards stay stable under small changes, which matters more for
// re-renders than optimal packing.
//
// The result is deterministic and idempotent for a fixed input list. Input
// containing an interval with end <= start is rejected.
func ComputePlacement(bookings []*domain.Booking) ([]domain.PositionedEvent, error) {
	for _, b := range bookings {
		if err := ValidateInterval(b.Start, b.End); err != nil {
			return nil, err
		}
	}

	ordered := make([]*domain.Booking, len(bookings))
	copy(ordered, bookings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start.Before(ordered[j].Start)
	})

	placed := make([]domain.PositionedEvent, 0, len(ordered))
	for i, b := range ordered {
		k := 0
		for _, p := range placed {
			if Overlaps(b.Start, b.End, p.Booking.Start, p.Booking.End) {
				k++
			}
		}

		width := domain.LaneUsableWidthPct / float64(k+1)
		placed = append(placed, domain.PositionedEvent{
			Booking:  b,
			WidthPct: width,
			LeftPct:  domain.LaneGutterPct + float64(k)*width,
			ZIndex:   i + 1,
		})
	}

	return placed, nil
}
