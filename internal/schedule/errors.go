package schedule

import "errors"

var (
	// ErrInvalidInterval is returned for intervals where end <= start.
	// Such input is rejected before any placement or availability math;
	// intervals are never silently swapped.
	ErrInvalidInterval = errors.New("schedule: invalid interval, end must be after start")

	// ErrNoDropTarget is returned when a drag gesture ended outside any
	// valid lane. The gesture is a no-op; no proposal is produced.
	ErrNoDropTarget = errors.New("schedule: drag ended without a drop target")

	// ErrInvalidDayIndex is returned when a drop target names a day outside
	// the 7-day week window.
	ErrInvalidDayIndex = errors.New("schedule: drop target day index out of range")

	// ErrInvalidZoom is returned when the pixel-per-minute scale is not positive.
	ErrInvalidZoom = errors.New("schedule: pixels per minute must be positive")
)
