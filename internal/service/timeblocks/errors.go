package timeblocks

import "errors"

var (
	// ErrTimeBlockNotFound is returned when the time-block does not exist.
	ErrTimeBlockNotFound = errors.New("time block not found")

	// ErrStaffNotFound is returned when the block names an unknown staff
	// member.
	ErrStaffNotFound = errors.New("staff not found")

	// ErrInvalidInput is returned for malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange is returned when the block's end does not come
	// after its start.
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)
