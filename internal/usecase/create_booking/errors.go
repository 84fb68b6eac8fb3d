package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("create_booking: invalid input")

	// ErrInvalidInterval is returned when end <= start.
	ErrInvalidInterval = errors.New("create_booking: end must be after start")

	// ErrStaffNotFound is returned when the assigned staff does not exist.
	ErrStaffNotFound = errors.New("create_booking: staff not found")

	// ErrSlotNotAvailable is returned when the interval collides with a
	// blocking time-block or an existing booking of the same staff.
	ErrSlotNotAvailable = errors.New("create_booking: slot not available")

	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("create_booking: internal error")
)
