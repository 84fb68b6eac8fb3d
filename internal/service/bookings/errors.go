package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrStaffNotFound is returned when an update names an unknown staff
	// member.
	ErrStaffNotFound = errors.New("staff not found")

	// ErrInvalidStatus is returned for a status outside the known set.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput is returned for malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange is returned when an update would leave the
	// booking with a non-positive duration.
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrEmptyUpdate is returned when an update contains no fields.
	ErrEmptyUpdate = errors.New("empty update")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)
