package reschedule_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("reschedule_booking: invalid input")

	// ErrBookingNotFound is returned when the dragged booking is unknown.
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrStaffNotFound is returned when the target lane names an unknown
	// staff member.
	ErrStaffNotFound = errors.New("reschedule_booking: target staff not found")

	// ErrDropAborted is returned when the gesture ended outside a valid
	// lane. The move is a no-op; nothing is persisted.
	ErrDropAborted = errors.New("reschedule_booking: drop aborted")

	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("reschedule_booking: internal error")
)
