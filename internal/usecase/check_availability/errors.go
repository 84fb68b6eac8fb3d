package check_availability

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("check_availability: invalid input")

	// ErrInvalidInterval is returned when end <= start.
	ErrInvalidInterval = errors.New("check_availability: end must be after start")

	// ErrStaffNotFound is returned when the staff member does not exist.
	ErrStaffNotFound = errors.New("check_availability: staff not found")

	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("check_availability: internal error")
)
