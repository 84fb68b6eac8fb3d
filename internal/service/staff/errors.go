package staff

import "errors"

var (
	// ErrStaffNotFound is returned when the staff member does not exist.
	ErrStaffNotFound = errors.New("staff not found")

	// ErrInternal is returned on internal service errors.
	ErrInternal = errors.New("service: internal error")
)
