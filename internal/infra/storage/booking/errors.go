package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the id.
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrEmptyUpdate is returned when a partial update contains no fields.
	ErrEmptyUpdate = errors.New("booking.repository: update contains no fields")

	// ErrBuildQuery is returned when building a SQL statement fails.
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL statement fails.
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
