package timeblock

import "errors"

var (
	// ErrTimeBlockNotFound is returned when no time-block matches the id.
	ErrTimeBlockNotFound = errors.New("timeblock.repository: time block not found")

	// ErrEmptyUpdate is returned when an update contains no fields.
	ErrEmptyUpdate = errors.New("timeblock.repository: empty update")

	// ErrBuildQuery is returned when building a SQL statement fails.
	ErrBuildQuery = errors.New("timeblock.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL statement fails.
	ErrExecQuery = errors.New("timeblock.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("timeblock.repository: failed to scan row")
)
