package staff

import "errors"

var (
	// ErrStaffNotFound is returned when no staff member matches the id.
	ErrStaffNotFound = errors.New("staff.repository: staff not found")

	// ErrBuildQuery is returned when building a SQL statement fails.
	ErrBuildQuery = errors.New("staff.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL statement fails.
	ErrExecQuery = errors.New("staff.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("staff.repository: failed to scan row")
)
