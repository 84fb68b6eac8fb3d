package get_week_view

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("get_week_view: invalid input")

	// ErrInternal is returned on repository failures.
	ErrInternal = errors.New("get_week_view: internal error")
)
