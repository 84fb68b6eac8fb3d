package check_availability

import "fmt"

func validateRequest(req *Request) error {
	if req.StaffID == "" {
		return fmt.Errorf("%w: staffId is required", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if !req.End.After(req.Start) {
		return ErrInvalidInterval
	}
	return nil
}
