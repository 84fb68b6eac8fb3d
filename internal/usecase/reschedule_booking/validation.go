package reschedule_booking

import "fmt"

func validateRequest(req *Request) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}
	if req.WeekStart.IsZero() {
		return fmt.Errorf("%w: weekStart is required", ErrInvalidInput)
	}
	if req.Target != nil && req.Target.StaffID == "" {
		return fmt.Errorf("%w: target staffId is required", ErrInvalidInput)
	}
	return nil
}
