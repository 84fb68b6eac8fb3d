package domain

import "fmt"

// BookingStatus represents the lifecycle status of a booking.
// The set is closed; any state may be set to any other through the status
// update API. The single transition the scheduling core applies itself is
// HOLD -> CONFIRMED when a held booking is dragged onto the grid.
type BookingStatus string

const (
	StatusInquiry    BookingStatus = "INQUIRY"
	StatusHold       BookingStatus = "HOLD"
	StatusConfirmed  BookingStatus = "CONFIRMED"
	StatusScheduled  BookingStatus = "SCHEDULED"
	StatusInProgress BookingStatus = "IN_PROGRESS"
	StatusEditing    BookingStatus = "EDITING"
	StatusReview     BookingStatus = "REVIEW"
	StatusDelivered  BookingStatus = "DELIVERED"
	StatusClosed     BookingStatus = "CLOSED"
	StatusCancelled  BookingStatus = "CANCELLED"
	StatusExpired    BookingStatus = "EXPIRED"
)

// AllStatuses lists every valid booking status.
var AllStatuses = []BookingStatus{
	StatusInquiry,
	StatusHold,
	StatusConfirmed,
	StatusScheduled,
	StatusInProgress,
	StatusEditing,
	StatusReview,
	StatusDelivered,
	StatusClosed,
	StatusCancelled,
	StatusExpired,
}

// InactiveStatuses lists statuses whose bookings no longer occupy their slot.
// Used when counting conflicts for availability checks.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusExpired,
}

// TerminalStatuses lists end-of-lifecycle statuses. Terminal bookings stay
// editable and reschedulable; the grouping only drives presentation.
var TerminalStatuses = []BookingStatus{
	StatusDelivered,
	StatusClosed,
	StatusCancelled,
	StatusExpired,
}

// IsValid returns true if s is a member of the closed status set.
func (s BookingStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseBookingStatus converts a raw string to a BookingStatus.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	s := BookingStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown booking status %q", raw)
	}
	return s, nil
}

// AfterReschedule returns the status a booking should carry after a
// successful reschedule. Moving a tentative hold onto the grid confirms it;
// every other status is left unchanged.
func (s BookingStatus) AfterReschedule() BookingStatus {
	if s == StatusHold {
		return StatusConfirmed
	}
	return s
}
