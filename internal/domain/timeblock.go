package domain

import "time"

// TimeBlockType distinguishes blocking from informational time-blocks.
type TimeBlockType string

const (
	// TimeBlockBusy marks the staff member unavailable for the interval.
	TimeBlockBusy TimeBlockType = "BUSY"
	// TimeBlockAvailable is informational only and never blocks bookings.
	TimeBlockAvailable TimeBlockType = "AVAILABLE"
)

// TimeBlock is a staff-owned interval. Only BUSY blocks participate in
// availability checks.
type TimeBlock struct {
	ID        string
	StaffID   string
	BookingID *string // set when the block was created for a booking
	Start     time.Time
	End       time.Time
	Type      TimeBlockType
	Note      *string
}

// IsBlocking returns true if the block makes its interval unavailable.
func (tb *TimeBlock) IsBlocking() bool {
	return tb.Type == TimeBlockBusy
}

// TimeBlockUpdate describes a partial update to a time-block. Nil fields are
// left unchanged.
type TimeBlockUpdate struct {
	Start *time.Time
	End   *time.Time
	Type  *TimeBlockType
	Note  *string
}

// IsEmpty returns true when the update would change nothing.
func (u *TimeBlockUpdate) IsEmpty() bool {
	return u.Start == nil && u.End == nil && u.Type == nil && u.Note == nil
}

// TimeBlocksFilter narrows time-block listings.
type TimeBlocksFilter struct {
	StaffIDs []string
	From     *time.Time
	To       *time.Time
}
