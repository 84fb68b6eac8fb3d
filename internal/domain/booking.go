package domain

import "time"

// Booking represents a client booking placed on a staff lane.
// Start and End are absolute UTC instants; End must be strictly after Start.
type Booking struct {
	ID         string
	Title      string
	ClientName string
	Location   *string
	StaffID    string
	Start      time.Time
	End        time.Time
	Status     BookingStatus

	// Optional contact and package details shown in side panels
	Notes         *string
	Email         *string
	ContactNumber *string
	ClientPhone   *string
	PackageName   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the booking length.
func (b *Booking) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// DurationMinutes returns the booking length in whole minutes.
func (b *Booking) DurationMinutes() int {
	return int(b.End.Sub(b.Start) / time.Minute)
}

// IsActive returns true if the booking still occupies its time slot.
// Cancelled and expired bookings do not count against availability.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusExpired
}

// IsTerminal returns true if the booking is in a terminal-like state.
// Terminal bookings are still editable and reschedulable; callers use this
// only for presentation.
func (b *Booking) IsTerminal() bool {
	for _, s := range TerminalStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// ValidInterval returns true when End is strictly after Start.
func (b *Booking) ValidInterval() bool {
	return b.End.After(b.Start)
}

// BookingUpdate describes a partial update to a booking. Nil fields are left
// unchanged. The scheduling core returns values of this shape as proposals;
// it never mutates shared state itself.
type BookingUpdate struct {
	Title         *string
	ClientName    *string
	Location      *string
	StaffID       *string
	Start         *time.Time
	End           *time.Time
	Status        *BookingStatus
	Notes         *string
	Email         *string
	ContactNumber *string
	ClientPhone   *string
	PackageName   *string
}

// IsEmpty returns true when the update would change nothing.
func (u *BookingUpdate) IsEmpty() bool {
	return u.Title == nil && u.ClientName == nil && u.Location == nil &&
		u.StaffID == nil && u.Start == nil && u.End == nil && u.Status == nil &&
		u.Notes == nil && u.Email == nil && u.ContactNumber == nil &&
		u.ClientPhone == nil && u.PackageName == nil
}

// BookingsFilter is the flexible filter for booking listings.
// Mirrors the query parameters of GET /bookings.
type BookingsFilter struct {
	Status    *BookingStatus // filter by exact status (optional)
	Query     string         // free text over title, client name and location
	StaffType *StaffType     // restrict to lanes of one staff specialty
	StaffIDs  []string       // restrict to specific staff (optional)
	From      *time.Time     // bookings ending after this instant
	To        *time.Time     // bookings starting before this instant

	// IncludeInactive also returns cancelled and expired bookings.
	IncludeInactive bool
}

// MatchesQuery reports whether the booking matches the free-text query.
// An empty query matches everything.
func (f *BookingsFilter) MatchesQuery(b *Booking) bool {
	if f.Query == "" {
		return true
	}
	if containsFold(b.Title, f.Query) || containsFold(b.ClientName, f.Query) {
		return true
	}
	return b.Location != nil && containsFold(*b.Location, f.Query)
}
