package check_availability

import (
	"time"

	"github.com/fotodesk/FD-ScheduleService/internal/schedule"
)

// Request is a candidate interval for one staff member.
type Request struct {
	StaffID string
	Start   time.Time
	End     time.Time

	// ExcludeBookingID removes the booking being moved or edited from the
	// conflict scan (identity exclusion).
	ExcludeBookingID *string
}

// ConflictInfo describes the first obstacle found, for UI messaging.
type ConflictInfo struct {
	Kind  schedule.ConflictKind
	ID    string
	Start time.Time
	End   time.Time
}

// Response is the availability verdict.
type Response struct {
	StaffID   string
	Start     time.Time
	End       time.Time
	Available bool
	Conflict  *ConflictInfo
}
