package domain

// Default timeline configuration
const (
	// Visible operating hours of the vertical timeline, local hours.
	// Bookings outside this band stay valid data; they are only clipped
	// visually.
	DefaultVisibleStartHour = 7
	DefaultVisibleEndHour   = 19

	// SnapMinutes is the quantization step for drag-reschedule time shifts.
	SnapMinutes = 30

	// Lane geometry: cards occupy 95% of the lane width with a 2.5% gutter
	// on each side. Overlapping cards split the 95% into sub-columns.
	LaneUsableWidthPct = 95.0
	LaneGutterPct      = 2.5

	// DaysPerWeek is the width of the Monday-aligned week window.
	DaysPerWeek = 7
)

// Business validation constants
const (
	MaxTitleLength      = 200
	MaxClientNameLength = 200
	MaxLocationLength   = 300
	MaxNotesLength      = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
