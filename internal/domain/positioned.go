package domain

// PositionedEvent is a booking annotated with render-only layout attributes.
// It is derived fresh on every layout pass and never persisted.
type PositionedEvent struct {
	Booking *Booking

	// WidthPct and LeftPct are percentages of the lane width.
	WidthPct float64
	LeftPct  float64

	// ZIndex increases with processing order so later-starting cards render
	// above earlier ones during drag.
	ZIndex int
}
