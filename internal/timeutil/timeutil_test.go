package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday maps to preceding monday",
			in:   time.Date(2025, 10, 15, 13, 45, 0, 0, time.UTC),
			want: time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday maps to itself",
			in:   time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday maps back six days",
			in:   time.Date(2025, 10, 19, 23, 59, 0, 0, time.UTC),
			want: time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfWeek(tt.in))
		})
	}
}

func TestDayIndex(t *testing.T) {
	weekStart := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DayIndex(weekStart.Add(9*time.Hour), weekStart))
	assert.Equal(t, 3, DayIndex(weekStart.AddDate(0, 0, 3), weekStart))
	assert.Equal(t, 6, DayIndex(weekStart.AddDate(0, 0, 6).Add(23*time.Hour), weekStart))

	// Out-of-week values are reported as-is, not clamped.
	assert.Equal(t, -1, DayIndex(weekStart.AddDate(0, 0, -1), weekStart))
	assert.Equal(t, 7, DayIndex(weekStart.AddDate(0, 0, 7), weekStart))
	assert.False(t, InWeek(-1))
	assert.False(t, InWeek(7))
	assert.True(t, InWeek(0))
	assert.True(t, InWeek(6))
}

func TestDayBaseline(t *testing.T) {
	weekStart := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

	base := DayBaseline(weekStart, 2, 7)
	assert.Equal(t, time.Date(2025, 10, 15, 7, 0, 0, 0, time.UTC), base)
}

func TestMinutesFromBaseline(t *testing.T) {
	nine := time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 120, MinutesFromBaseline(nine, 7))

	// Instants before visible hours clamp to the top of the band.
	early := time.Date(2025, 10, 13, 6, 15, 0, 0, time.UTC)
	assert.Equal(t, 0, MinutesFromBaseline(early, 7))
}

func TestFormatterLabels(t *testing.T) {
	// UTC+7 display offset (the studio's timezone at load time).
	f := NewFormatter(7 * 60)

	instant := time.Date(2025, 10, 13, 2, 30, 0, 0, time.UTC)
	assert.Equal(t, "09:30", f.ClockLabel(instant))
	assert.Equal(t, "Mon 13", f.DayLabel(instant))
	assert.Equal(t, "07:00", f.HourLabel(7))
}
