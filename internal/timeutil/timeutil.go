// Package timeutil provides UTC date arithmetic for the weekly timeline.
//
// All stored instants are absolute UTC. Display uses one fixed local offset
// captured at session start; it only affects labels, never stored values.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

// StartOfDay returns midnight UTC of the day containing t.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Monday 00:00 UTC that begins the 7-day window
// containing t. Weeks always start on Monday regardless of locale.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	dow := int(d.Weekday()) // 0 Sunday, 1 Monday
	diff := 1 - dow
	if dow == 0 {
		diff = -6
	}
	return d.AddDate(0, 0, diff)
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DayIndex returns the day offset of t from weekStart. Values outside [0,6]
// mean t is not in the displayed week; callers must filter such values out,
// never clamp them.
func DayIndex(t, weekStart time.Time) int {
	return int(StartOfDay(t).Sub(StartOfDay(weekStart)).Hours() / 24)
}

// InWeek reports whether the day index lies inside the 7-day window.
func InWeek(dayIndex int) bool {
	return dayIndex >= 0 && dayIndex <= 6
}

// DayBaseline returns the visible-hours start instant for day dayIndex of the
// week beginning at weekStart. It anchors vertical placement and drag math.
func DayBaseline(weekStart time.Time, dayIndex, visibleStartHour int) time.Time {
	d := StartOfDay(AddDays(weekStart, dayIndex))
	return d.Add(time.Duration(visibleStartHour) * time.Hour)
}

// MinutesBetween returns the rounded minute difference a - b.
func MinutesBetween(a, b time.Time) int {
	return int(math.Round(a.Sub(b).Minutes()))
}

// MinutesFromBaseline returns t's minute offset from its own day's visible
// baseline, clamped to be non-negative. Bookings before visible hours pin to
// the top of the band.
func MinutesFromBaseline(t time.Time, visibleStartHour int) int {
	base := StartOfDay(t).Add(time.Duration(visibleStartHour) * time.Hour)
	m := MinutesBetween(t, base)
	if m < 0 {
		return 0
	}
	return m
}

// Formatter renders labels in the operator's local time using a fixed offset
// captured once at session start. No live timezone switching.
type Formatter struct {
	offset time.Duration
}

// NewFormatter builds a Formatter for a display offset in minutes east of UTC.
func NewFormatter(offsetMinutes int) *Formatter {
	return &Formatter{offset: time.Duration(offsetMinutes) * time.Minute}
}

var shortWeekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ClockLabel renders t as a local HH:MM label.
func (f *Formatter) ClockLabel(t time.Time) string {
	local := t.UTC().Add(f.offset)
	return fmt.Sprintf("%02d:%02d", local.Hour(), local.Minute())
}

// HourLabel renders a whole local hour, e.g. "07:00".
func (f *Formatter) HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// DayLabel renders t as a local "Mon 2" style day header label.
func (f *Formatter) DayLabel(t time.Time) string {
	local := t.UTC().Add(f.offset)
	return fmt.Sprintf("%s %d", shortWeekdays[int(local.Weekday())], local.Day())
}
