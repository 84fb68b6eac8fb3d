package get_week_view

import (
	"fmt"
	"net/url"
	"time"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	staffModels "github.com/fotodesk/FD-ScheduleService/internal/service/staff/models"
	getWeekView "github.com/fotodesk/FD-ScheduleService/internal/usecase/get_week_view"
)

// parseQuery maps GET /week-view query parameters onto the use case request.
func parseQuery(values url.Values) (*getWeekView.Request, error) {
	raw := values.Get("weekStart")
	if raw == "" {
		return nil, fmt.Errorf("weekStart is required")
	}
	weekStart, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Date-only form is accepted too: weekStart=2025-10-13.
		weekStart, err = time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid weekStart: %w", err)
		}
	}

	req := &getWeekView.Request{
		WeekStart: weekStart.UTC(),
		Query:     values.Get("q"),
	}
	if s := values.Get("status"); s != "" {
		status, err := domain.ParseBookingStatus(s)
		if err != nil {
			return nil, fmt.Errorf("invalid status: %w", err)
		}
		req.Status = &status
	}
	if st := values.Get("staffType"); st != "" {
		staffType, err := domain.ParseStaffType(st)
		if err != nil {
			return nil, fmt.Errorf("invalid staffType: %w", err)
		}
		req.StaffType = &staffType
	}
	return req, nil
}

// EventPayload is one laid-out card.
type EventPayload struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	ClientName      string  `json:"clientName"`
	Location        *string `json:"location,omitempty"`
	StaffID         string  `json:"staffId"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`

	WidthPct float64 `json:"widthPct"`
	LeftPct  float64 `json:"leftPct"`
	ZIndex   int     `json:"zIndex"`
}

// LanePayload is one staff member's column on one day.
type LanePayload struct {
	StaffID  string         `json:"staffId"`
	DayIndex int            `json:"dayIndex"`
	Events   []EventPayload `json:"events"`
}

// DayPayload is one day header cell.
type DayPayload struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// WeekViewResponse is one computed week.
type WeekViewResponse struct {
	WeekStart  string                         `json:"weekStart"`
	Staff      []staffModels.StaffResponse    `json:"staff"`
	Lanes      []LanePayload                  `json:"lanes"`
	Days       [domain.DaysPerWeek]DayPayload `json:"days"`
	DayCounts  [domain.DaysPerWeek]int        `json:"dayCounts"`
	JumpToWeek *string                        `json:"jumpToWeek,omitempty"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *getWeekView.Response) *WeekViewResponse {
	out := &WeekViewResponse{
		WeekStart: resp.WeekStart.UTC().Format(time.RFC3339),
		Staff:     staffModels.FromDomainStaffList(resp.Staff).Staff,
		Lanes:     make([]LanePayload, 0, len(resp.Lanes)),
		DayCounts: resp.DayCounts,
	}
	for i, d := range resp.Days {
		out.Days[i] = DayPayload{Date: d.Date, Label: d.Label, Count: d.Count}
	}
	if resp.JumpToWeek != nil {
		jump := resp.JumpToWeek.UTC().Format(time.RFC3339)
		out.JumpToWeek = &jump
	}

	for _, lane := range resp.Lanes {
		events := make([]EventPayload, 0, len(lane.Events))
		for _, ev := range lane.Events {
			events = append(events, EventPayload{
				ID:              ev.Booking.ID,
				Title:           ev.Booking.Title,
				ClientName:      ev.Booking.ClientName,
				Location:        ev.Booking.Location,
				StaffID:         ev.Booking.StaffID,
				Start:           ev.Booking.Start.UTC().Format(time.RFC3339),
				End:             ev.Booking.End.UTC().Format(time.RFC3339),
				DurationMinutes: ev.Booking.DurationMinutes(),
				Status:          string(ev.Booking.Status),
				WidthPct:        ev.WidthPct,
				LeftPct:         ev.LeftPct,
				ZIndex:          ev.ZIndex,
			})
		}
		out.Lanes = append(out.Lanes, LanePayload{
			StaffID:  lane.StaffID,
			DayIndex: lane.DayIndex,
			Events:   events,
		})
	}
	return out
}
