package get_week_view

import (
	"context"
	"fmt"
	"sort"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
	"github.com/fotodesk/FD-ScheduleService/internal/schedule"
	"github.com/fotodesk/FD-ScheduleService/internal/timeutil"
)

// UseCase assembles one week of the timeline: staff lanes, laid-out cards,
// per-day counts and the one-shot search jump.
type UseCase struct {
	bookingRepo BookingRepository
	staffRepo   StaffRepository
	formatter   *timeutil.Formatter
	logger      Logger
}

// NewUseCase creates the week-view use case. displayOffsetMinutes shifts the
// day header labels into the operator's local time; stored instants stay UTC.
func NewUseCase(bookingRepo BookingRepository, staffRepo StaffRepository, displayOffsetMinutes int, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		formatter:   timeutil.NewFormatter(displayOffsetMinutes),
		logger:      logger,
	}
}

// Execute computes the view for the week containing req.WeekStart.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.WeekStart.IsZero() {
		return nil, fmt.Errorf("%w: weekStart is required", ErrInvalidInput)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	weekStart := timeutil.StartOfWeek(req.WeekStart)

	staff, err := uc.staffRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("GetWeekView: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: list staff: %v", ErrInternal, err)
	}

	// A text search scans the whole history so it can offer a jump to the
	// week of the earliest match. Without a query the fetch is windowed to
	// the displayed week.
	filter := domain.BookingsFilter{
		Status:    req.Status,
		Query:     req.Query,
		StaffType: req.StaffType,
	}
	if req.Query == "" {
		weekEnd := timeutil.AddDays(weekStart, domain.DaysPerWeek)
		filter.From = &weekStart
		filter.To = &weekEnd
	}

	bookings, err := uc.bookingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetWeekView: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: list bookings: %v", ErrInternal, err)
	}

	view, err := schedule.ComputeWeekView(bookings, staff, filter, weekStart)
	if err != nil {
		uc.logger.Error("GetWeekView: layout failed for week=%s: %v", weekStart.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: compute week view: %v", ErrInternal, err)
	}

	resp := &Response{
		WeekStart:  view.WeekStart,
		Staff:      staff,
		Lanes:      flattenLanes(view.Lanes),
		DayCounts:  view.DayCounts,
		JumpToWeek: view.JumpToWeek,
	}
	for i := 0; i < domain.DaysPerWeek; i++ {
		day := timeutil.AddDays(view.WeekStart, i)
		resp.Days[i] = Day{
			Date:  day.Format(domain.DateFormat),
			Label: uc.formatter.DayLabel(day),
			Count: view.DayCounts[i],
		}
	}
	uc.logger.Info("GetWeekView: week=%s lanes=%d query=%q jump=%v",
		weekStart.Format(domain.DateFormat), len(resp.Lanes), req.Query, resp.JumpToWeek != nil)
	return resp, nil
}

// flattenLanes converts the lane map into a slice with a stable order.
func flattenLanes(lanes map[schedule.LaneKey][]domain.PositionedEvent) []Lane {
	out := make([]Lane, 0, len(lanes))
	for key, events := range lanes {
		out = append(out, Lane{StaffID: key.StaffID, DayIndex: key.DayIndex, Events: events})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayIndex != out[j].DayIndex {
			return out[i].DayIndex < out[j].DayIndex
		}
		return out[i].StaffID < out[j].StaffID
	})
	return out
}
