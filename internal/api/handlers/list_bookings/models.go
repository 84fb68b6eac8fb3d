package list_bookings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/fotodesk/FD-ScheduleService/internal/service/bookings/models"
)

// parseQuery maps GET /bookings query parameters onto the service filter.
// from/to are RFC 3339 UTC instants.
func parseQuery(values url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		Query:           values.Get("q"),
		IncludeInactive: values.Get("includeInactive") == "true",
	}

	if s := values.Get("status"); s != "" {
		req.Status = &s
	}
	if st := values.Get("staffType"); st != "" {
		req.StaffType = &st
	}
	if ids, ok := values["staffId"]; ok {
		req.StaffIDs = ids
	}

	if raw := values.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		from = from.UTC()
		req.From = &from
	}
	if raw := values.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
		to = to.UTC()
		req.To = &to
	}

	return req, nil
}
