package check_availability

import (
	"time"

	checkAvailability "github.com/fotodesk/FD-ScheduleService/internal/usecase/check_availability"
)

// CheckAvailabilityRequest is the HTTP payload for POST /availability/check.
// Start and end are RFC 3339 UTC instants.
type CheckAvailabilityRequest struct {
	StaffID          string  `json:"staffId"`
	Start            string  `json:"start"`
	End              string  `json:"end"`
	ExcludeBookingID *string `json:"excludeBookingId,omitempty"`
}

// ToUseCaseRequest parses the timestamps.
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}
	return &checkAvailability.Request{
		StaffID:          r.StaffID,
		Start:            start.UTC(),
		End:              end.UTC(),
		ExcludeBookingID: r.ExcludeBookingID,
	}, nil
}

// ConflictPayload describes the first obstacle found.
type ConflictPayload struct {
	Kind  string `json:"kind"`
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// CheckAvailabilityResponse is the availability verdict.
type CheckAvailabilityResponse struct {
	StaffID   string           `json:"staffId"`
	Start     string           `json:"start"`
	End       string           `json:"end"`
	Available bool             `json:"available"`
	Conflict  *ConflictPayload `json:"conflict,omitempty"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	out := &CheckAvailabilityResponse{
		StaffID:   resp.StaffID,
		Start:     resp.Start.UTC().Format(time.RFC3339),
		End:       resp.End.UTC().Format(time.RFC3339),
		Available: resp.Available,
	}
	if resp.Conflict != nil {
		out.Conflict = &ConflictPayload{
			Kind:  string(resp.Conflict.Kind),
			ID:    resp.Conflict.ID,
			Start: resp.Conflict.Start.UTC().Format(time.RFC3339),
			End:   resp.Conflict.End.UTC().Format(time.RFC3339),
		}
	}
	return out
}
