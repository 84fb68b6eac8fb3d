package models

import "github.com/fotodesk/FD-ScheduleService/internal/domain"

// StaffResponse is the staff member DTO returned to clients.
type StaffResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	StaffType string  `json:"staffType"`
	Color     *string `json:"color,omitempty"`
	Active    bool    `json:"active"`
}

// StaffListResponse is the listing envelope.
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// FromDomainStaff converts a domain staff member into a DTO.
func FromDomainStaff(s *domain.Staff) *StaffResponse {
	if s == nil {
		return nil
	}
	return &StaffResponse{
		ID:        s.ID,
		Name:      s.Name,
		StaffType: string(s.StaffType),
		Color:     s.Color,
		Active:    s.Active,
	}
}

// FromDomainStaffList converts a list of domain staff into a DTO.
func FromDomainStaffList(staff []*domain.Staff) *StaffListResponse {
	out := make([]StaffResponse, 0, len(staff))
	for _, s := range staff {
		out = append(out, *FromDomainStaff(s))
	}
	return &StaffListResponse{Staff: out}
}
