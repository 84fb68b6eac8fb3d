package models

import (
	"errors"
	"time"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

var (
	// ErrInvalidStatus is returned when a status string is not recognised.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidStaffType is returned when a staff type string is not
	// recognised.
	ErrInvalidStaffType = errors.New("invalid staff type")
)

// Request models

// ListBookingsRequest is the flexible listing filter.
type ListBookingsRequest struct {
	Status          *string    `json:"status,omitempty"`
	Query           string     `json:"query,omitempty"`
	StaffType       *string    `json:"staffType,omitempty"`
	StaffIDs        []string   `json:"staffIds,omitempty"`
	From            *time.Time `json:"from,omitempty"`
	To              *time.Time `json:"to,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into a domain filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Query:           r.Query,
		StaffIDs:        r.StaffIDs,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if r.StaffType != nil {
		st, err := domain.ParseStaffType(*r.StaffType)
		if err != nil {
			return filter, ErrInvalidStaffType
		}
		filter.StaffType = &st
	}

	return filter, nil
}

// UpdateBookingRequest is a partial booking update. Nil fields keep their
// current value.
type UpdateBookingRequest struct {
	Title         *string    `json:"title,omitempty"`
	ClientName    *string    `json:"clientName,omitempty"`
	Location      *string    `json:"location,omitempty"`
	StaffID       *string    `json:"staffId,omitempty"`
	Start         *time.Time `json:"start,omitempty"`
	End           *time.Time `json:"end,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	Email         *string    `json:"email,omitempty"`
	ContactNumber *string    `json:"contactNumber,omitempty"`
	ClientPhone   *string    `json:"clientPhone,omitempty"`
	PackageName   *string    `json:"packageName,omitempty"`
}

// ToDomainUpdate converts the request into a domain update.
func (r *UpdateBookingRequest) ToDomainUpdate() (domain.BookingUpdate, error) {
	update := domain.BookingUpdate{
		Title:         r.Title,
		ClientName:    r.ClientName,
		Location:      r.Location,
		StaffID:       r.StaffID,
		Start:         r.Start,
		End:           r.End,
		Notes:         r.Notes,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		ClientPhone:   r.ClientPhone,
		PackageName:   r.PackageName,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return update, err
		}
		update.Status = &status
	}

	return update, nil
}

// UpdateStatusRequest sets a booking's workflow status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response models

// BookingResponse is the booking DTO returned to clients. Timestamps are
// UTC RFC 3339.
type BookingResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	ClientName      string  `json:"clientName"`
	Location        *string `json:"location,omitempty"`
	StaffID         string  `json:"staffId"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`

	Notes         *string `json:"notes,omitempty"`
	Email         *string `json:"email,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	ClientPhone   *string `json:"clientPhone,omitempty"`
	PackageName   *string `json:"packageName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse is the listing envelope.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Conversion helpers

// FromDomainBooking converts a domain booking into a DTO.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		Title:           b.Title,
		ClientName:      b.ClientName,
		Location:        b.Location,
		StaffID:         b.StaffID,
		Start:           b.Start.UTC().Format(time.RFC3339),
		End:             b.End.UTC().Format(time.RFC3339),
		DurationMinutes: b.DurationMinutes(),
		Status:          string(b.Status),
		Notes:           b.Notes,
		Email:           b.Email,
		ContactNumber:   b.ContactNumber,
		ClientPhone:     b.ClientPhone,
		PackageName:     b.PackageName,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings into a DTO.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out}
}

// ToDomainBookingStatus parses a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status, err := domain.ParseBookingStatus(s)
	if err != nil {
		return "", ErrInvalidStatus
	}
	return status, nil
}
