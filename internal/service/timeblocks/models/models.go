package models

import (
	"errors"
	"time"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

var (
	// ErrInvalidType is returned when a block type string is not recognised.
	ErrInvalidType = errors.New("invalid time block type")
)

// Request models

// ListTimeBlocksRequest narrows time-block listings.
type ListTimeBlocksRequest struct {
	StaffIDs []string   `json:"staffIds,omitempty"`
	From     *time.Time `json:"from,omitempty"`
	To       *time.Time `json:"to,omitempty"`
}

// ToDomainFilter converts the request into a domain filter.
func (r *ListTimeBlocksRequest) ToDomainFilter() domain.TimeBlocksFilter {
	return domain.TimeBlocksFilter{
		StaffIDs: r.StaffIDs,
		From:     r.From,
		To:       r.To,
	}
}

// CreateTimeBlockRequest creates one staff time-block.
type CreateTimeBlockRequest struct {
	StaffID   string    `json:"staffId"`
	BookingID *string   `json:"bookingId,omitempty"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Type      string    `json:"type"`
	Note      *string   `json:"note,omitempty"`
}

// ToDomain converts the request into a domain time-block without an id.
func (r *CreateTimeBlockRequest) ToDomain() (*domain.TimeBlock, error) {
	blockType := domain.TimeBlockType(r.Type)
	if blockType != domain.TimeBlockBusy && blockType != domain.TimeBlockAvailable {
		return nil, ErrInvalidType
	}
	return &domain.TimeBlock{
		StaffID:   r.StaffID,
		BookingID: r.BookingID,
		Start:     r.Start.UTC(),
		End:       r.End.UTC(),
		Type:      blockType,
		Note:      r.Note,
	}, nil
}

// UpdateTimeBlockRequest is a partial time-block update. Nil fields keep
// their current value.
type UpdateTimeBlockRequest struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
	Type  *string    `json:"type,omitempty"`
	Note  *string    `json:"note,omitempty"`
}

// ToDomainUpdate converts the request into a domain update.
func (r *UpdateTimeBlockRequest) ToDomainUpdate() (domain.TimeBlockUpdate, error) {
	update := domain.TimeBlockUpdate{
		Note: r.Note,
	}
	if r.Start != nil {
		start := r.Start.UTC()
		update.Start = &start
	}
	if r.End != nil {
		end := r.End.UTC()
		update.End = &end
	}
	if r.Type != nil {
		blockType := domain.TimeBlockType(*r.Type)
		if blockType != domain.TimeBlockBusy && blockType != domain.TimeBlockAvailable {
			return update, ErrInvalidType
		}
		update.Type = &blockType
	}
	return update, nil
}

// Response models

// TimeBlockResponse is the time-block DTO returned to clients.
type TimeBlockResponse struct {
	ID        string  `json:"id"`
	StaffID   string  `json:"staffId"`
	BookingID *string `json:"bookingId,omitempty"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	Type      string  `json:"type"`
	Note      *string `json:"note,omitempty"`
}

// TimeBlockListResponse is the listing envelope.
type TimeBlockListResponse struct {
	TimeBlocks []TimeBlockResponse `json:"timeBlocks"`
}

// FromDomainTimeBlock converts a domain time-block into a DTO.
func FromDomainTimeBlock(tb *domain.TimeBlock) *TimeBlockResponse {
	if tb == nil {
		return nil
	}
	return &TimeBlockResponse{
		ID:        tb.ID,
		StaffID:   tb.StaffID,
		BookingID: tb.BookingID,
		Start:     tb.Start.UTC().Format(time.RFC3339),
		End:       tb.End.UTC().Format(time.RFC3339),
		Type:      string(tb.Type),
		Note:      tb.Note,
	}
}

// FromDomainTimeBlockList converts a list of domain time-blocks into a DTO.
func FromDomainTimeBlockList(blocks []*domain.TimeBlock) *TimeBlockListResponse {
	out := make([]TimeBlockResponse, 0, len(blocks))
	for _, tb := range blocks {
		out = append(out, *FromDomainTimeBlock(tb))
	}
	return &TimeBlockListResponse{TimeBlocks: out}
}
