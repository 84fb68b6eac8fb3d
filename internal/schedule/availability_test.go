package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotodesk/FD-ScheduleService/internal/domain"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 10, 13, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"full containment", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"partial overlap", at(9, 0), at(10, 30), at(10, 0), at(11, 0), true},
		{"identical intervals", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"disjoint", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
		{"touching boundary is not overlap", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"touching boundary reversed", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestIsAvailable_AgainstBookings(t *testing.T) {
	// Booking A: 09:00-11:00 for staff S1.
	existing := []*domain.Booking{
		{ID: "bkg-a", StaffID: "stf-1", Start: at(9, 0), End: at(11, 0), Status: domain.StatusConfirmed},
	}

	// Proposed 10:00-10:30 collides.
	assert.False(t, IsAvailable("stf-1", at(10, 0), at(10, 30), nil, existing))

	// Proposed 11:00-11:30 touches the boundary and is free.
	assert.True(t, IsAvailable("stf-1", at(11, 0), at(11, 30), nil, existing))

	// Another staff member is unaffected.
	assert.True(t, IsAvailable("stf-2", at(10, 0), at(10, 30), nil, existing))
}

func TestIsAvailable_AgainstTimeBlocks(t *testing.T) {
	blocks := []*domain.TimeBlock{
		{ID: "blk-busy", StaffID: "stf-1", Start: at(13, 0), End: at(15, 0), Type: domain.TimeBlockBusy},
		{ID: "blk-info", StaffID: "stf-1", Start: at(8, 0), End: at(9, 0), Type: domain.TimeBlockAvailable},
	}

	assert.False(t, IsAvailable("stf-1", at(14, 0), at(14, 30), blocks, nil))

	// Non-blocking blocks are informational and never conflict.
	assert.True(t, IsAvailable("stf-1", at(8, 0), at(8, 30), blocks, nil))

	// A block owned by someone else does not apply.
	assert.True(t, IsAvailable("stf-2", at(14, 0), at(14, 30), blocks, nil))
}

func TestFirstConflict_ReportsBlockBeforeBooking(t *testing.T) {
	blocks := []*domain.TimeBlock{
		{ID: "blk-1", StaffID: "stf-1", Start: at(9, 30), End: at(10, 30), Type: domain.TimeBlockBusy},
	}
	existing := []*domain.Booking{
		{ID: "bkg-1", StaffID: "stf-1", Start: at(10, 0), End: at(11, 0), Status: domain.StatusScheduled},
	}

	c, found := FirstConflict("stf-1", at(10, 0), at(10, 30), blocks, existing)
	require.True(t, found)
	assert.Equal(t, ConflictTimeBlock, c.Kind)
	assert.Equal(t, "blk-1", c.ID)

	c, found = FirstConflict("stf-1", at(10, 45), at(11, 0), nil, existing)
	require.True(t, found)
	assert.Equal(t, ConflictBooking, c.Kind)
	assert.Equal(t, "bkg-1", c.ID)

	_, found = FirstConflict("stf-1", at(12, 0), at(13, 0), blocks, existing)
	assert.False(t, found)
}

func TestValidateInterval(t *testing.T) {
	assert.NoError(t, ValidateInterval(at(9, 0), at(9, 1)))
	assert.ErrorIs(t, ValidateInterval(at(9, 0), at(9, 0)), ErrInvalidInterval)
	assert.ErrorIs(t, ValidateInterval(at(10, 0), at(9, 0)), ErrInvalidInterval)
}
