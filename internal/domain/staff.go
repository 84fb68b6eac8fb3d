package domain

import (
	"fmt"
	"strings"
)

// StaffType is the specialty of a staff member. Every staff member has
// exactly one specialty from this closed set.
type StaffType string

const (
	StaffTypePhotographer StaffType = "PHOTOGRAPHER"
	StaffTypeEditor       StaffType = "EDITOR"
)

// ParseStaffType converts a raw string to a StaffType.
func ParseStaffType(raw string) (StaffType, error) {
	switch StaffType(raw) {
	case StaffTypePhotographer:
		return StaffTypePhotographer, nil
	case StaffTypeEditor:
		return StaffTypeEditor, nil
	default:
		return "", fmt.Errorf("unknown staff type %q", raw)
	}
}

// Staff represents a staff member owning one lane per day on the timeline.
// Staff records are immutable for the duration of a scheduling session.
type Staff struct {
	ID        string
	Name      string
	StaffType StaffType
	Color     *string // optional accent color for the lane header
	Active    bool
}

// StaffIndex is a lookup of staff by id built once per computation pass.
type StaffIndex map[string]*Staff

// BuildStaffIndex builds a StaffIndex from a staff list.
func BuildStaffIndex(staff []*Staff) StaffIndex {
	idx := make(StaffIndex, len(staff))
	for _, s := range staff {
		idx[s.ID] = s
	}
	return idx
}

// containsFold reports whether substr occurs in s, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
