package domain

import "fmt"

// Priority orders tasks in every view. The zero value is PriorityNone.
type Priority int

const (
	PriorityNone   Priority = iota // no priority given
	PriorityHigh                   // HI
	PriorityMedium                 // MD
	PriorityLow                    // LO
)

// priorityRank is the sort position of each priority: HI, MD, LO, then none.
var priorityRank = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
	PriorityNone:   3,
}

// String returns the label used in rendered lines. PriorityNone has no label.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "HI"
	case PriorityMedium:
		return "MD"
	case PriorityLow:
		return "LO"
	default:
		return ""
	}
}

// ParsePriority converts a label into a Priority.
// The empty string maps to PriorityNone.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "HI":
		return PriorityHigh, nil
	case "MD":
		return PriorityMedium, nil
	case "LO":
		return PriorityLow, nil
	case "":
		return PriorityNone, nil
	default:
		return PriorityNone, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
}

// Compare returns a negative number when p sorts before o, zero when equal.
func (p Priority) Compare(o Priority) int {
	return priorityRank[p] - priorityRank[o]
}
