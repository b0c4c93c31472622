package order

import (
	"fmt"

	"freightdesk/internal/pkg/errs"
)

// Priority represents the handling urgency of an order.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// Low priority orders tolerate delays.
	Low

	// Normal is the default handling priority.
	Normal

	// High priority orders are expedited where possible.
	High

	// Urgent orders jump every queue.
	Urgent
)

func priorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "Unknown",
		Low:             "Low",
		Normal:          "Normal",
		High:            "High",
		Urgent:          "Urgent",
	}
}

// priorityRank fixes the ordering used for priority sorting in projections:
// Low < Normal < High < Urgent, not alphabetical.
func priorityRank() map[Priority]int {
	return map[Priority]int{
		Low:    0,
		Normal: 1,
		High:   2,
		Urgent: 3,
	}
}

// PriorityFromString parses a priority from its wire representation.
// Returns a validation error for unrecognized priorities.
func PriorityFromString(s string) (Priority, error) {
	for priority := range priorityRank() {
		if priorityStrings()[priority] == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority",
		fmt.Errorf("%q is not a recognized priority", s))
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if _, ok := priorityRank()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the human-readable name of the priority.
// This method implements the fmt.Stringer interface.
func (p Priority) String() string {
	if str, ok := priorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Rank returns the fixed sort position of the priority.
// Invalid priorities sort after every valid one.
func (p Priority) Rank() int {
	if rank, ok := priorityRank()[p]; ok {
		return rank
	}
	return len(priorityRank())
}
