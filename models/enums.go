package models

import (
	"fmt"

	apperrors "backlog-sim/errors"
)

// Priority is the urgency level of a backlog item. Aging and overflow
// escalation move items up one level at a time; critical is the ceiling.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Priorities lists all levels in ascending order of urgency.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Rank returns the ordinal position of the priority (low=0 .. critical=3),
// or -1 for an unrecognized value.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	case PriorityCritical:
		return 3
	default:
		return -1
	}
}

func (p Priority) Valid() bool {
	return p.Rank() >= 0
}

// Escalate returns the next level up. Critical stays critical.
func (p Priority) Escalate() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	case PriorityHigh, PriorityCritical:
		return PriorityCritical
	default:
		return p
	}
}

// ParsePriority converts a string into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownPriority, s)
	}
	return p, nil
}

// Complexity classifies how much work a backlog item represents. Each level
// carries a typical effort used when demand does not specify one.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityStandard Complexity = "standard"
	ComplexityComplex  Complexity = "complex"
)

// Complexities lists all levels, hardest first. The demand ingestor drains
// complexity buckets in this order.
var Complexities = []Complexity{ComplexityComplex, ComplexityStandard, ComplexitySimple}

// TypicalEffortMinutes returns the default effort for the complexity, or 0
// for an unrecognized value.
func (c Complexity) TypicalEffortMinutes() int {
	switch c {
	case ComplexitySimple:
		return 30
	case ComplexityStandard:
		return 60
	case ComplexityComplex:
		return 180
	default:
		return 0
	}
}

func (c Complexity) Valid() bool {
	switch c {
	case ComplexitySimple, ComplexityStandard, ComplexityComplex:
		return true
	default:
		return false
	}
}

// ParseComplexity converts a string into a Complexity.
func ParseComplexity(s string) (Complexity, error) {
	c := Complexity(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownComplexity, s)
	}
	return c, nil
}

// ItemStatus is the lifecycle state of a backlog item.
type ItemStatus string

const (
	StatusPending    ItemStatus = "pending"
	StatusInProgress ItemStatus = "in_progress"
	StatusDeferred   ItemStatus = "deferred"
	StatusEscalated  ItemStatus = "escalated"
	StatusCompleted  ItemStatus = "completed"
	StatusRejected   ItemStatus = "rejected"
	StatusOutsourced ItemStatus = "outsourced"
)

// Terminal reports whether the status removes the item from the active
// backlog for good.
func (s ItemStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusOutsourced:
		return true
	case StatusPending, StatusInProgress, StatusDeferred, StatusEscalated:
		return false
	default:
		return false
	}
}

func (s ItemStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDeferred, StatusEscalated,
		StatusCompleted, StatusRejected, StatusOutsourced:
		return true
	default:
		return false
	}
}

// ParseItemStatus converts a string into an ItemStatus.
func ParseItemStatus(s string) (ItemStatus, error) {
	st := ItemStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownStatus, s)
	}
	return st, nil
}

// OverflowStrategy decides what happens to excess items when the active
// backlog exceeds the configured capacity ceiling.
type OverflowStrategy string

const (
	OverflowReject    OverflowStrategy = "reject"
	OverflowDefer     OverflowStrategy = "defer"
	OverflowEscalate  OverflowStrategy = "escalate"
	OverflowOutsource OverflowStrategy = "outsource"
)

func (o OverflowStrategy) Valid() bool {
	switch o {
	case OverflowReject, OverflowDefer, OverflowEscalate, OverflowOutsource:
		return true
	default:
		return false
	}
}

// ParseOverflowStrategy converts a string into an OverflowStrategy.
func ParseOverflowStrategy(s string) (OverflowStrategy, error) {
	o := OverflowStrategy(s)
	if !o.Valid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownStrategy, s)
	}
	return o, nil
}
