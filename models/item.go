package models

import "time"

// BacklogItem represents one unit of unresolved work tracked across
// simulated days. It is shared across packages: the parser and the demand
// ingestor create items, the engine mutates them day by day, and the final
// set is echoed on the response.
type BacklogItem struct {
	ID                     string      `json:"id" yaml:"id"`
	OriginalPriority       Priority    `json:"original_priority" yaml:"original_priority"`
	Priority               Priority    `json:"priority" yaml:"priority"`
	Complexity             Complexity  `json:"complexity" yaml:"complexity"`
	EstimatedEffortMinutes int         `json:"estimated_effort_minutes" yaml:"estimated_effort_minutes"`
	CreatedDate            time.Time   `json:"created_date" yaml:"created_date"`
	DueDate                *time.Time  `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	CompletedDate          *time.Time  `json:"completed_date,omitempty" yaml:"completed_date,omitempty"`
	Status                 ItemStatus  `json:"status" yaml:"status"`
	SLABreached            bool        `json:"sla_breached" yaml:"sla_breached"`
	DaysInBacklog          int         `json:"days_in_backlog" yaml:"days_in_backlog"`
	PropagationCount       int         `json:"propagation_count" yaml:"propagation_count"`
	AgingDate              *time.Time  `json:"aging_date,omitempty" yaml:"aging_date,omitempty"`
}

// Selectable reports whether the item is eligible for processing today.
// Escalated items re-enter the queue with their raised priority.
func (b *BacklogItem) Selectable() bool {
	switch b.Status {
	case StatusPending, StatusDeferred, StatusEscalated:
		return true
	case StatusInProgress, StatusCompleted, StatusRejected, StatusOutsourced:
		return false
	default:
		return false
	}
}

// Clone returns a deep copy of the item. Scenario runs mutate independent
// copies of the same initial backlog.
func (b *BacklogItem) Clone() *BacklogItem {
	c := *b
	if b.DueDate != nil {
		d := *b.DueDate
		c.DueDate = &d
	}
	if b.CompletedDate != nil {
		d := *b.CompletedDate
		c.CompletedDate = &d
	}
	if b.AgingDate != nil {
		d := *b.AgingDate
		c.AgingDate = &d
	}
	return &c
}
