package models

import "time"

// DailyCapacity is one day's processing budget. Backlog hours and new-work
// hours are separate pools; neither borrows from the other.
type DailyCapacity struct {
	Date                  time.Time `json:"date" yaml:"date"`
	BacklogCapacityHours  float64   `json:"backlog_capacity_hours" yaml:"backlog_capacity_hours" validate:"gte=0"`
	NewWorkCapacityHours  float64   `json:"new_work_capacity_hours" yaml:"new_work_capacity_hours" validate:"gte=0"`
	ProductivityModifier  float64   `json:"productivity_modifier" yaml:"productivity_modifier" validate:"gte=0"`
	MaxItemsPerDay        int       `json:"max_items_per_day" yaml:"max_items_per_day" validate:"gte=0"`
	MaxComplexItemsPerDay int       `json:"max_complex_items_per_day" yaml:"max_complex_items_per_day" validate:"gte=0"`
}

// TotalHours returns the combined raw capacity before the productivity
// modifier is applied.
func (d DailyCapacity) TotalHours() float64 {
	return d.BacklogCapacityHours + d.NewWorkCapacityHours
}

// DailyDemand is one day's inbound work, bucketed by priority and by
// complexity. The two bucket sets need not agree on totals; complexity is
// assigned as closely as integer counts allow.
type DailyDemand struct {
	Date                 time.Time          `json:"date" yaml:"date"`
	NewItemsByPriority   map[Priority]int   `json:"new_items_by_priority" yaml:"new_items_by_priority"`
	NewItemsByComplexity map[Complexity]int `json:"new_items_by_complexity" yaml:"new_items_by_complexity"`
}

// TotalNewItems is the day's item count: the sum across priority buckets.
func (d DailyDemand) TotalNewItems() int {
	total := 0
	for _, n := range d.NewItemsByPriority {
		total += n
	}
	return total
}
