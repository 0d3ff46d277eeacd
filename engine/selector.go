package engine

import (
	"sort"
	"time"

	"backlog-sim/models"
)

// dayCaps tracks the day-wide item-count caps. Both pools (backlog and
// new-work) draw from the same counters.
type dayCaps struct {
	maxItems        int
	maxComplex      int
	selected        int
	complexSelected int
}

func (c *dayCaps) allows(item *models.BacklogItem) bool {
	if c.maxItems > 0 && c.selected >= c.maxItems {
		return false
	}
	if c.maxComplex > 0 && item.Complexity == models.ComplexityComplex && c.complexSelected >= c.maxComplex {
		return false
	}
	return true
}

func (c *dayCaps) note(item *models.BacklogItem) {
	c.selected++
	if item.Complexity == models.ComplexityComplex {
		c.complexSelected++
	}
}

// selectionResult reports what one pool's pass accomplished.
type selectionResult struct {
	completed   int
	minutesUsed float64
}

// sortForSelection orders eligible items: highest priority first, oldest
// first as tie-break, items closest to breach next (nil due dates last),
// then ID for a stable, reproducible order.
func sortForSelection(items []*models.BacklogItem) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
			return ra > rb
		}
		if a.DaysInBacklog != b.DaysInBacklog {
			return a.DaysInBacklog > b.DaysInBacklog
		}
		switch {
		case a.DueDate == nil && b.DueDate == nil:
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		case !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}
		return a.ID < b.ID
	})
}

// processPool walks the pool in selection order, consuming each item's
// estimated effort against the remaining minutes and the day's count caps.
// An item either fits whole and is completed today, or is skipped; there is
// no partial multi-day effort tracking. Time: O(n log n) for the sort plus a
// single O(n) allocation pass.
func processPool(pool []*models.BacklogItem, minutes float64, caps *dayCaps, day time.Time) selectionResult {
	if len(pool) == 0 {
		return selectionResult{}
	}
	sortForSelection(pool)

	var res selectionResult
	remaining := minutes
	for _, item := range pool {
		if !item.Selectable() {
			continue
		}
		effort := float64(item.EstimatedEffortMinutes)
		if effort > remaining || !caps.allows(item) {
			// Stays in the queue; the driver ages it at end of day.
			continue
		}
		item.Status = models.StatusCompleted
		d := day
		item.CompletedDate = &d
		remaining -= effort
		caps.note(item)
		res.completed++
		res.minutesUsed += effort
	}
	return res
}
