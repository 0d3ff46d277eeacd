package engine

import (
	"sort"
	"time"

	"backlog-sim/models"
)

// overflowResult counts how the configured strategy disposed of the
// overflow set.
type overflowResult struct {
	rejected   int
	deferred   int
	escalated  int
	outsourced int
}

// applyOverflow enforces the backlog capacity ceiling. When the count of
// non-terminal items exceeds max_backlog_capacity, the overflow set is the
// lowest-priority, newest-created items; oldest and highest-priority items
// are protected. The strategy decides their fate: reject and outsource are
// terminal, defer pushes the due date forward one day and keeps the item,
// escalate raises priority and keeps the item pending.
func applyOverflow(backlog []*models.BacklogItem, profile models.BacklogPropagationProfile, day time.Time) overflowResult {
	var res overflowResult
	if profile.MaxBacklogCapacity == nil {
		return res
	}
	ceiling := *profile.MaxBacklogCapacity

	active := make([]*models.BacklogItem, 0, len(backlog))
	for _, item := range backlog {
		if !item.Status.Terminal() {
			active = append(active, item)
		}
	}
	excess := len(active) - ceiling
	if excess <= 0 {
		return res
	}

	// Overflow candidates first: lowest priority, then newest created.
	sort.Slice(active, func(i, j int) bool {
		a, b := active[i], active[j]
		if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
			return ra < rb
		}
		if !a.CreatedDate.Equal(b.CreatedDate) {
			return a.CreatedDate.After(b.CreatedDate)
		}
		return a.ID > b.ID
	})

	for _, item := range active[:excess] {
		switch profile.OverflowStrategy {
		case models.OverflowReject:
			item.Status = models.StatusRejected
			res.rejected++
		case models.OverflowDefer:
			item.Status = models.StatusDeferred
			if item.DueDate != nil {
				d := item.DueDate.AddDate(0, 0, 1)
				item.DueDate = &d
			}
			res.deferred++
		case models.OverflowEscalate:
			// Priority goes up one level; aging bookkeeping is untouched.
			item.Priority = item.Priority.Escalate()
			item.Status = models.StatusPending
			res.escalated++
		case models.OverflowOutsource:
			item.Status = models.StatusOutsourced
			res.outsourced++
		}
	}
	return res
}
