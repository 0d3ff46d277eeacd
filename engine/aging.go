package engine

import (
	"time"

	"backlog-sim/models"
)

// applyAging escalates items that have sat in the backlog past the aging
// threshold. Runs after selection, so it sees each item's age as of the
// start of the day. By default an item escalates at most once; with
// AgingRepeats set it escalates again at every further threshold multiple
// while still below critical. Critical items never move. Returns the number
// of items escalated today.
func applyAging(backlog []*models.BacklogItem, profile models.BacklogPropagationProfile, day time.Time) int {
	if !profile.AgingEnabled || profile.AgingThresholdDays <= 0 {
		return 0
	}

	aged := 0
	for _, item := range backlog {
		if item.Status.Terminal() || item.Priority == models.PriorityCritical {
			continue
		}
		if item.DaysInBacklog < profile.AgingThresholdDays {
			continue
		}
		if item.AgingDate != nil {
			if !profile.AgingRepeats {
				continue
			}
			if item.DaysInBacklog%profile.AgingThresholdDays != 0 {
				continue
			}
		}
		item.Priority = item.Priority.Escalate()
		if item.AgingDate == nil {
			d := day
			item.AgingDate = &d
		}
		aged++
	}
	return aged
}
