package engine

import (
	"math/rand"
	"time"

	"backlog-sim/models"

	"github.com/google/uuid"
)

// newItemID draws a UUID from the run RNG rather than crypto/rand so that
// item identity, and with it every ordering tie-break, is reproducible for
// a given seed.
func newItemID(rng *rand.Rand) string {
	return uuid.Must(uuid.NewRandomFromReader(rng)).String()
}

// ingestDemand materializes one day's demand buckets into concrete backlog
// items. Items are created priority bucket by priority bucket, highest
// first. Complexities are spread across the new items as closely as the
// day's complexity counts allow: the assignment slice repeats each
// complexity bucket in a fixed order (hardest first), pads with standard
// when the buckets run short, and is then shuffled once through the run RNG
// so uneven splits do not always favor the same priority bucket.
func ingestDemand(demand models.DailyDemand, profile models.BacklogPropagationProfile, slaEnabled bool, day time.Time, rng *rand.Rand) []*models.BacklogItem {
	total := demand.TotalNewItems()
	if total == 0 {
		return nil
	}

	complexities := make([]models.Complexity, 0, total)
	for _, c := range models.Complexities {
		for i := 0; i < demand.NewItemsByComplexity[c] && len(complexities) < total; i++ {
			complexities = append(complexities, c)
		}
	}
	for len(complexities) < total {
		complexities = append(complexities, models.ComplexityStandard)
	}
	rng.Shuffle(len(complexities), func(i, j int) {
		complexities[i], complexities[j] = complexities[j], complexities[i]
	})

	var due *time.Time
	if slaEnabled {
		d := day.AddDate(0, 0, profile.SLABreachThresholdDays)
		due = &d
	}

	items := make([]*models.BacklogItem, 0, total)
	next := 0
	for i := len(models.Priorities) - 1; i >= 0; i-- {
		p := models.Priorities[i]
		for n := 0; n < demand.NewItemsByPriority[p]; n++ {
			item := &models.BacklogItem{
				ID:               newItemID(rng),
				OriginalPriority: p,
				Priority:         p,
				Complexity:       complexities[next],
				CreatedDate:      day,
				Status:           models.StatusPending,
			}
			item.EstimatedEffortMinutes = item.Complexity.TypicalEffortMinutes()
			if due != nil {
				d := *due
				item.DueDate = &d
			}
			items = append(items, item)
			next++
		}
	}
	return items
}
