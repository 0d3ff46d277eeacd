package engine

import (
	"time"

	"backlog-sim/models"
)

// criticalShareBoostThreshold is the critical-priority share of the backlog
// above which the recovery estimate is further divided by
// (1 + recovery_priority_boost). Tunable constant; not part of the contract.
const criticalShareBoostThreshold = 0.25

// dayTally collects the per-day flow counts fed into one snapshot.
type dayTally struct {
	created    int
	resolved   int
	propagated int
	agedUp     int
	deferred   int
	rejected   int
	outsourced int
	decayed    int
	breaches   int
}

// buildSnapshot aggregates one day's outcome over the surviving backlog.
// The snapshot is derived and read-only; nothing mutates it afterwards.
func buildSnapshot(day time.Time, dayIndex int, active []*models.BacklogItem, tally dayTally,
	budget dayBudget, processedMinutes float64, financialImpact, satisfaction float64,
	profile models.BacklogPropagationProfile) models.BacklogSnapshot {

	snap := models.BacklogSnapshot{
		Date:                      day,
		DayIndex:                  dayIndex,
		TotalItems:                len(active),
		ItemsByPriority:           make(map[models.Priority]int, len(models.Priorities)),
		ItemsByAgeBucket:          make(map[string]int, len(models.AgeBuckets)),
		ItemsCreated:              tally.created,
		ItemsResolved:             tally.resolved,
		ItemsPropagated:           tally.propagated,
		ItemsAgedUp:               tally.agedUp,
		ItemsDeferred:             tally.deferred,
		ItemsRejected:             tally.rejected,
		ItemsOutsourced:           tally.outsourced,
		ItemsDecayed:              tally.decayed,
		NewSLABreaches:            tally.breaches,
		FinancialImpact:           financialImpact,
		CustomerSatisfactionScore: satisfaction,
	}
	for _, p := range models.Priorities {
		snap.ItemsByPriority[p] = 0
	}
	for _, b := range models.AgeBuckets {
		snap.ItemsByAgeBucket[b] = 0
	}

	ageSum := 0
	critical := 0
	for _, item := range active {
		snap.ItemsByPriority[item.Priority]++
		snap.ItemsByAgeBucket[models.AgeBucketFor(item.DaysInBacklog)]++
		snap.TotalEffortHoursRemaining += float64(item.EstimatedEffortMinutes) / 60
		ageSum += item.DaysInBacklog
		if item.DaysInBacklog > snap.OldestItemAgeDays {
			snap.OldestItemAgeDays = item.DaysInBacklog
		}
		if item.Priority == models.PriorityCritical {
			critical++
		}
		if item.DueDate != nil {
			snap.ItemsWithSLA++
			if item.SLABreached {
				snap.BreachedItems++
			} else {
				snap.SLACompliantItems++
				if atRisk(item, profile, day) {
					snap.AtRiskItems++
				}
			}
		}
	}
	if len(active) > 0 {
		snap.AverageAgeDays = float64(ageSum) / float64(len(active))
	}
	if snap.ItemsWithSLA > 0 {
		snap.SLAComplianceRate = float64(snap.SLACompliantItems) / float64(snap.ItemsWithSLA)
	} else {
		snap.SLAComplianceRate = 1.0
	}

	snap.ProcessedHours = processedMinutes / 60
	snap.TotalCapacityHours = (budget.backlogMinutes + budget.newWorkMinutes) / 60
	if snap.TotalCapacityHours > 0 {
		snap.CapacityUtilization = snap.ProcessedHours / snap.TotalCapacityHours
	}

	snap.EstimatedRecoveryDays = recoveryEstimate(snap.TotalEffortHoursRemaining,
		snap.TotalCapacityHours, critical, len(active), profile)
	return snap
}

// recoveryEstimate projects how many days of capacity it would take to
// drain the remaining effort. Returns -1 when there is remaining work but
// no capacity to drain it with.
func recoveryEstimate(remainingHours, dailyCapacityHours float64, critical, total int,
	profile models.BacklogPropagationProfile) float64 {
	if remainingHours <= 0 {
		return 0
	}
	effective := dailyCapacityHours * profile.RecoveryRateMultiplier
	if effective <= 0 {
		return -1
	}
	days := remainingHours / effective
	if total > 0 && float64(critical)/float64(total) > criticalShareBoostThreshold {
		days /= 1 + profile.RecoveryPriorityBoost
	}
	return days
}
