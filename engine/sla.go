package engine

import (
	"time"

	"backlog-sim/models"
)

// slaResult is one day's SLA accounting.
type slaResult struct {
	newBreaches       int
	penalty           float64
	satisfactionDelta float64
}

// applySLA marks overdue items breached and accrues financial impact. An
// item accrues sla_penalty_per_day scaled by how many days overdue it is,
// every day it remains unresolved past its due date. The satisfaction
// impact applies once, on the first breach; sla_breached never reverts.
func applySLA(backlog []*models.BacklogItem, profile models.BacklogPropagationProfile, day time.Time) slaResult {
	var res slaResult
	for _, item := range backlog {
		if item.Status.Terminal() || item.DueDate == nil {
			continue
		}
		if !day.After(*item.DueDate) {
			continue
		}
		daysOverdue := int(day.Sub(*item.DueDate).Hours() / 24)
		if daysOverdue < 1 {
			daysOverdue = 1
		}
		res.penalty += profile.SLAPenaltyPerDay * float64(daysOverdue)
		if !item.SLABreached {
			item.SLABreached = true
			res.newBreaches++
			res.satisfactionDelta -= profile.CustomerSatisfactionImpact
		}
	}
	return res
}

// atRisk reports whether an unresolved item is within the breach threshold
// of its due date without having breached yet. Reporting only; carries no
// cost.
func atRisk(item *models.BacklogItem, profile models.BacklogPropagationProfile, day time.Time) bool {
	if item.DueDate == nil || item.SLABreached || item.Status.Terminal() {
		return false
	}
	if day.After(*item.DueDate) {
		return false
	}
	window := time.Duration(profile.SLABreachThresholdDays) * 24 * time.Hour
	return !item.DueDate.After(day.Add(window))
}
