package engine

import "backlog-sim/models"

// summarize reduces the full snapshot sequence into run totals and
// averages. Initial size is the backlog count before day one.
func summarize(snapshots []models.BacklogSnapshot, initialSize, finalSize int) models.BacklogSummaryStats {
	stats := models.BacklogSummaryStats{
		InitialBacklogSize: initialSize,
		FinalBacklogSize:   finalSize,
		NetBacklogChange:   finalSize - initialSize,
	}
	if len(snapshots) == 0 {
		return stats
	}

	var backlogSum, complianceSum, utilizationSum float64
	for _, snap := range snapshots {
		stats.TotalItemsCreated += snap.ItemsCreated
		stats.TotalItemsResolved += snap.ItemsResolved
		stats.TotalItemsRejected += snap.ItemsRejected
		stats.TotalItemsOutsourced += snap.ItemsOutsourced
		stats.TotalItemsAged += snap.ItemsAgedUp
		stats.TotalSLABreaches += snap.NewSLABreaches

		backlogSum += float64(snap.TotalItems)
		complianceSum += snap.SLAComplianceRate
		utilizationSum += snap.CapacityUtilization

		if snap.TotalItems > stats.PeakBacklogSize {
			stats.PeakBacklogSize = snap.TotalItems
			stats.PeakBacklogDate = snap.Date
		}
	}

	last := snapshots[len(snapshots)-1]
	stats.AverageDailyBacklog = backlogSum / float64(len(snapshots))
	stats.AverageSLAComplianceRate = complianceSum / float64(len(snapshots))
	stats.AverageCapacityUtilization = utilizationSum / float64(len(snapshots))
	stats.TotalFinancialImpact = last.FinancialImpact
	stats.FinalCustomerSatisfaction = last.CustomerSatisfactionScore
	stats.EstimatedRecoveryDays = last.EstimatedRecoveryDays
	return stats
}
