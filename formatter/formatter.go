package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"backlog-sim/models"
)

// dayRow is one day's snapshot flattened for rendering. All three formats
// render from the same prepared rows.
type dayRow struct {
	Date            string  `json:"date"`
	Backlog         int     `json:"backlog"`
	Created         int     `json:"created"`
	Resolved        int     `json:"resolved"`
	Rejected        int     `json:"rejected"`
	Outsourced      int     `json:"outsourced"`
	AgedUp          int     `json:"aged_up"`
	Breaches        int     `json:"new_sla_breaches"`
	Compliance      float64 `json:"sla_compliance_rate"`
	Utilization     float64 `json:"capacity_utilization"`
	RemainingHours  float64 `json:"remaining_effort_hours"`
	OldestAgeDays   int     `json:"oldest_age_days"`
	FinancialImpact float64 `json:"financial_impact"`
	RecoveryDays    float64 `json:"estimated_recovery_days"`
}

func prepareRows(resp *models.BacklogPropagationResponse) []dayRow {
	rows := make([]dayRow, len(resp.DailySnapshots))
	for i, snap := range resp.DailySnapshots {
		rows[i] = dayRow{
			Date:            snap.Date.Format("2006-01-02"),
			Backlog:         snap.TotalItems,
			Created:         snap.ItemsCreated,
			Resolved:        snap.ItemsResolved,
			Rejected:        snap.ItemsRejected,
			Outsourced:      snap.ItemsOutsourced,
			AgedUp:          snap.ItemsAgedUp,
			Breaches:        snap.NewSLABreaches,
			Compliance:      snap.SLAComplianceRate,
			Utilization:     snap.CapacityUtilization,
			RemainingHours:  snap.TotalEffortHoursRemaining,
			OldestAgeDays:   snap.OldestItemAgeDays,
			FinancialImpact: snap.FinancialImpact,
			RecoveryDays:    snap.EstimatedRecoveryDays,
		}
	}
	return rows
}

// FormatText returns the human-readable run report.
func FormatText(resp *models.BacklogPropagationResponse) string {
	var sb strings.Builder
	stats := resp.SummaryStats

	sb.WriteString(fmt.Sprintf("Backlog propagation: %s, %s to %s (seed %d)\n\n",
		resp.OrganizationID,
		resp.StartDate.Format("2006-01-02"), resp.EndDate.Format("2006-01-02"),
		resp.SeedUsed))

	for _, row := range prepareRows(resp) {
		sb.WriteString(fmt.Sprintf("%s  backlog=%-4d created=%-3d resolved=%-3d aged=%-3d util=%5.1f%% sla=%5.1f%%\n",
			row.Date, row.Backlog, row.Created, row.Resolved, row.AgedUp,
			row.Utilization*100, row.Compliance*100))
		if row.Rejected > 0 || row.Outsourced > 0 {
			sb.WriteString(fmt.Sprintf("  ⚠️  OVERFLOW: rejected=%d outsourced=%d\n", row.Rejected, row.Outsourced))
		}
		if row.Breaches > 0 {
			sb.WriteString(fmt.Sprintf("  ⚠️  SLA: %d new breach(es), cumulative impact %.2f\n", row.Breaches, row.FinancialImpact))
		}
	}

	sb.WriteString(fmt.Sprintf("\nFinal backlog: %d (net %+d, peak %d on %s)\n",
		stats.FinalBacklogSize, stats.NetBacklogChange, stats.PeakBacklogSize,
		stats.PeakBacklogDate.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Resolved %d of %d created; %d rejected, %d outsourced, %d aged up\n",
		stats.TotalItemsResolved, stats.TotalItemsCreated,
		stats.TotalItemsRejected, stats.TotalItemsOutsourced, stats.TotalItemsAged))
	sb.WriteString(fmt.Sprintf("SLA: %d breaches, avg compliance %.1f%%, financial impact %.2f, satisfaction %.1f\n",
		stats.TotalSLABreaches, stats.AverageSLAComplianceRate*100,
		stats.TotalFinancialImpact, stats.FinalCustomerSatisfaction))
	sb.WriteString(fmt.Sprintf("Estimated recovery: %.1f days at current capacity\n", stats.EstimatedRecoveryDays))

	for _, e := range resp.InputErrors {
		sb.WriteString(fmt.Sprintf("  • input filtered: %s\n", e))
	}
	return sb.String()
}

// FormatJSON returns the full response as indented JSON.
func FormatJSON(resp *models.BacklogPropagationResponse) string {
	jsonBytes, _ := json.MarshalIndent(resp, "", "  ")
	return string(jsonBytes)
}

// FormatCSV returns one row per simulated day.
func FormatCSV(resp *models.BacklogPropagationResponse) string {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	writer.Write([]string{
		"Date", "Backlog", "Created", "Resolved", "Rejected", "Outsourced",
		"Aged Up", "New SLA Breaches", "SLA Compliance", "Capacity Utilization",
		"Remaining Effort Hours", "Oldest Age Days", "Financial Impact", "Recovery Days",
	})
	for _, row := range prepareRows(resp) {
		writer.Write([]string{
			row.Date,
			fmt.Sprintf("%d", row.Backlog),
			fmt.Sprintf("%d", row.Created),
			fmt.Sprintf("%d", row.Resolved),
			fmt.Sprintf("%d", row.Rejected),
			fmt.Sprintf("%d", row.Outsourced),
			fmt.Sprintf("%d", row.AgedUp),
			fmt.Sprintf("%d", row.Breaches),
			fmt.Sprintf("%.4f", row.Compliance),
			fmt.Sprintf("%.4f", row.Utilization),
			fmt.Sprintf("%.2f", row.RemainingHours),
			fmt.Sprintf("%d", row.OldestAgeDays),
			fmt.Sprintf("%.2f", row.FinancialImpact),
			fmt.Sprintf("%.2f", row.RecoveryDays),
		})
	}
	writer.Flush()
	return sb.String()
}

// FormatScenariosText renders the batch comparison, scenarios in a stable
// name order, recommendations last.
func FormatScenariosText(resp *models.QuickBacklogScenariosResponse) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Quick scenarios: %s, %d days from %s (seed %d)\n\n",
		resp.OrganizationID, resp.Days, resp.StartDate.Format("2006-01-02"), resp.SeedUsed))

	names := make([]string, 0, len(resp.ScenarioSummaries))
	for name := range resp.ScenarioSummaries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := resp.ScenarioSummaries[name]
		sb.WriteString(fmt.Sprintf("%-18s final=%-4d net=%+-4d resolved=%-4d rejected=%-3d sla=%5.1f%% impact=%10.2f recovery=%.1fd\n",
			name, s.FinalBacklogCount, s.NetBacklogChange, s.ItemsResolved,
			s.ItemsRejected, s.SLAComplianceRate*100, s.TotalFinancialImpact, s.EstimatedRecoveryDays))
	}

	sb.WriteString("\nRecommendations:\n")
	for _, rec := range resp.Recommendations {
		sb.WriteString(fmt.Sprintf("  • %s\n", rec))
	}
	return sb.String()
}

// FormatScenariosJSON returns the batch response as indented JSON.
func FormatScenariosJSON(resp *models.QuickBacklogScenariosResponse) string {
	jsonBytes, _ := json.MarshalIndent(resp, "", "  ")
	return string(jsonBytes)
}

// FormatScenariosCSV returns one row per scenario.
func FormatScenariosCSV(resp *models.QuickBacklogScenariosResponse) string {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	writer.Write([]string{
		"Scenario", "Final Backlog", "Net Change", "Resolved", "Rejected",
		"SLA Compliance", "Financial Impact", "Recovery Days",
	})

	names := make([]string, 0, len(resp.ScenarioSummaries))
	for name := range resp.ScenarioSummaries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := resp.ScenarioSummaries[name]
		writer.Write([]string{
			name,
			fmt.Sprintf("%d", s.FinalBacklogCount),
			fmt.Sprintf("%d", s.NetBacklogChange),
			fmt.Sprintf("%d", s.ItemsResolved),
			fmt.Sprintf("%d", s.ItemsRejected),
			fmt.Sprintf("%.4f", s.SLAComplianceRate),
			fmt.Sprintf("%.2f", s.TotalFinancialImpact),
			fmt.Sprintf("%.2f", s.EstimatedRecoveryDays),
		})
	}
	writer.Flush()
	return sb.String()
}
