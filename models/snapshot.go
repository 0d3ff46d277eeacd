package models

import "time"

// AgeBuckets are the reporting buckets for item age, in days in backlog.
var AgeBuckets = []string{"0-1", "2-3", "4-7", "8-14", "15+"}

// AgeBucketFor maps a days-in-backlog count to its reporting bucket.
func AgeBucketFor(days int) string {
	switch {
	case days <= 1:
		return "0-1"
	case days <= 3:
		return "2-3"
	case days <= 7:
		return "4-7"
	case days <= 14:
		return "8-14"
	default:
		return "15+"
	}
}

// BacklogSnapshot is the aggregated, read-only state of the backlog at the
// end of one simulated day. Snapshots are never mutated after creation.
type BacklogSnapshot struct {
	Date       time.Time `json:"date" yaml:"date"`
	DayIndex   int       `json:"day_index" yaml:"day_index"`
	TotalItems int       `json:"total_items" yaml:"total_items"`

	ItemsByPriority  map[Priority]int `json:"items_by_priority" yaml:"items_by_priority"`
	ItemsByAgeBucket map[string]int   `json:"items_by_age_bucket" yaml:"items_by_age_bucket"`

	TotalEffortHoursRemaining float64 `json:"total_effort_hours_remaining" yaml:"total_effort_hours_remaining"`
	AverageAgeDays            float64 `json:"average_age_days" yaml:"average_age_days"`
	OldestItemAgeDays         int     `json:"oldest_item_age_days" yaml:"oldest_item_age_days"`

	ItemsWithSLA      int     `json:"items_with_sla" yaml:"items_with_sla"`
	SLACompliantItems int     `json:"sla_compliant_items" yaml:"sla_compliant_items"`
	SLAComplianceRate float64 `json:"sla_compliance_rate" yaml:"sla_compliance_rate"`
	AtRiskItems       int     `json:"at_risk_items" yaml:"at_risk_items"`
	BreachedItems     int     `json:"breached_items" yaml:"breached_items"`
	NewSLABreaches    int     `json:"new_sla_breaches" yaml:"new_sla_breaches"`

	ProcessedHours      float64 `json:"processed_hours" yaml:"processed_hours"`
	TotalCapacityHours  float64 `json:"total_capacity_hours" yaml:"total_capacity_hours"`
	CapacityUtilization float64 `json:"capacity_utilization" yaml:"capacity_utilization"`

	ItemsCreated    int `json:"items_created" yaml:"items_created"`
	ItemsResolved   int `json:"items_resolved" yaml:"items_resolved"`
	ItemsPropagated int `json:"items_propagated" yaml:"items_propagated"`
	ItemsAgedUp     int `json:"items_aged_up" yaml:"items_aged_up"`
	ItemsDeferred   int `json:"items_deferred" yaml:"items_deferred"`
	ItemsRejected   int `json:"items_rejected" yaml:"items_rejected"`
	ItemsOutsourced int `json:"items_outsourced" yaml:"items_outsourced"`
	ItemsDecayed    int `json:"items_decayed" yaml:"items_decayed"`

	FinancialImpact           float64 `json:"financial_impact" yaml:"financial_impact"`
	CustomerSatisfactionScore float64 `json:"customer_satisfaction_score" yaml:"customer_satisfaction_score"`
	EstimatedRecoveryDays     float64 `json:"estimated_recovery_days" yaml:"estimated_recovery_days"`
}

// BacklogSummaryStats reduces the full snapshot sequence to run totals.
type BacklogSummaryStats struct {
	TotalItemsCreated    int `json:"total_items_created" yaml:"total_items_created"`
	TotalItemsResolved   int `json:"total_items_resolved" yaml:"total_items_resolved"`
	TotalItemsRejected   int `json:"total_items_rejected" yaml:"total_items_rejected"`
	TotalItemsOutsourced int `json:"total_items_outsourced" yaml:"total_items_outsourced"`
	TotalItemsAged       int `json:"total_items_aged" yaml:"total_items_aged"`
	TotalSLABreaches     int `json:"total_sla_breaches" yaml:"total_sla_breaches"`

	InitialBacklogSize int `json:"initial_backlog_size" yaml:"initial_backlog_size"`
	FinalBacklogSize   int `json:"final_backlog_size" yaml:"final_backlog_size"`
	NetBacklogChange   int `json:"net_backlog_change" yaml:"net_backlog_change"`

	PeakBacklogSize     int       `json:"peak_backlog_size" yaml:"peak_backlog_size"`
	PeakBacklogDate     time.Time `json:"peak_backlog_date" yaml:"peak_backlog_date"`
	AverageDailyBacklog float64   `json:"average_daily_backlog" yaml:"average_daily_backlog"`

	AverageSLAComplianceRate   float64 `json:"average_sla_compliance_rate" yaml:"average_sla_compliance_rate"`
	AverageCapacityUtilization float64 `json:"average_capacity_utilization" yaml:"average_capacity_utilization"`

	TotalFinancialImpact      float64 `json:"total_financial_impact" yaml:"total_financial_impact"`
	FinalCustomerSatisfaction float64 `json:"final_customer_satisfaction" yaml:"final_customer_satisfaction"`
	EstimatedRecoveryDays     float64 `json:"estimated_recovery_days" yaml:"estimated_recovery_days"`
}
