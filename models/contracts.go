package models

import "time"

// BacklogPropagationRequest is the full input contract for one simulation
// run. The daily input arrays must be exactly TotalDays long and
// calendar-aligned with StartDate..EndDate.
type BacklogPropagationRequest struct {
	OrganizationID      string                    `json:"organization_id" yaml:"organization_id" validate:"required"`
	StartDate           time.Time                 `json:"start_date" yaml:"start_date"`
	EndDate             time.Time                 `json:"end_date" yaml:"end_date"`
	Profile             BacklogPropagationProfile `json:"profile" yaml:"profile"`
	InitialBacklogItems []BacklogItem             `json:"initial_backlog_items" yaml:"initial_backlog_items"`
	DailyCapacities     []DailyCapacity           `json:"daily_capacities" yaml:"daily_capacities"`
	DailyDemands        []DailyDemand             `json:"daily_demands" yaml:"daily_demands"`
	Seed                *int64                    `json:"seed,omitempty" yaml:"seed,omitempty"`
	EnablePriorityAging bool                      `json:"enable_priority_aging" yaml:"enable_priority_aging"`
	EnableSLATracking   bool                      `json:"enable_sla_tracking" yaml:"enable_sla_tracking"`
}

// TotalDays is the inclusive length of the simulated date range.
func (r *BacklogPropagationRequest) TotalDays() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// BacklogPropagationResponse is the output contract for one run.
type BacklogPropagationResponse struct {
	OrganizationID    string              `json:"organization_id" yaml:"organization_id"`
	StartDate         time.Time           `json:"start_date" yaml:"start_date"`
	EndDate           time.Time           `json:"end_date" yaml:"end_date"`
	DailySnapshots    []BacklogSnapshot   `json:"daily_snapshots" yaml:"daily_snapshots"`
	FinalBacklogItems []BacklogItem       `json:"final_backlog_items" yaml:"final_backlog_items"`
	FinalBacklogCount int                 `json:"final_backlog_count" yaml:"final_backlog_count"`
	SummaryStats      BacklogSummaryStats `json:"summary_stats" yaml:"summary_stats"`

	// InputErrors reports initial backlog items that were filtered out as
	// malformed. The run proceeds with the remaining valid items.
	InputErrors []string `json:"input_errors,omitempty" yaml:"input_errors,omitempty"`

	ExecutionDurationMs int64 `json:"execution_duration_ms" yaml:"execution_duration_ms"`
	SeedUsed            int64 `json:"seed_used" yaml:"seed_used"`
}

// QuickBacklogScenariosRequest generates uniform daily capacity and demand
// from scalar parameters and runs the fixed named scenario set over them.
type QuickBacklogScenariosRequest struct {
	OrganizationID      string    `json:"organization_id" yaml:"organization_id" validate:"required"`
	StartDate           time.Time `json:"start_date" yaml:"start_date"`
	Days                int       `json:"days" yaml:"days" validate:"gt=0"`
	DailyDemandCount    int       `json:"daily_demand_count" yaml:"daily_demand_count" validate:"gte=0"`
	DailyCapacityHours  float64   `json:"daily_capacity_hours" yaml:"daily_capacity_hours" validate:"gte=0"`
	InitialBacklogCount int       `json:"initial_backlog_count" yaml:"initial_backlog_count" validate:"gte=0"`
	Seed                *int64    `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// ScenarioSummary condenses one scenario's full response into the handful of
// numbers the batch caller compares across scenarios.
type ScenarioSummary struct {
	ScenarioName          string  `json:"scenario_name" yaml:"scenario_name"`
	FinalBacklogCount     int     `json:"final_backlog_count" yaml:"final_backlog_count"`
	NetBacklogChange      int     `json:"net_backlog_change" yaml:"net_backlog_change"`
	ItemsResolved         int     `json:"items_resolved" yaml:"items_resolved"`
	ItemsRejected         int     `json:"items_rejected" yaml:"items_rejected"`
	SLAComplianceRate     float64 `json:"sla_compliance_rate" yaml:"sla_compliance_rate"`
	TotalFinancialImpact  float64 `json:"total_financial_impact" yaml:"total_financial_impact"`
	EstimatedRecoveryDays float64 `json:"estimated_recovery_days" yaml:"estimated_recovery_days"`
}

// QuickBacklogScenariosResponse maps scenario name to its summary, with
// derived free-text recommendations.
type QuickBacklogScenariosResponse struct {
	OrganizationID    string                     `json:"organization_id" yaml:"organization_id"`
	StartDate         time.Time                  `json:"start_date" yaml:"start_date"`
	Days              int                        `json:"days" yaml:"days"`
	ScenarioSummaries map[string]ScenarioSummary `json:"scenario_summaries" yaml:"scenario_summaries"`
	Recommendations   []string                   `json:"recommendations" yaml:"recommendations"`
	SeedUsed          int64                      `json:"seed_used" yaml:"seed_used"`
}
