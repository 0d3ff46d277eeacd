// Package metrics provides Prometheus observability metrics for the backlog
// simulator. Gauges describe the most recent run; histograms accumulate
// across runs in one process.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"backlog-sim/models"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// FinalBacklogSize is the backlog count at the end of the last run.
var FinalBacklogSize = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "backlog",
	Name:      "final_size",
	Help:      "Backlog item count at the end of the simulated window",
})

// PeakBacklogSize is the largest daily backlog observed in the last run.
var PeakBacklogSize = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "backlog",
	Name:      "peak_size",
	Help:      "Largest end-of-day backlog observed during the run",
})

// NetBacklogChange is final minus initial backlog size for the last run.
var NetBacklogChange = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "backlog",
	Name:      "net_change",
	Help:      "Final backlog size minus initial backlog size",
})

// ItemsResolvedTotal counts items resolved across runs in this process.
var ItemsResolvedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "backlog",
	Name:      "items_resolved_total",
	Help:      "Total items resolved across all simulation runs",
})

// ItemsRejectedTotal counts items rejected by overflow handling.
var ItemsRejectedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "backlog",
	Name:      "items_rejected_total",
	Help:      "Total items rejected by the overflow strategy across runs",
})

// SLABreachesTotal counts SLA breaches across runs.
var SLABreachesTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "backlog",
	Name:      "sla_breaches_total",
	Help:      "Total SLA breaches across all simulation runs",
})

// FinancialImpact is the accrued SLA penalty of the last run.
var FinancialImpact = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "backlog",
	Name:      "financial_impact",
	Help:      "Accrued SLA penalty cost of the last run",
})

// SLAComplianceRate is the average daily compliance of the last run.
var SLAComplianceRate = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "backlog",
	Name:      "sla_compliance_rate",
	Help:      "Average daily SLA compliance rate of the last run",
})

// RunDurationSeconds tracks engine execution time.
var RunDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "backlog",
	Name:      "run_duration_seconds",
	Help:      "Time taken by one simulation run",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
})

// DaysSimulated tracks run lengths.
var DaysSimulated = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "backlog",
	Name:      "days_simulated",
	Help:      "Number of days per simulation run",
	Buckets:   []float64{1, 7, 14, 30, 60, 90, 180, 365},
})

// RecordRun publishes one run's outcome. Call after engine.Run returns.
func RecordRun(resp *models.BacklogPropagationResponse) {
	stats := resp.SummaryStats
	FinalBacklogSize.Set(float64(stats.FinalBacklogSize))
	PeakBacklogSize.Set(float64(stats.PeakBacklogSize))
	NetBacklogChange.Set(float64(stats.NetBacklogChange))
	ItemsResolvedTotal.Add(float64(stats.TotalItemsResolved))
	ItemsRejectedTotal.Add(float64(stats.TotalItemsRejected))
	SLABreachesTotal.Add(float64(stats.TotalSLABreaches))
	FinancialImpact.Set(stats.TotalFinancialImpact)
	SLAComplianceRate.Set(stats.AverageSLAComplianceRate)
	RunDurationSeconds.Observe(float64(resp.ExecutionDurationMs) / 1000)
	DaysSimulated.Observe(float64(len(resp.DailySnapshots)))
}

// ResetRunGauges resets all per-run gauges before a new simulation run.
func ResetRunGauges() {
	FinalBacklogSize.Set(0)
	PeakBacklogSize.Set(0)
	NetBacklogChange.Set(0)
	FinancialImpact.Set(0)
	SLAComplianceRate.Set(0)
}
