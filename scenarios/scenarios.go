// Package scenarios runs the fixed named profile set over auto-generated
// uniform inputs, so capacity planning questions can be answered without
// hand-building a full request. Scenarios share nothing mutable: each gets
// its own backlog copy and its own RNG seed, and they run concurrently.
package scenarios

import (
	"context"
	"fmt"
	"math"
	"time"

	"backlog-sim/engine"
	apperrors "backlog-sim/errors"
	"backlog-sim/models"

	"golang.org/x/sync/errgroup"
)

// scenarioSpec fixes one named scenario: profile adjustments plus input
// scaling. seedOffset keeps per-scenario RNG streams disjoint but stable.
type scenarioSpec struct {
	name         string
	seedOffset   int64
	demandScale  float64
	productivity float64
	override     func(q *models.QuickBacklogScenariosRequest) models.ProfileOverride
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func strategyPtr(s models.OverflowStrategy) *models.OverflowStrategy {
	return &s
}

// scenarioSet is the fixed named set every quick-scenarios request runs.
var scenarioSet = []scenarioSpec{
	{
		name:         "baseline",
		seedOffset:   0,
		demandScale:  1.0,
		productivity: 1.0,
		override:     func(*models.QuickBacklogScenariosRequest) models.ProfileOverride { return models.ProfileOverride{} },
	},
	{
		name:         "optimistic",
		seedOffset:   1,
		demandScale:  1.0,
		productivity: 1.1,
		override: func(*models.QuickBacklogScenariosRequest) models.ProfileOverride {
			return models.ProfileOverride{RecoveryRateMultiplier: floatPtr(1.5)}
		},
	},
	{
		name:         "pessimistic",
		seedOffset:   2,
		demandScale:  1.25,
		productivity: 0.85,
		override: func(*models.QuickBacklogScenariosRequest) models.ProfileOverride {
			return models.ProfileOverride{RecoveryRateMultiplier: floatPtr(0.8)}
		},
	},
	{
		name:         "aggressive_aging",
		seedOffset:   3,
		demandScale:  1.0,
		productivity: 1.0,
		override: func(*models.QuickBacklogScenariosRequest) models.ProfileOverride {
			return models.ProfileOverride{
				AgingEnabled:       boolPtr(true),
				AgingThresholdDays: intPtr(2),
				AgingRepeats:       boolPtr(true),
			}
		},
	},
	{
		name:         "strict_overflow",
		seedOffset:   4,
		demandScale:  1.0,
		productivity: 1.0,
		override: func(q *models.QuickBacklogScenariosRequest) models.ProfileOverride {
			ceiling := int(math.Ceil(float64(q.InitialBacklogCount) * 1.5))
			if ceiling < 1 {
				ceiling = 1
			}
			return models.ProfileOverride{
				MaxBacklogCapacity: intPtr(ceiling),
				OverflowStrategy:   strategyPtr(models.OverflowReject),
			}
		},
	},
}

// Run executes the quick-scenario batch. Scenarios run concurrently; the
// batch is all-or-nothing, so cancellation or any scenario failure discards
// every partial result.
func Run(ctx context.Context, req *models.QuickBacklogScenariosRequest) (*models.QuickBacklogScenariosResponse, error) {
	if req.OrganizationID == "" {
		return nil, &apperrors.ConfigError{Field: "organization_id", Err: apperrors.ErrMissingField}
	}
	if req.Days <= 0 {
		return nil, &apperrors.ConfigError{Field: "days", Err: fmt.Errorf("must be positive, got %d", req.Days)}
	}
	if req.DailyDemandCount < 0 || req.InitialBacklogCount < 0 {
		return nil, &apperrors.ConfigError{Field: "daily_demand_count", Err: apperrors.ErrNegativeDemand}
	}
	if req.DailyCapacityHours < 0 {
		return nil, &apperrors.ConfigError{Field: "daily_capacity_hours", Err: apperrors.ErrNegativeCapacity}
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	results := make([]models.ScenarioSummary, len(scenarioSet))
	g, gCtx := errgroup.WithContext(ctx)
	for i, spec := range scenarioSet {
		i, spec := i, spec
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			run, err := buildRequest(req, spec, seed)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", spec.name, err)
			}
			resp, err := engine.Run(run)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", spec.name, err)
			}
			results[i] = summarize(spec.name, resp)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := make(map[string]models.ScenarioSummary, len(results))
	for _, s := range results {
		summaries[s.ScenarioName] = s
	}

	return &models.QuickBacklogScenariosResponse{
		OrganizationID:    req.OrganizationID,
		StartDate:         req.StartDate,
		Days:              req.Days,
		ScenarioSummaries: summaries,
		Recommendations:   recommend(req, summaries),
		SeedUsed:          seed,
	}, nil
}

// priorityMix is the uniform demand split used for generated inputs:
// mostly medium, a thin critical tail.
var priorityMix = []struct {
	priority models.Priority
	share    float64
}{
	{models.PriorityCritical, 0.10},
	{models.PriorityHigh, 0.20},
	{models.PriorityMedium, 0.40},
	{models.PriorityLow, 0.30},
}

// buildRequest expands the scalar quick parameters into a full propagation
// request for one scenario.
func buildRequest(q *models.QuickBacklogScenariosRequest, spec scenarioSpec, seed int64) (*models.BacklogPropagationRequest, error) {
	profile, err := engine.NewProfile(engine.DefaultProfile(), spec.override(q))
	if err != nil {
		return nil, err
	}

	start := time.Date(q.StartDate.Year(), q.StartDate.Month(), q.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, q.Days-1)

	demandCount := int(math.Round(float64(q.DailyDemandCount) * spec.demandScale))
	byPriority := splitByMix(demandCount)
	byComplexity := map[models.Complexity]int{
		models.ComplexityComplex:  demandCount / 5,
		models.ComplexitySimple:   demandCount / 4,
		models.ComplexityStandard: demandCount - demandCount/5 - demandCount/4,
	}

	capacities := make([]models.DailyCapacity, q.Days)
	demands := make([]models.DailyDemand, q.Days)
	for i := 0; i < q.Days; i++ {
		date := start.AddDate(0, 0, i)
		capacities[i] = models.DailyCapacity{
			Date:                 date,
			BacklogCapacityHours: q.DailyCapacityHours * 0.6,
			NewWorkCapacityHours: q.DailyCapacityHours * 0.4,
			ProductivityModifier: spec.productivity,
		}
		demands[i] = models.DailyDemand{
			Date:                 date,
			NewItemsByPriority:   byPriority,
			NewItemsByComplexity: byComplexity,
		}
	}

	initial := make([]models.BacklogItem, q.InitialBacklogCount)
	initialMix := splitByMix(q.InitialBacklogCount)
	idx := 0
	for _, p := range models.Priorities {
		for n := 0; n < initialMix[p]; n++ {
			initial[idx] = models.BacklogItem{
				Priority:   p,
				Complexity: models.ComplexityStandard,
			}
			idx++
		}
	}

	scenarioSeed := seed + spec.seedOffset
	return &models.BacklogPropagationRequest{
		OrganizationID:      q.OrganizationID,
		StartDate:           start,
		EndDate:             end,
		Profile:             profile,
		InitialBacklogItems: initial,
		DailyCapacities:     capacities,
		DailyDemands:        demands,
		Seed:                &scenarioSeed,
		EnablePriorityAging: true,
		EnableSLATracking:   true,
	}, nil
}

// splitByMix distributes a count across priorities per priorityMix, giving
// any rounding remainder to medium.
func splitByMix(total int) map[models.Priority]int {
	out := make(map[models.Priority]int, len(priorityMix))
	assigned := 0
	for _, m := range priorityMix {
		n := int(float64(total) * m.share)
		out[m.priority] = n
		assigned += n
	}
	out[models.PriorityMedium] += total - assigned
	return out
}

func summarize(name string, resp *models.BacklogPropagationResponse) models.ScenarioSummary {
	return models.ScenarioSummary{
		ScenarioName:          name,
		FinalBacklogCount:     resp.FinalBacklogCount,
		NetBacklogChange:      resp.SummaryStats.NetBacklogChange,
		ItemsResolved:         resp.SummaryStats.TotalItemsResolved,
		ItemsRejected:         resp.SummaryStats.TotalItemsRejected,
		SLAComplianceRate:     resp.SummaryStats.AverageSLAComplianceRate,
		TotalFinancialImpact:  resp.SummaryStats.TotalFinancialImpact,
		EstimatedRecoveryDays: resp.SummaryStats.EstimatedRecoveryDays,
	}
}

// recommend derives free-text guidance from the cross-scenario numbers.
// Rules fire in a fixed order so the output is stable for a given seed.
func recommend(req *models.QuickBacklogScenariosRequest, summaries map[string]models.ScenarioSummary) []string {
	var recs []string

	baseline, ok := summaries["baseline"]
	if ok && baseline.NetBacklogChange > 0 {
		recs = append(recs, fmt.Sprintf(
			"At %.1f hours/day the backlog grows by %d items over %d days; current capacity does not cover demand.",
			req.DailyCapacityHours, baseline.NetBacklogChange, req.Days))
	}
	if ok && baseline.NetBacklogChange <= 0 && baseline.FinalBacklogCount == 0 {
		recs = append(recs, "Current capacity clears the backlog within the simulated window.")
	}
	if opt, k := summaries["optimistic"]; k && ok && baseline.FinalBacklogCount > 0 && opt.FinalBacklogCount < baseline.FinalBacklogCount {
		recs = append(recs, fmt.Sprintf(
			"A 10%% productivity gain reduces the final backlog from %d to %d items.",
			baseline.FinalBacklogCount, opt.FinalBacklogCount))
	}
	if pes, k := summaries["pessimistic"]; k && pes.SLAComplianceRate < 0.9 {
		recs = append(recs, fmt.Sprintf(
			"Under the pessimistic scenario SLA compliance falls to %.0f%%; consider an SLA buffer or surge staffing.",
			pes.SLAComplianceRate*100))
	}
	if so, k := summaries["strict_overflow"]; k && so.ItemsRejected > 0 {
		recs = append(recs, fmt.Sprintf(
			"A hard backlog cap would reject %d items over the window; prefer defer or outsource if rejection cost is high.",
			so.ItemsRejected))
	}
	if ag, k := summaries["aggressive_aging"]; k && ok && ag.TotalFinancialImpact < baseline.TotalFinancialImpact {
		recs = append(recs, "Aggressive aging reduces financial impact by pulling old items forward; consider a lower aging threshold.")
	}

	if len(recs) == 0 {
		recs = append(recs, "Capacity and demand are balanced across all scenarios; no changes recommended.")
	}
	return recs
}
