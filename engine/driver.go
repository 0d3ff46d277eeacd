package engine

import (
	"fmt"
	"math/rand"
	"time"

	apperrors "backlog-sim/errors"
	"backlog-sim/models"
)

// initialSatisfaction is the customer satisfaction score a run starts from.
// Breaches subtract the profile's impact; the score floors at zero.
const initialSatisfaction = 100.0

// Run executes one backlog propagation simulation. The request is not
// mutated; all item state lives in run-private copies. Validation failures
// abort the whole run with no partial response. Malformed initial backlog
// items are filtered out and reported on the response instead.
func Run(req *models.BacklogPropagationRequest) (*models.BacklogPropagationResponse, error) {
	start := time.Now()

	dates, err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	backlog, inputErrors := sanitizeInitialItems(req.InitialBacklogItems, req.Profile, req.StartDate, req.EnableSLATracking, rng)
	initialSize := len(backlog)

	satisfaction := initialSatisfaction
	financialImpact := 0.0
	snapshots := make([]models.BacklogSnapshot, 0, len(dates))

	for i, day := range dates {
		// Deferred and escalated items re-enter the queue as pending.
		for _, item := range backlog {
			if item.Status == models.StatusDeferred || item.Status == models.StatusEscalated {
				item.Status = models.StatusPending
			}
		}

		newItems := ingestDemand(req.DailyDemands[i], req.Profile, req.EnableSLATracking, day, rng)

		budget, err := allocateCapacity(req.DailyCapacities[i])
		if err != nil {
			return nil, err
		}

		caps := dayCaps{maxItems: budget.maxItems, maxComplex: budget.maxComplex}
		backlogRes := processPool(backlog, budget.backlogMinutes, &caps, day)
		newRes := processPool(newItems, budget.newWorkMinutes, &caps, day)

		backlog = append(backlog, newItems...)

		tally := dayTally{
			created:  len(newItems),
			resolved: backlogRes.completed + newRes.completed,
		}

		if req.EnablePriorityAging {
			tally.agedUp = applyAging(backlog, req.Profile, day)
		}

		if req.EnableSLATracking {
			sla := applySLA(backlog, req.Profile, day)
			tally.breaches = sla.newBreaches
			financialImpact += sla.penalty
			satisfaction += sla.satisfactionDelta
			if satisfaction < 0 {
				satisfaction = 0
			}
		}

		overflow := applyOverflow(backlog, req.Profile, day)
		tally.rejected = overflow.rejected
		tally.deferred = overflow.deferred
		tally.outsourced = overflow.outsourced

		tally.decayed = applyDecay(backlog, req.Profile, day, rng)
		tally.resolved += tally.decayed

		// Every item that survives the day unresolved propagates.
		active := backlog[:0]
		for _, item := range backlog {
			if item.Status.Terminal() {
				continue
			}
			item.DaysInBacklog++
			item.PropagationCount++
			tally.propagated++
			active = append(active, item)
		}
		backlog = active

		processed := backlogRes.minutesUsed + newRes.minutesUsed
		snapshots = append(snapshots, buildSnapshot(day, i, backlog, tally, budget,
			processed, financialImpact, satisfaction, req.Profile))
	}

	final := make([]models.BacklogItem, len(backlog))
	for i, item := range backlog {
		final[i] = *item
	}

	return &models.BacklogPropagationResponse{
		OrganizationID:      req.OrganizationID,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		DailySnapshots:      snapshots,
		FinalBacklogItems:   final,
		FinalBacklogCount:   len(final),
		SummaryStats:        summarize(snapshots, initialSize, len(final)),
		InputErrors:         inputErrors,
		ExecutionDurationMs: time.Since(start).Milliseconds(),
		SeedUsed:            seed,
	}, nil
}

// applyDecay retires unresolved items that would not carry over to the next
// day. Retention per item per day is propagation_rate scaled down by
// decay_rate; with the neutral defaults (1 and 0) every item carries. One
// RNG draw per unresolved item, in backlog order, keeps runs reproducible.
func applyDecay(backlog []*models.BacklogItem, profile models.BacklogPropagationProfile, day time.Time, rng *rand.Rand) int {
	retain := profile.PropagationRate * (1 - profile.DecayRate)
	decayed := 0
	for _, item := range backlog {
		if item.Status.Terminal() {
			continue
		}
		if rng.Float64() < retain {
			continue
		}
		item.Status = models.StatusCompleted
		d := day
		item.CompletedDate = &d
		decayed++
	}
	return decayed
}

// midnight normalizes a timestamp to its calendar day in UTC. All engine
// date arithmetic runs on these normalized values.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// validateRequest checks the whole request before any computation and
// returns the normalized calendar of simulated days.
func validateRequest(req *models.BacklogPropagationRequest) ([]time.Time, error) {
	if req.OrganizationID == "" {
		return nil, &apperrors.ConfigError{Field: "organization_id", Err: apperrors.ErrMissingField}
	}
	if err := ValidateProfile(req.Profile); err != nil {
		return nil, err
	}

	start := midnight(req.StartDate)
	end := midnight(req.EndDate)
	if end.Before(start) {
		return nil, &apperrors.ConfigError{
			Field: "end_date",
			Err:   fmt.Errorf("%w: %s before %s", apperrors.ErrDateOrder, end.Format("2006-01-02"), start.Format("2006-01-02")),
		}
	}

	totalDays := int(end.Sub(start).Hours()/24) + 1
	if len(req.DailyCapacities) != totalDays || len(req.DailyDemands) != totalDays {
		return nil, &apperrors.ConfigError{
			Field: "daily_capacities",
			Err: fmt.Errorf("%w: want %d days, got %d capacities and %d demands",
				apperrors.ErrMisalignedInputs, totalDays, len(req.DailyCapacities), len(req.DailyDemands)),
		}
	}

	dates := make([]time.Time, totalDays)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}

	for i, c := range req.DailyCapacities {
		if !midnight(c.Date).Equal(dates[i]) {
			return nil, &apperrors.ConfigError{
				Field: fmt.Sprintf("daily_capacities[%d].date", i),
				Err:   fmt.Errorf("%w: got %s, want %s", apperrors.ErrMisalignedInputs, c.Date.Format("2006-01-02"), dates[i].Format("2006-01-02")),
			}
		}
		if c.BacklogCapacityHours < 0 || c.NewWorkCapacityHours < 0 || c.ProductivityModifier < 0 {
			return nil, &apperrors.ConfigError{
				Field: fmt.Sprintf("daily_capacities[%d]", i),
				Err:   apperrors.ErrNegativeCapacity,
			}
		}
	}

	for i, d := range req.DailyDemands {
		if !midnight(d.Date).Equal(dates[i]) {
			return nil, &apperrors.ConfigError{
				Field: fmt.Sprintf("daily_demands[%d].date", i),
				Err:   fmt.Errorf("%w: got %s, want %s", apperrors.ErrMisalignedInputs, d.Date.Format("2006-01-02"), dates[i].Format("2006-01-02")),
			}
		}
		for p, n := range d.NewItemsByPriority {
			if !p.Valid() {
				return nil, &apperrors.ConfigError{
					Field: fmt.Sprintf("daily_demands[%d].new_items_by_priority", i),
					Err:   fmt.Errorf("%w: %q", apperrors.ErrUnknownPriority, p),
				}
			}
			if n < 0 {
				return nil, &apperrors.ConfigError{
					Field: fmt.Sprintf("daily_demands[%d].new_items_by_priority", i),
					Err:   apperrors.ErrNegativeDemand,
				}
			}
		}
		for c, n := range d.NewItemsByComplexity {
			if !c.Valid() {
				return nil, &apperrors.ConfigError{
					Field: fmt.Sprintf("daily_demands[%d].new_items_by_complexity", i),
					Err:   fmt.Errorf("%w: %q", apperrors.ErrUnknownComplexity, c),
				}
			}
			if n < 0 {
				return nil, &apperrors.ConfigError{
					Field: fmt.Sprintf("daily_demands[%d].new_items_by_complexity", i),
					Err:   apperrors.ErrNegativeDemand,
				}
			}
		}
	}

	return dates, nil
}

// sanitizeInitialItems deep-copies the supplied backlog, fills defaults,
// and filters out malformed entries. Filtered entries are reported, never
// fatal: the run proceeds with the remaining valid items.
func sanitizeInitialItems(items []models.BacklogItem, profile models.BacklogPropagationProfile, startDate time.Time, slaEnabled bool, rng *rand.Rand) ([]*models.BacklogItem, []string) {
	var kept []*models.BacklogItem
	var errs []string

	for i := range items {
		item := items[i].Clone()

		if !item.Priority.Valid() {
			errs = append(errs, (&apperrors.ItemError{Index: i, Field: "priority",
				Err: fmt.Errorf("%w: %q", apperrors.ErrUnknownPriority, item.Priority)}).Error())
			continue
		}
		if item.Complexity == "" {
			item.Complexity = models.ComplexityStandard
		}
		if !item.Complexity.Valid() {
			errs = append(errs, (&apperrors.ItemError{Index: i, Field: "complexity",
				Err: fmt.Errorf("%w: %q", apperrors.ErrUnknownComplexity, item.Complexity)}).Error())
			continue
		}
		if item.Status == "" {
			item.Status = models.StatusPending
		}
		if !item.Status.Valid() || item.Status.Terminal() {
			errs = append(errs, (&apperrors.ItemError{Index: i, Field: "status",
				Err: fmt.Errorf("%w: %q", apperrors.ErrUnknownStatus, item.Status)}).Error())
			continue
		}
		if item.EstimatedEffortMinutes < 0 {
			errs = append(errs, (&apperrors.ItemError{Index: i, Field: "estimated_effort_minutes",
				Err: fmt.Errorf("effort must not be negative: %d", item.EstimatedEffortMinutes)}).Error())
			continue
		}

		if item.ID == "" {
			item.ID = newItemID(rng)
		}
		if item.OriginalPriority == "" {
			item.OriginalPriority = item.Priority
		}
		if item.EstimatedEffortMinutes == 0 {
			item.EstimatedEffortMinutes = item.Complexity.TypicalEffortMinutes()
		}
		if item.CreatedDate.IsZero() {
			item.CreatedDate = midnight(startDate)
		} else {
			item.CreatedDate = midnight(item.CreatedDate)
		}
		if item.DueDate == nil && slaEnabled && profile.SLABreachThresholdDays > 0 {
			d := item.CreatedDate.AddDate(0, 0, profile.SLABreachThresholdDays)
			item.DueDate = &d
		}

		kept = append(kept, item)
	}
	return kept, errs
}
