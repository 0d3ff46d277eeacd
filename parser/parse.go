// Package parser reads simulation requests from YAML or JSON files. JSON is
// a subset of YAML, so a single decode path covers both. Dates are plain
// "2006-01-02" strings (RFC 3339 timestamps also accepted); the profile
// section is a partial override layered onto the engine defaults.
package parser

import (
	"fmt"
	"io"
	"time"

	"backlog-sim/engine"
	"backlog-sim/models"

	"gopkg.in/yaml.v3"
)

type requestFile struct {
	OrganizationID      string            `yaml:"organization_id"`
	StartDate           string            `yaml:"start_date"`
	EndDate             string            `yaml:"end_date"`
	Profile             profileSection    `yaml:"profile"`
	InitialBacklogItems []itemSection     `yaml:"initial_backlog_items"`
	DailyCapacities     []capacitySection `yaml:"daily_capacities"`
	DailyDemands        []demandSection   `yaml:"daily_demands"`
	Seed                *int64            `yaml:"seed"`
	EnablePriorityAging bool              `yaml:"enable_priority_aging"`
	EnableSLATracking   bool              `yaml:"enable_sla_tracking"`
}

// profileSection mirrors models.ProfileOverride so omitted keys fall back
// to the engine defaults instead of zero values.
type profileSection struct {
	PropagationRate            *float64 `yaml:"propagation_rate"`
	DecayRate                  *float64 `yaml:"decay_rate"`
	MaxBacklogCapacity         *int     `yaml:"max_backlog_capacity"`
	AgingEnabled               *bool    `yaml:"aging_enabled"`
	AgingThresholdDays         *int     `yaml:"aging_threshold_days"`
	AgingRepeats               *bool    `yaml:"aging_repeats"`
	OverflowStrategy           *string  `yaml:"overflow_strategy"`
	SLABreachThresholdDays     *int     `yaml:"sla_breach_threshold_days"`
	SLAPenaltyPerDay           *float64 `yaml:"sla_penalty_per_day"`
	CustomerSatisfactionImpact *float64 `yaml:"customer_satisfaction_impact"`
	RecoveryRateMultiplier     *float64 `yaml:"recovery_rate_multiplier"`
	RecoveryPriorityBoost      *float64 `yaml:"recovery_priority_boost"`
}

type itemSection struct {
	ID                     string `yaml:"id"`
	Priority               string `yaml:"priority"`
	Complexity             string `yaml:"complexity"`
	EstimatedEffortMinutes int    `yaml:"estimated_effort_minutes"`
	CreatedDate            string `yaml:"created_date"`
	DueDate                string `yaml:"due_date"`
	Status                 string `yaml:"status"`
	DaysInBacklog          int    `yaml:"days_in_backlog"`
	PropagationCount       int    `yaml:"propagation_count"`
}

type capacitySection struct {
	Date                  string   `yaml:"date"`
	BacklogCapacityHours  float64  `yaml:"backlog_capacity_hours"`
	NewWorkCapacityHours  float64  `yaml:"new_work_capacity_hours"`
	ProductivityModifier  *float64 `yaml:"productivity_modifier"`
	MaxItemsPerDay        int      `yaml:"max_items_per_day"`
	MaxComplexItemsPerDay int      `yaml:"max_complex_items_per_day"`
}

type demandSection struct {
	Date                 string         `yaml:"date"`
	NewItemsByPriority   map[string]int `yaml:"new_items_by_priority"`
	NewItemsByComplexity map[string]int `yaml:"new_items_by_complexity"`
}

// ParseRequest decodes a full propagation request. The profile is built by
// laying the file's partial settings over the engine defaults and
// validating the result, so a structurally broken profile fails here, not
// mid-run.
func ParseRequest(r io.Reader) (*models.BacklogPropagationRequest, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}
	var file requestFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decoding request: %w", err)
	}

	req := &models.BacklogPropagationRequest{
		OrganizationID:      file.OrganizationID,
		Seed:                file.Seed,
		EnablePriorityAging: file.EnablePriorityAging,
		EnableSLATracking:   file.EnableSLATracking,
	}

	if req.StartDate, err = parseDate(file.StartDate, "start_date"); err != nil {
		return nil, err
	}
	if req.EndDate, err = parseDate(file.EndDate, "end_date"); err != nil {
		return nil, err
	}

	if req.Profile, err = engine.NewProfile(engine.DefaultProfile(), file.Profile.toOverride()); err != nil {
		return nil, err
	}

	for i, it := range file.InitialBacklogItems {
		item := models.BacklogItem{
			ID:                     it.ID,
			Priority:               models.Priority(it.Priority),
			Complexity:             models.Complexity(it.Complexity),
			EstimatedEffortMinutes: it.EstimatedEffortMinutes,
			Status:                 models.ItemStatus(it.Status),
			DaysInBacklog:          it.DaysInBacklog,
			PropagationCount:       it.PropagationCount,
		}
		if it.CreatedDate != "" {
			d, err := parseDate(it.CreatedDate, fmt.Sprintf("initial_backlog_items[%d].created_date", i))
			if err != nil {
				return nil, err
			}
			item.CreatedDate = d
		}
		if it.DueDate != "" {
			d, err := parseDate(it.DueDate, fmt.Sprintf("initial_backlog_items[%d].due_date", i))
			if err != nil {
				return nil, err
			}
			item.DueDate = &d
		}
		req.InitialBacklogItems = append(req.InitialBacklogItems, item)
	}

	for i, c := range file.DailyCapacities {
		date, err := parseDate(c.Date, fmt.Sprintf("daily_capacities[%d].date", i))
		if err != nil {
			return nil, err
		}
		modifier := 1.0
		if c.ProductivityModifier != nil {
			modifier = *c.ProductivityModifier
		}
		req.DailyCapacities = append(req.DailyCapacities, models.DailyCapacity{
			Date:                  date,
			BacklogCapacityHours:  c.BacklogCapacityHours,
			NewWorkCapacityHours:  c.NewWorkCapacityHours,
			ProductivityModifier:  modifier,
			MaxItemsPerDay:        c.MaxItemsPerDay,
			MaxComplexItemsPerDay: c.MaxComplexItemsPerDay,
		})
	}

	for i, d := range file.DailyDemands {
		date, err := parseDate(d.Date, fmt.Sprintf("daily_demands[%d].date", i))
		if err != nil {
			return nil, err
		}
		demand := models.DailyDemand{
			Date:                 date,
			NewItemsByPriority:   make(map[models.Priority]int, len(d.NewItemsByPriority)),
			NewItemsByComplexity: make(map[models.Complexity]int, len(d.NewItemsByComplexity)),
		}
		for k, n := range d.NewItemsByPriority {
			demand.NewItemsByPriority[models.Priority(k)] = n
		}
		for k, n := range d.NewItemsByComplexity {
			demand.NewItemsByComplexity[models.Complexity(k)] = n
		}
		req.DailyDemands = append(req.DailyDemands, demand)
	}

	return req, nil
}

type quickFile struct {
	OrganizationID      string  `yaml:"organization_id"`
	StartDate           string  `yaml:"start_date"`
	Days                int     `yaml:"days"`
	DailyDemandCount    int     `yaml:"daily_demand_count"`
	DailyCapacityHours  float64 `yaml:"daily_capacity_hours"`
	InitialBacklogCount int     `yaml:"initial_backlog_count"`
	Seed                *int64  `yaml:"seed"`
}

// ParseQuickRequest decodes a quick-scenarios request.
func ParseQuickRequest(r io.Reader) (*models.QuickBacklogScenariosRequest, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}
	var file quickFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decoding request: %w", err)
	}
	start, err := parseDate(file.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	return &models.QuickBacklogScenariosRequest{
		OrganizationID:      file.OrganizationID,
		StartDate:           start,
		Days:                file.Days,
		DailyDemandCount:    file.DailyDemandCount,
		DailyCapacityHours:  file.DailyCapacityHours,
		InitialBacklogCount: file.InitialBacklogCount,
		Seed:                file.Seed,
	}, nil
}

func (p profileSection) toOverride() models.ProfileOverride {
	o := models.ProfileOverride{
		PropagationRate:            p.PropagationRate,
		DecayRate:                  p.DecayRate,
		MaxBacklogCapacity:         p.MaxBacklogCapacity,
		AgingEnabled:               p.AgingEnabled,
		AgingThresholdDays:         p.AgingThresholdDays,
		AgingRepeats:               p.AgingRepeats,
		SLABreachThresholdDays:     p.SLABreachThresholdDays,
		SLAPenaltyPerDay:           p.SLAPenaltyPerDay,
		CustomerSatisfactionImpact: p.CustomerSatisfactionImpact,
		RecoveryRateMultiplier:     p.RecoveryRateMultiplier,
		RecoveryPriorityBoost:      p.RecoveryPriorityBoost,
	}
	if p.OverflowStrategy != nil {
		s := models.OverflowStrategy(*p.OverflowStrategy)
		o.OverflowStrategy = &s
	}
	return o
}

func parseDate(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("field %q: date is required", field)
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("field %q: cannot parse date %q", field, value)
}
