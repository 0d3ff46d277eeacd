package models

// BacklogPropagationProfile is the immutable run-wide policy for one
// simulation. Construct with engine.NewProfile to apply overrides over
// defaults and validate the result.
//
// PropagationRate is the probability that an unprocessed item carries over
// to the next day; DecayRate is an independent daily probability that a
// carried item resolves itself outside the modeled capacity (duplicate
// closed, customer self-serve). Both default to the neutral values 1 and 0.
type BacklogPropagationProfile struct {
	PropagationRate            float64          `json:"propagation_rate" yaml:"propagation_rate" validate:"gte=0,lte=1"`
	DecayRate                  float64          `json:"decay_rate" yaml:"decay_rate" validate:"gte=0,lte=1"`
	MaxBacklogCapacity         *int             `json:"max_backlog_capacity,omitempty" yaml:"max_backlog_capacity,omitempty"`
	AgingEnabled               bool             `json:"aging_enabled" yaml:"aging_enabled"`
	AgingThresholdDays         int              `json:"aging_threshold_days" yaml:"aging_threshold_days" validate:"gte=0"`
	AgingRepeats               bool             `json:"aging_repeats" yaml:"aging_repeats"`
	OverflowStrategy           OverflowStrategy `json:"overflow_strategy" yaml:"overflow_strategy"`
	SLABreachThresholdDays     int              `json:"sla_breach_threshold_days" yaml:"sla_breach_threshold_days" validate:"gte=0"`
	SLAPenaltyPerDay           float64          `json:"sla_penalty_per_day" yaml:"sla_penalty_per_day" validate:"gte=0"`
	CustomerSatisfactionImpact float64          `json:"customer_satisfaction_impact" yaml:"customer_satisfaction_impact" validate:"gte=0"`
	RecoveryRateMultiplier     float64          `json:"recovery_rate_multiplier" yaml:"recovery_rate_multiplier" validate:"gte=0"`
	RecoveryPriorityBoost      float64          `json:"recovery_priority_boost" yaml:"recovery_priority_boost" validate:"gte=0"`
}

// ProfileOverride carries partial profile settings layered over a default
// profile by engine.NewProfile. Nil fields keep the base value.
type ProfileOverride struct {
	PropagationRate            *float64          `json:"propagation_rate,omitempty" yaml:"propagation_rate,omitempty"`
	DecayRate                  *float64          `json:"decay_rate,omitempty" yaml:"decay_rate,omitempty"`
	MaxBacklogCapacity         *int              `json:"max_backlog_capacity,omitempty" yaml:"max_backlog_capacity,omitempty"`
	AgingEnabled               *bool             `json:"aging_enabled,omitempty" yaml:"aging_enabled,omitempty"`
	AgingThresholdDays         *int              `json:"aging_threshold_days,omitempty" yaml:"aging_threshold_days,omitempty"`
	AgingRepeats               *bool             `json:"aging_repeats,omitempty" yaml:"aging_repeats,omitempty"`
	OverflowStrategy           *OverflowStrategy `json:"overflow_strategy,omitempty" yaml:"overflow_strategy,omitempty"`
	SLABreachThresholdDays     *int              `json:"sla_breach_threshold_days,omitempty" yaml:"sla_breach_threshold_days,omitempty"`
	SLAPenaltyPerDay           *float64          `json:"sla_penalty_per_day,omitempty" yaml:"sla_penalty_per_day,omitempty"`
	CustomerSatisfactionImpact *float64          `json:"customer_satisfaction_impact,omitempty" yaml:"customer_satisfaction_impact,omitempty"`
	RecoveryRateMultiplier     *float64          `json:"recovery_rate_multiplier,omitempty" yaml:"recovery_rate_multiplier,omitempty"`
	RecoveryPriorityBoost      *float64          `json:"recovery_priority_boost,omitempty" yaml:"recovery_priority_boost,omitempty"`
}
