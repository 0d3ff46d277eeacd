package engine

import (
	"fmt"

	apperrors "backlog-sim/errors"
	"backlog-sim/models"

	"github.com/go-playground/validator/v10"
)

// validate is shared by profile and request checks. Struct tags cover the
// numeric bounds; enum membership and cross-field rules are checked in code.
var validate = validator.New()

// DefaultProfile returns the baseline policy: neutral propagation, aging at
// five days, defer on overflow, five-day SLA with a 100-per-day penalty.
func DefaultProfile() models.BacklogPropagationProfile {
	return models.BacklogPropagationProfile{
		PropagationRate:            1.0,
		DecayRate:                  0,
		AgingEnabled:               true,
		AgingThresholdDays:         5,
		OverflowStrategy:           models.OverflowDefer,
		SLABreachThresholdDays:     5,
		SLAPenaltyPerDay:           100,
		CustomerSatisfactionImpact: 2,
		RecoveryRateMultiplier:     1.0,
		RecoveryPriorityBoost:      0.25,
	}
}

// NewProfile layers a partial override onto a base profile and validates the
// result. The returned profile is a value; callers treat it as immutable for
// the lifetime of a run.
func NewProfile(base models.BacklogPropagationProfile, o models.ProfileOverride) (models.BacklogPropagationProfile, error) {
	p := base
	if o.PropagationRate != nil {
		p.PropagationRate = *o.PropagationRate
	}
	if o.DecayRate != nil {
		p.DecayRate = *o.DecayRate
	}
	if o.MaxBacklogCapacity != nil {
		v := *o.MaxBacklogCapacity
		p.MaxBacklogCapacity = &v
	}
	if o.AgingEnabled != nil {
		p.AgingEnabled = *o.AgingEnabled
	}
	if o.AgingThresholdDays != nil {
		p.AgingThresholdDays = *o.AgingThresholdDays
	}
	if o.AgingRepeats != nil {
		p.AgingRepeats = *o.AgingRepeats
	}
	if o.OverflowStrategy != nil {
		p.OverflowStrategy = *o.OverflowStrategy
	}
	if o.SLABreachThresholdDays != nil {
		p.SLABreachThresholdDays = *o.SLABreachThresholdDays
	}
	if o.SLAPenaltyPerDay != nil {
		p.SLAPenaltyPerDay = *o.SLAPenaltyPerDay
	}
	if o.CustomerSatisfactionImpact != nil {
		p.CustomerSatisfactionImpact = *o.CustomerSatisfactionImpact
	}
	if o.RecoveryRateMultiplier != nil {
		p.RecoveryRateMultiplier = *o.RecoveryRateMultiplier
	}
	if o.RecoveryPriorityBoost != nil {
		p.RecoveryPriorityBoost = *o.RecoveryPriorityBoost
	}
	if err := ValidateProfile(p); err != nil {
		return models.BacklogPropagationProfile{}, err
	}
	return p, nil
}

// ValidateProfile checks a profile before a run starts. Pure check, no side
// effects.
func ValidateProfile(p models.BacklogPropagationProfile) error {
	if err := validate.Struct(p); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return &apperrors.ConfigError{
				Field: errs[0].Field(),
				Err:   fmt.Errorf("%w: %v", apperrors.ErrNegativeRate, errs[0].Value()),
			}
		}
		return err
	}
	if p.MaxBacklogCapacity != nil && *p.MaxBacklogCapacity <= 0 {
		return &apperrors.ConfigError{
			Field: "max_backlog_capacity",
			Err:   fmt.Errorf("%w: %d", apperrors.ErrInvalidCapacityBound, *p.MaxBacklogCapacity),
		}
	}
	if !p.OverflowStrategy.Valid() {
		return &apperrors.ConfigError{
			Field: "overflow_strategy",
			Err:   fmt.Errorf("%w: %q", apperrors.ErrUnknownStrategy, p.OverflowStrategy),
		}
	}
	return nil
}
