package engine

import (
	"errors"
	"testing"

	apperrors "backlog-sim/errors"
	"backlog-sim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfile(t *testing.T) {
	tests := map[string]struct {
		mutate  func(p *models.BacklogPropagationProfile)
		wantErr error
	}{
		"DefaultIsValid": {
			mutate: func(*models.BacklogPropagationProfile) {},
		},
		"NegativePropagationRate": {
			mutate:  func(p *models.BacklogPropagationProfile) { p.PropagationRate = -0.1 },
			wantErr: apperrors.ErrNegativeRate,
		},
		"NegativePenalty": {
			mutate:  func(p *models.BacklogPropagationProfile) { p.SLAPenaltyPerDay = -5 },
			wantErr: apperrors.ErrNegativeRate,
		},
		"ZeroCapacityBound": {
			mutate: func(p *models.BacklogPropagationProfile) {
				zero := 0
				p.MaxBacklogCapacity = &zero
			},
			wantErr: apperrors.ErrInvalidCapacityBound,
		},
		"NegativeCapacityBound": {
			mutate: func(p *models.BacklogPropagationProfile) {
				neg := -3
				p.MaxBacklogCapacity = &neg
			},
			wantErr: apperrors.ErrInvalidCapacityBound,
		},
		"UnknownStrategy": {
			mutate:  func(p *models.BacklogPropagationProfile) { p.OverflowStrategy = "ignore" },
			wantErr: apperrors.ErrUnknownStrategy,
		},
		"PositiveCapacityBound": {
			mutate: func(p *models.BacklogPropagationProfile) {
				ten := 10
				p.MaxBacklogCapacity = &ten
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p := DefaultProfile()
			tc.mutate(&p)
			err := ValidateProfile(p)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)

			var cfgErr *apperrors.ConfigError
			assert.True(t, errors.As(err, &cfgErr))
			assert.NotEmpty(t, cfgErr.Field)
		})
	}
}

func TestNewProfile(t *testing.T) {
	rate := 0.8
	threshold := 3
	strategy := models.OverflowOutsource

	p, err := NewProfile(DefaultProfile(), models.ProfileOverride{
		PropagationRate:    &rate,
		AgingThresholdDays: &threshold,
		OverflowStrategy:   &strategy,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.8, p.PropagationRate)
	assert.Equal(t, 3, p.AgingThresholdDays)
	assert.Equal(t, models.OverflowOutsource, p.OverflowStrategy)

	// Untouched fields keep the base values.
	base := DefaultProfile()
	assert.Equal(t, base.SLAPenaltyPerDay, p.SLAPenaltyPerDay)
	assert.Equal(t, base.RecoveryRateMultiplier, p.RecoveryRateMultiplier)
	assert.Equal(t, base.AgingEnabled, p.AgingEnabled)
}

func TestNewProfile_InvalidOverrideRejected(t *testing.T) {
	bad := -1.0
	_, err := NewProfile(DefaultProfile(), models.ProfileOverride{DecayRate: &bad})
	assert.True(t, errors.Is(err, apperrors.ErrNegativeRate))
}

func TestNewProfile_CapacityBoundCopied(t *testing.T) {
	ceiling := 7
	p, err := NewProfile(DefaultProfile(), models.ProfileOverride{MaxBacklogCapacity: &ceiling})
	require.NoError(t, err)

	ceiling = 99
	assert.Equal(t, 7, *p.MaxBacklogCapacity, "profile owns its own copy")
}
