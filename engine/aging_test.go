package engine

import (
	"testing"

	"backlog-sim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func agingProfile(threshold int, repeats bool) models.BacklogPropagationProfile {
	p := DefaultProfile()
	p.AgingThresholdDays = threshold
	p.AgingRepeats = repeats
	return p
}

func TestApplyAging_EscalatesAtThreshold(t *testing.T) {
	young := item("young", models.PriorityLow, 2, 60)
	old := item("old", models.PriorityLow, 5, 60)

	aged := applyAging([]*models.BacklogItem{young, old}, agingProfile(5, false), testDay(6))

	assert.Equal(t, 1, aged)
	assert.Equal(t, models.PriorityLow, young.Priority)
	assert.Nil(t, young.AgingDate)
	assert.Equal(t, models.PriorityMedium, old.Priority)
	require.NotNil(t, old.AgingDate)
	assert.Equal(t, testDay(6), *old.AgingDate)
}

func TestApplyAging_AtMostOnceByDefault(t *testing.T) {
	it := item("a", models.PriorityLow, 5, 60)

	applyAging([]*models.BacklogItem{it}, agingProfile(5, false), testDay(6))
	require.Equal(t, models.PriorityMedium, it.Priority)
	firstAging := *it.AgingDate

	// Still unresolved many days later; no further escalation.
	it.DaysInBacklog = 10
	aged := applyAging([]*models.BacklogItem{it}, agingProfile(5, false), testDay(11))
	assert.Equal(t, 0, aged)
	assert.Equal(t, models.PriorityMedium, it.Priority)
	assert.Equal(t, firstAging, *it.AgingDate)
}

func TestApplyAging_RepeatsAtThresholdMultiples(t *testing.T) {
	it := item("a", models.PriorityLow, 5, 60)
	profile := agingProfile(5, true)

	applyAging([]*models.BacklogItem{it}, profile, testDay(6))
	require.Equal(t, models.PriorityMedium, it.Priority)

	// Between multiples nothing happens.
	it.DaysInBacklog = 7
	assert.Equal(t, 0, applyAging([]*models.BacklogItem{it}, profile, testDay(8)))

	it.DaysInBacklog = 10
	assert.Equal(t, 1, applyAging([]*models.BacklogItem{it}, profile, testDay(11)))
	assert.Equal(t, models.PriorityHigh, it.Priority)
	assert.Equal(t, testDay(6), *it.AgingDate, "aging date marks the first escalation")
}

func TestApplyAging_CriticalIsCeiling(t *testing.T) {
	it := item("a", models.PriorityCritical, 30, 60)
	aged := applyAging([]*models.BacklogItem{it}, agingProfile(5, true), testDay(31))
	assert.Equal(t, 0, aged)
	assert.Equal(t, models.PriorityCritical, it.Priority)
}

func TestApplyAging_DisabledProfile(t *testing.T) {
	p := agingProfile(5, false)
	p.AgingEnabled = false
	it := item("a", models.PriorityLow, 50, 60)
	assert.Equal(t, 0, applyAging([]*models.BacklogItem{it}, p, testDay(51)))
	assert.Equal(t, models.PriorityLow, it.Priority)
}
