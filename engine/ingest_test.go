package engine

import (
	"math/rand"
	"testing"

	"backlog-sim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestDemand(t *testing.T) {
	demand := models.DailyDemand{
		Date: testDay(1),
		NewItemsByPriority: map[models.Priority]int{
			models.PriorityCritical: 1,
			models.PriorityHigh:     2,
			models.PriorityLow:      3,
		},
		NewItemsByComplexity: map[models.Complexity]int{
			models.ComplexityComplex: 2,
			models.ComplexitySimple:  1,
			// three short of the priority total; standard fills the gap
		},
	}

	items := ingestDemand(demand, DefaultProfile(), true, testDay(1), rand.New(rand.NewSource(7)))
	require.Len(t, items, 6)

	byPriority := map[models.Priority]int{}
	byComplexity := map[models.Complexity]int{}
	for _, it := range items {
		byPriority[it.Priority]++
		byComplexity[it.Complexity]++

		assert.NotEmpty(t, it.ID)
		assert.Equal(t, models.StatusPending, it.Status)
		assert.Equal(t, it.Priority, it.OriginalPriority)
		assert.Equal(t, testDay(1), it.CreatedDate)
		assert.Equal(t, it.Complexity.TypicalEffortMinutes(), it.EstimatedEffortMinutes)
		require.NotNil(t, it.DueDate)
		assert.Equal(t, testDay(1+DefaultProfile().SLABreachThresholdDays), *it.DueDate)
		assert.Zero(t, it.DaysInBacklog)
	}

	assert.Equal(t, 1, byPriority[models.PriorityCritical])
	assert.Equal(t, 2, byPriority[models.PriorityHigh])
	assert.Equal(t, 3, byPriority[models.PriorityLow])
	assert.Equal(t, 2, byComplexity[models.ComplexityComplex])
	assert.Equal(t, 1, byComplexity[models.ComplexitySimple])
	assert.Equal(t, 3, byComplexity[models.ComplexityStandard])
}

func TestIngestDemand_NoSLA(t *testing.T) {
	demand := models.DailyDemand{
		Date:               testDay(1),
		NewItemsByPriority: map[models.Priority]int{models.PriorityMedium: 2},
	}
	items := ingestDemand(demand, DefaultProfile(), false, testDay(1), rand.New(rand.NewSource(7)))
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Nil(t, it.DueDate)
		assert.Equal(t, models.ComplexityStandard, it.Complexity)
	}
}

func TestIngestDemand_EmptyDay(t *testing.T) {
	items := ingestDemand(models.DailyDemand{Date: testDay(1)}, DefaultProfile(), true, testDay(1), rand.New(rand.NewSource(7)))
	assert.Empty(t, items)
}

func TestIngestDemand_DeterministicForSameSeed(t *testing.T) {
	demand := models.DailyDemand{
		Date: testDay(1),
		NewItemsByPriority: map[models.Priority]int{
			models.PriorityHigh: 3,
			models.PriorityLow:  3,
		},
		NewItemsByComplexity: map[models.Complexity]int{
			models.ComplexityComplex: 3,
			models.ComplexitySimple:  3,
		},
	}

	first := ingestDemand(demand, DefaultProfile(), true, testDay(1), rand.New(rand.NewSource(11)))
	second := ingestDemand(demand, DefaultProfile(), true, testDay(1), rand.New(rand.NewSource(11)))
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Priority, second[i].Priority)
		assert.Equal(t, first[i].Complexity, second[i].Complexity)
	}
}
