package engine

import (
	"testing"
	"time"

	"backlog-sim/models"

	"github.com/stretchr/testify/assert"
)

func testDay(n int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n-1)
}

func item(id string, p models.Priority, age, effort int) *models.BacklogItem {
	return &models.BacklogItem{
		ID:                     id,
		Priority:               p,
		OriginalPriority:       p,
		Complexity:             models.ComplexityStandard,
		EstimatedEffortMinutes: effort,
		Status:                 models.StatusPending,
		DaysInBacklog:          age,
	}
}

func TestSortForSelection(t *testing.T) {
	due3 := testDay(3)
	due5 := testDay(5)

	a := item("a", models.PriorityLow, 9, 60)
	b := item("b", models.PriorityCritical, 0, 60)
	c := item("c", models.PriorityHigh, 4, 60)
	d := item("d", models.PriorityHigh, 4, 60)
	d.DueDate = &due3
	e := item("e", models.PriorityHigh, 4, 60)
	e.DueDate = &due5
	f := item("f", models.PriorityHigh, 7, 60)

	pool := []*models.BacklogItem{a, b, c, d, e, f}
	sortForSelection(pool)

	got := make([]string, len(pool))
	for i, it := range pool {
		got[i] = it.ID
	}
	// critical first, then highs oldest first, due date breaks the
	// remaining tie with nil last, low last regardless of age.
	assert.Equal(t, []string{"b", "f", "d", "e", "c", "a"}, got)
}

func TestProcessPool(t *testing.T) {
	tests := map[string]struct {
		pool          []*models.BacklogItem
		minutes       float64
		caps          dayCaps
		wantCompleted int
		wantMinutes   float64
	}{
		"AllFit": {
			pool:          []*models.BacklogItem{item("a", models.PriorityHigh, 0, 60), item("b", models.PriorityLow, 0, 30)},
			minutes:       120,
			wantCompleted: 2,
			wantMinutes:   90,
		},
		"HoursRunOut": {
			pool:          []*models.BacklogItem{item("a", models.PriorityHigh, 0, 60), item("b", models.PriorityLow, 0, 60)},
			minutes:       60,
			wantCompleted: 1,
			wantMinutes:   60,
		},
		"OversizedItemSkippedSmallerFits": {
			pool:          []*models.BacklogItem{item("a", models.PriorityHigh, 0, 240), item("b", models.PriorityLow, 0, 30)},
			minutes:       60,
			wantCompleted: 1,
			wantMinutes:   30,
		},
		"ItemCountCap": {
			pool: []*models.BacklogItem{
				item("a", models.PriorityHigh, 0, 30),
				item("b", models.PriorityMedium, 0, 30),
				item("c", models.PriorityLow, 0, 30),
			},
			minutes:       600,
			caps:          dayCaps{maxItems: 2},
			wantCompleted: 2,
			wantMinutes:   60,
		},
		"ZeroMinutes": {
			pool:          []*models.BacklogItem{item("a", models.PriorityCritical, 5, 30)},
			minutes:       0,
			wantCompleted: 0,
			wantMinutes:   0,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			caps := tc.caps
			res := processPool(tc.pool, tc.minutes, &caps, testDay(1))
			assert.Equal(t, tc.wantCompleted, res.completed)
			assert.Equal(t, tc.wantMinutes, res.minutesUsed)

			completed := 0
			for _, it := range tc.pool {
				if it.Status == models.StatusCompleted {
					completed++
					assert.NotNil(t, it.CompletedDate)
				}
			}
			assert.Equal(t, tc.wantCompleted, completed)
		})
	}
}

func TestProcessPool_ComplexCountCap(t *testing.T) {
	complex1 := item("a", models.PriorityCritical, 0, 60)
	complex1.Complexity = models.ComplexityComplex
	complex2 := item("b", models.PriorityHigh, 0, 60)
	complex2.Complexity = models.ComplexityComplex
	simple := item("c", models.PriorityLow, 0, 30)

	caps := dayCaps{maxComplex: 1}
	res := processPool([]*models.BacklogItem{complex1, complex2, simple}, 600, &caps, testDay(1))

	assert.Equal(t, 2, res.completed)
	assert.Equal(t, models.StatusCompleted, complex1.Status)
	assert.Equal(t, models.StatusPending, complex2.Status)
	assert.Equal(t, models.StatusCompleted, simple.Status)
}

func TestProcessPool_TerminalItemsIgnored(t *testing.T) {
	done := item("a", models.PriorityCritical, 0, 30)
	done.Status = models.StatusCompleted
	pending := item("b", models.PriorityLow, 0, 30)

	caps := dayCaps{}
	res := processPool([]*models.BacklogItem{done, pending}, 30, &caps, testDay(1))
	assert.Equal(t, 1, res.completed)
	assert.Equal(t, models.StatusCompleted, pending.Status)
}

func TestAllocateCapacity(t *testing.T) {
	budget, err := allocateCapacity(models.DailyCapacity{
		Date:                 testDay(1),
		BacklogCapacityHours: 4,
		NewWorkCapacityHours: 2,
		ProductivityModifier: 0.5,
		MaxItemsPerDay:       10,
	})
	assert.NoError(t, err)
	assert.Equal(t, 120.0, budget.backlogMinutes)
	assert.Equal(t, 60.0, budget.newWorkMinutes)
	assert.Equal(t, 10, budget.maxItems)
}
