package engine

import (
	"testing"

	"backlog-sim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overflowProfile(ceiling int, strategy models.OverflowStrategy) models.BacklogPropagationProfile {
	p := DefaultProfile()
	p.MaxBacklogCapacity = &ceiling
	p.OverflowStrategy = strategy
	return p
}

func overflowBacklog() []*models.BacklogItem {
	mk := func(id string, p models.Priority, createdDay int) *models.BacklogItem {
		it := item(id, p, 0, 60)
		it.CreatedDate = testDay(createdDay)
		return it
	}
	return []*models.BacklogItem{
		mk("crit", models.PriorityCritical, 1),
		mk("high", models.PriorityHigh, 2),
		mk("med-old", models.PriorityMedium, 1),
		mk("med-new", models.PriorityMedium, 4),
		mk("low", models.PriorityLow, 3),
	}
}

func TestApplyOverflow_Strategies(t *testing.T) {
	tests := map[string]struct {
		strategy     models.OverflowStrategy
		wantStatuses map[string]models.ItemStatus
		wantResult   overflowResult
	}{
		"Reject": {
			strategy: models.OverflowReject,
			wantStatuses: map[string]models.ItemStatus{
				"low":     models.StatusRejected,
				"med-new": models.StatusRejected,
			},
			wantResult: overflowResult{rejected: 2},
		},
		"Defer": {
			strategy: models.OverflowDefer,
			wantStatuses: map[string]models.ItemStatus{
				"low":     models.StatusDeferred,
				"med-new": models.StatusDeferred,
			},
			wantResult: overflowResult{deferred: 2},
		},
		"Outsource": {
			strategy: models.OverflowOutsource,
			wantStatuses: map[string]models.ItemStatus{
				"low":     models.StatusOutsourced,
				"med-new": models.StatusOutsourced,
			},
			wantResult: overflowResult{outsourced: 2},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			backlog := overflowBacklog()
			res := applyOverflow(backlog, overflowProfile(3, tc.strategy), testDay(5))
			assert.Equal(t, tc.wantResult, res)

			for _, it := range backlog {
				want, overflowed := tc.wantStatuses[it.ID]
				if overflowed {
					assert.Equal(t, want, it.Status, it.ID)
				} else {
					assert.Equal(t, models.StatusPending, it.Status, "%s is protected", it.ID)
				}
			}
		})
	}
}

func TestApplyOverflow_EscalateRaisesPriorityKeepsItem(t *testing.T) {
	backlog := overflowBacklog()
	res := applyOverflow(backlog, overflowProfile(3, models.OverflowEscalate), testDay(5))
	assert.Equal(t, overflowResult{escalated: 2}, res)

	byID := map[string]*models.BacklogItem{}
	for _, it := range backlog {
		byID[it.ID] = it
	}
	assert.Equal(t, models.PriorityMedium, byID["low"].Priority)
	assert.Equal(t, models.PriorityHigh, byID["med-new"].Priority)
	assert.Equal(t, models.StatusPending, byID["low"].Status)
	assert.Nil(t, byID["low"].AgingDate, "escalation does not touch aging bookkeeping")
	assert.Equal(t, models.PriorityMedium, byID["med-old"].Priority, "protected item unchanged")
}

func TestApplyOverflow_DeferPushesDueDateOneDay(t *testing.T) {
	backlog := overflowBacklog()
	due := testDay(8)
	backlog[4].DueDate = &due // "low", first overflow candidate

	applyOverflow(backlog, overflowProfile(4, models.OverflowDefer), testDay(5))

	require.NotNil(t, backlog[4].DueDate)
	assert.Equal(t, testDay(9), *backlog[4].DueDate)
}

func TestApplyOverflow_NoCeilingNoOp(t *testing.T) {
	backlog := overflowBacklog()
	res := applyOverflow(backlog, DefaultProfile(), testDay(5))
	assert.Equal(t, overflowResult{}, res)
	for _, it := range backlog {
		assert.Equal(t, models.StatusPending, it.Status)
	}
}

func TestApplyOverflow_UnderCeilingNoOp(t *testing.T) {
	backlog := overflowBacklog()
	res := applyOverflow(backlog, overflowProfile(5, models.OverflowReject), testDay(5))
	assert.Equal(t, overflowResult{}, res)
}
