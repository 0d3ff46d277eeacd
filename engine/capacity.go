package engine

import (
	"fmt"

	apperrors "backlog-sim/errors"
	"backlog-sim/models"
)

// dayBudget is one day's effective processing budget after the productivity
// modifier, in minutes, plus the item-count caps. Hours and counts are
// independent constraints; selection stops when either runs out.
type dayBudget struct {
	backlogMinutes float64
	newWorkMinutes float64
	maxItems       int // 0 = uncapped
	maxComplex     int // 0 = uncapped
}

// allocateCapacity splits one day's capacity record into the effective
// backlog and new-work budgets. A negative effective budget indicates a
// configuration or implementation bug and aborts the run rather than being
// clamped.
func allocateCapacity(c models.DailyCapacity) (dayBudget, error) {
	b := dayBudget{
		backlogMinutes: c.BacklogCapacityHours * c.ProductivityModifier * 60,
		newWorkMinutes: c.NewWorkCapacityHours * c.ProductivityModifier * 60,
		maxItems:       c.MaxItemsPerDay,
		maxComplex:     c.MaxComplexItemsPerDay,
	}
	if b.backlogMinutes < 0 || b.newWorkMinutes < 0 {
		return dayBudget{}, fmt.Errorf("%w: negative effective capacity on %s",
			apperrors.ErrInternalInvariant, c.Date.Format("2006-01-02"))
	}
	return b, nil
}
