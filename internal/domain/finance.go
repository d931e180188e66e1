package domain

import "time"

// Revenue is an income record. Date has no time-of-day component.
type Revenue struct {
	ID          int64
	Source      string
	Amount      float64
	Date        time.Time
	Description *string
}

// Expense is a spending record. Date has no time-of-day component.
type Expense struct {
	ID          int64
	Category    string
	Amount      float64
	Date        time.Time
	Description *string
}

// RevenuePatch is a partial update of a revenue record. A nil field keeps
// the stored value.
type RevenuePatch struct {
	Source      *string
	Amount      *float64
	Date        *time.Time
	Description *string
}

// IsEmpty reports whether the patch changes nothing.
func (p RevenuePatch) IsEmpty() bool {
	return p.Source == nil && p.Amount == nil && p.Date == nil && p.Description == nil
}
