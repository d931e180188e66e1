package finance

import "time"

// CreateRevenueInput holds the parameters for recording revenue.
type CreateRevenueInput struct {
	Source      string    `field:"source" validate:"required,max=200"`
	Amount      float64   `field:"amount" validate:"gt=0"`
	Date        time.Time `field:"date" validate:"required"`
	Description *string   `field:"description" validate:"omitnil,max=1000"`
}

// CreateExpenseInput holds the parameters for recording an expense. A nil
// Date means today.
type CreateExpenseInput struct {
	Category    string     `field:"category" validate:"required,max=200"`
	Amount      float64    `field:"amount" validate:"gt=0"`
	Date        *time.Time `field:"date"`
	Description *string    `field:"description" validate:"omitnil,max=1000"`
}

// UpdateRevenueInput changes the non-nil fields of a revenue record.
type UpdateRevenueInput struct {
	ID          int64      `field:"id" validate:"gt=0"`
	Source      *string    `field:"source" validate:"omitnil,min=1,max=200"`
	Amount      *float64   `field:"amount" validate:"omitnil,gt=0"`
	Date        *time.Time `field:"date"`
	Description *string    `field:"description" validate:"omitnil,max=1000"`
}

// UpdateExpenseInput replaces an expense. A nil Date means today.
type UpdateExpenseInput struct {
	ID          int64      `field:"id" validate:"gt=0"`
	Category    string     `field:"category" validate:"required,max=200"`
	Amount      float64    `field:"amount" validate:"gt=0"`
	Date        *time.Time `field:"date"`
	Description *string    `field:"description" validate:"omitnil,max=1000"`
}
