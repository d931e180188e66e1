package finance

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

type financeRepo interface {
	ListRevenue(ctx context.Context, dr domain.DateRange) ([]domain.Revenue, error)
	ListExpenses(ctx context.Context, dr domain.DateRange) ([]domain.Expense, error)
	CreateRevenue(ctx context.Context, rev domain.Revenue) (*domain.Revenue, error)
	CreateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error)
	UpdateRevenue(ctx context.Context, id int64, patch domain.RevenuePatch) (*domain.Revenue, error)
	UpdateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error)
	DeleteRevenue(ctx context.Context, id int64) error
	DeleteExpense(ctx context.Context, id int64) error
}

// Service lists, records, corrects and removes revenue and expenses.
type Service struct {
	records  financeRepo
	validate *validator.Validate
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new finance service.
func NewService(log *slog.Logger, records financeRepo) *Service {
	return &Service{
		records:  records,
		validate: newValidator(),
		now:      time.Now,
		log:      log.With("service", "finance"),
	}
}
