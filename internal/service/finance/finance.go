package finance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/pkg/ctxutil"
)

// ListRevenue returns revenue within the date range, newest first.
func (s *Service) ListRevenue(ctx context.Context, dr domain.DateRange) ([]domain.Revenue, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	list, err := s.records.ListRevenue(ctx, dr)
	if err != nil {
		return nil, fmt.Errorf("list revenue: %w", err)
	}
	if list == nil {
		list = []domain.Revenue{}
	}
	return list, nil
}

// ListExpenses returns expenses within the date range, newest first.
func (s *Service) ListExpenses(ctx context.Context, dr domain.DateRange) ([]domain.Expense, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	list, err := s.records.ListExpenses(ctx, dr)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	if list == nil {
		list = []domain.Expense{}
	}
	return list, nil
}

// CreateRevenue records revenue.
func (s *Service) CreateRevenue(ctx context.Context, input CreateRevenueInput) (*domain.Revenue, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	input.Source = strings.TrimSpace(input.Source)
	if err := s.validate.StructCtx(ctx, input); err != nil {
		return nil, toDomainError(err)
	}

	rev, err := s.records.CreateRevenue(ctx, domain.Revenue{
		Source:      input.Source,
		Amount:      input.Amount,
		Date:        dateOnly(input.Date),
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("create revenue: %w", err)
	}

	s.log.InfoContext(ctx, "revenue recorded",
		slog.Int64("user_id", userID),
		slog.Int64("revenue_id", rev.ID),
		slog.Float64("amount", rev.Amount),
	)
	return rev, nil
}

// CreateExpense records an expense, dated today when no date is given.
func (s *Service) CreateExpense(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	input.Category = strings.TrimSpace(input.Category)
	if err := s.validate.StructCtx(ctx, input); err != nil {
		return nil, toDomainError(err)
	}

	date := s.now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	exp, err := s.records.CreateExpense(ctx, domain.Expense{
		Category:    input.Category,
		Amount:      input.Amount,
		Date:        dateOnly(date),
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	s.log.InfoContext(ctx, "expense recorded",
		slog.Int64("user_id", userID),
		slog.Int64("expense_id", exp.ID),
		slog.Float64("amount", exp.Amount),
	)
	return exp, nil
}

// UpdateRevenue changes the fields set in input. An input that sets nothing is
// rejected.
func (s *Service) UpdateRevenue(ctx context.Context, input UpdateRevenueInput) (*domain.Revenue, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if input.Source != nil {
		src := strings.TrimSpace(*input.Source)
		input.Source = &src
	}
	if err := s.validate.StructCtx(ctx, input); err != nil {
		return nil, toDomainError(err)
	}

	patch := domain.RevenuePatch{
		Source:      input.Source,
		Amount:      input.Amount,
		Description: input.Description,
	}
	if input.Date != nil {
		d := dateOnly(*input.Date)
		patch.Date = &d
	}
	if patch.IsEmpty() {
		return nil, domain.NewValidationError("body", "no fields to update")
	}

	rev, err := s.records.UpdateRevenue(ctx, input.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("update revenue: %w", err)
	}

	s.log.InfoContext(ctx, "revenue updated",
		slog.Int64("user_id", userID),
		slog.Int64("revenue_id", rev.ID),
	)
	return rev, nil
}

// UpdateExpense replaces an expense, dated today when no date is given.
func (s *Service) UpdateExpense(ctx context.Context, input UpdateExpenseInput) (*domain.Expense, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	input.Category = strings.TrimSpace(input.Category)
	if err := s.validate.StructCtx(ctx, input); err != nil {
		return nil, toDomainError(err)
	}

	date := s.now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	exp, err := s.records.UpdateExpense(ctx, domain.Expense{
		ID:          input.ID,
		Category:    input.Category,
		Amount:      input.Amount,
		Date:        dateOnly(date),
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}

	s.log.InfoContext(ctx, "expense updated",
		slog.Int64("user_id", userID),
		slog.Int64("expense_id", exp.ID),
	)
	return exp, nil
}

// DeleteRevenue removes a revenue record.
func (s *Service) DeleteRevenue(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.records.DeleteRevenue(ctx, id); err != nil {
		return fmt.Errorf("delete revenue: %w", err)
	}
	s.log.InfoContext(ctx, "revenue deleted", slog.Int64("user_id", userID), slog.Int64("revenue_id", id))
	return nil
}

// DeleteExpense removes an expense.
func (s *Service) DeleteExpense(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.records.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	s.log.InfoContext(ctx, "expense deleted", slog.Int64("user_id", userID), slog.Int64("expense_id", id))
	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
