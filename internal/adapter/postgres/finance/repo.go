// Package finance implements the revenue and expense repositories using PostgreSQL.
package finance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres"
	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

const (
	revenueTable = "revenue"
	expenseTable = "expenses"
)

var (
	revenueColumns = []string{"id", "source", "amount", "date", "description"}
	expenseColumns = []string{"id", "category", "amount", "date", "description"}
)

// Repo provides financial record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new finance repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type revenueRow struct {
	ID          int64     `db:"id"`
	Source      string    `db:"source"`
	Amount      float64   `db:"amount"`
	Date        time.Time `db:"date"`
	Description *string   `db:"description"`
}

type expenseRow struct {
	ID          int64     `db:"id"`
	Category    string    `db:"category"`
	Amount      float64   `db:"amount"`
	Date        time.Time `db:"date"`
	Description *string   `db:"description"`
}

func (r revenueRow) toDomain() domain.Revenue {
	return domain.Revenue{ID: r.ID, Source: r.Source, Amount: r.Amount, Date: r.Date.UTC(), Description: r.Description}
}

func (r expenseRow) toDomain() domain.Expense {
	return domain.Expense{ID: r.ID, Category: r.Category, Amount: r.Amount, Date: r.Date.UTC(), Description: r.Description}
}

// inRange restricts a query to the inclusive date range; nil bounds are open.
func inRange(query squirrel.SelectBuilder, dr domain.DateRange) squirrel.SelectBuilder {
	if dr.Start != nil {
		query = query.Where(squirrel.GtOrEq{"date": *dr.Start})
	}
	if dr.End != nil {
		query = query.Where(squirrel.LtOrEq{"date": *dr.End})
	}
	return query.OrderBy("date DESC", "id DESC")
}

// ListRevenue returns revenue records within the range, newest date first.
func (r *Repo) ListRevenue(ctx context.Context, dr domain.DateRange) ([]domain.Revenue, error) {
	query := inRange(postgres.Builder().Select(revenueColumns...).From(revenueTable), dr)

	var rows []revenueRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "revenue", nil)
	}

	out := make([]domain.Revenue, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ListExpenses returns expense records within the range, newest date first.
func (r *Repo) ListExpenses(ctx context.Context, dr domain.DateRange) ([]domain.Expense, error) {
	query := inRange(postgres.Builder().Select(expenseColumns...).From(expenseTable), dr)

	var rows []expenseRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "expense", nil)
	}

	out := make([]domain.Expense, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// CreateRevenue inserts a revenue record.
func (r *Repo) CreateRevenue(ctx context.Context, rev domain.Revenue) (*domain.Revenue, error) {
	insert := postgres.Builder().Insert(revenueTable).
		Columns("source", "amount", "date", "description").
		Values(rev.Source, rev.Amount, rev.Date, rev.Description).
		Suffix("RETURNING " + strings.Join(revenueColumns, ", "))

	var rw revenueRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, insert); err != nil {
		return nil, postgres.MapError(err, "revenue", nil)
	}

	created := rw.toDomain()
	return &created, nil
}

// CreateExpense inserts an expense record.
func (r *Repo) CreateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error) {
	insert := postgres.Builder().Insert(expenseTable).
		Columns("category", "amount", "date", "description").
		Values(e.Category, e.Amount, e.Date, e.Description).
		Suffix("RETURNING " + strings.Join(expenseColumns, ", "))

	var rw expenseRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, insert); err != nil {
		return nil, postgres.MapError(err, "expense", nil)
	}

	created := rw.toDomain()
	return &created, nil
}

// UpdateRevenue applies the non-nil fields of patch to revenue record id.
func (r *Repo) UpdateRevenue(ctx context.Context, id int64, patch domain.RevenuePatch) (*domain.Revenue, error) {
	set := make(map[string]any, 4)
	if patch.Source != nil {
		set["source"] = *patch.Source
	}
	if patch.Amount != nil {
		set["amount"] = *patch.Amount
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	update := postgres.Builder().Update(revenueTable).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(revenueColumns, ", "))

	var rw revenueRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, update); err != nil {
		return nil, postgres.MapError(err, "revenue", id)
	}

	updated := rw.toDomain()
	return &updated, nil
}

// UpdateExpense overwrites every field of expense e.ID.
func (r *Repo) UpdateExpense(ctx context.Context, e domain.Expense) (*domain.Expense, error) {
	update := postgres.Builder().Update(expenseTable).
		Set("category", e.Category).
		Set("amount", e.Amount).
		Set("date", e.Date).
		Set("description", e.Description).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix("RETURNING " + strings.Join(expenseColumns, ", "))

	var rw expenseRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, update); err != nil {
		return nil, postgres.MapError(err, "expense", e.ID)
	}

	updated := rw.toDomain()
	return &updated, nil
}

// DeleteRevenue removes revenue record id.
func (r *Repo) DeleteRevenue(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, revenueTable, "revenue", id)
}

// DeleteExpense removes expense record id.
func (r *Repo) DeleteExpense(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, expenseTable, "expense", id)
}

func (r *Repo) deleteByID(ctx context.Context, table, entity string, id int64) error {
	stmt := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}
