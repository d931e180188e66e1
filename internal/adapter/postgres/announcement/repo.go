// Package announcement implements the read-side announcement repository used
// by the dashboard.
package announcement

import (
	"context"
	"strings"
	"time"

	postgres "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres"
	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

const table = "announcements"

// Repo provides announcement counts backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new announcement repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Category  string    `db:"category"`
	CreatedBy int64     `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

// Create inserts an announcement. Used by seeding and tests.
func (r *Repo) Create(ctx context.Context, a domain.Announcement) (*domain.Announcement, error) {
	cols := []string{"id", "title", "category", "created_by", "created_at"}
	insert := postgres.Builder().Insert(table).
		Columns("title", "category", "created_by", "created_at").
		Values(a.Title, a.Category, a.CreatedBy, a.CreatedAt).
		Suffix("RETURNING " + strings.Join(cols, ", "))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, insert); err != nil {
		return nil, postgres.MapError(err, "announcement", nil)
	}

	return &domain.Announcement{
		ID:        rw.ID,
		Title:     rw.Title,
		Category:  rw.Category,
		CreatedBy: rw.CreatedBy,
		CreatedAt: rw.CreatedAt.UTC(),
	}, nil
}

// Count returns the total number of announcements.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.CountRows(ctx, postgres.QuerierFromCtx(ctx, r.db), table)
}

// CountCreatedBetween counts announcements created in (after, until].
func (r *Repo) CountCreatedBetween(ctx context.Context, after, until time.Time) (int, error) {
	return postgres.CountCreatedBetween(ctx, postgres.QuerierFromCtx(ctx, r.db), table, after, until)
}
