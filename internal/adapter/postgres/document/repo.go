// Package document implements the read-side document repository used by the
// dashboard.
package document

import (
	"context"
	"strings"
	"time"

	postgres "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres"
	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

const table = "documents"

// Repo provides document counts backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new document repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Status    string    `db:"status"`
	CreatedBy int64     `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Create inserts a document. Used by seeding and tests.
func (r *Repo) Create(ctx context.Context, d domain.Document) (*domain.Document, error) {
	cols := []string{"id", "name", "status", "created_by", "created_at", "updated_at"}
	insert := postgres.Builder().Insert(table).
		Columns("name", "status", "created_by", "created_at", "updated_at").
		Values(d.Name, d.Status, d.CreatedBy, d.CreatedAt, d.UpdatedAt).
		Suffix("RETURNING " + strings.Join(cols, ", "))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, insert); err != nil {
		return nil, postgres.MapError(err, "document", nil)
	}

	return &domain.Document{
		ID:        rw.ID,
		Name:      rw.Name,
		Status:    rw.Status,
		CreatedBy: rw.CreatedBy,
		CreatedAt: rw.CreatedAt.UTC(),
		UpdatedAt: rw.UpdatedAt.UTC(),
	}, nil
}

// Count returns the total number of documents.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.CountRows(ctx, postgres.QuerierFromCtx(ctx, r.db), table)
}

// CountCreatedBetween counts documents created in (after, until].
func (r *Repo) CountCreatedBetween(ctx context.Context, after, until time.Time) (int, error) {
	return postgres.CountCreatedBetween(ctx, postgres.QuerierFromCtx(ctx, r.db), table, after, until)
}
