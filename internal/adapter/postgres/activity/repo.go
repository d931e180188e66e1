// Package activity implements the append-only activity log repository.
package activity

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres"
	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

const table = "activities"

var columns = []string{"id", "type", "description", "user_id", "document_id", "created_at"}

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          int64     `db:"id"`
	Type        string    `db:"type"`
	Description string    `db:"description"`
	UserID      int64     `db:"user_id"`
	DocumentID  *int64    `db:"document_id"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() domain.ActivityEntry {
	return domain.ActivityEntry{
		ID:          r.ID,
		Type:        domain.ActivityType(r.Type),
		Description: r.Description,
		UserID:      r.UserID,
		DocumentID:  r.DocumentID,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

// Create appends an activity entry and returns it with its assigned ID.
func (r *Repo) Create(ctx context.Context, e domain.ActivityEntry) (*domain.ActivityEntry, error) {
	insert := postgres.Builder().Insert(table).
		Columns("type", "description", "user_id", "document_id", "created_at").
		Values(string(e.Type), e.Description, e.UserID, e.DocumentID, e.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, insert); err != nil {
		return nil, postgres.MapError(err, "activity", nil)
	}

	created := rw.toDomain()
	return &created, nil
}

// Log appends an activity entry without returning it.
// Satisfies the activityLogger interfaces of the services.
func (r *Repo) Log(ctx context.Context, e domain.ActivityEntry) error {
	_, err := r.Create(ctx, e)
	return err
}

// Recent returns the newest limit entries, newest first.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	query := postgres.Builder().Select(columns...).From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "activity", nil)
	}

	entries := make([]domain.ActivityEntry, len(rows))
	for i, rw := range rows {
		entries[i] = rw.toDomain()
	}
	return entries, nil
}

// CountDistinctUsersBetween counts distinct users with at least one activity
// in the half-open window (after, until].
func (r *Repo) CountDistinctUsersBetween(ctx context.Context, after, until time.Time) (int, error) {
	query := postgres.Builder().Select("COUNT(DISTINCT user_id)").From(table).
		Where(squirrel.Gt{"created_at": after}).
		Where(squirrel.LtOrEq{"created_at": until})

	n, err := postgres.Count(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return 0, postgres.MapError(err, "activity", nil)
	}
	return n, nil
}
