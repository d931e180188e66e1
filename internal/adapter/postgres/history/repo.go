// Package history implements the append-only content history repository.
package history

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres"
	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

const table = "content_history"

var columns = []string{"id", "content_id", "status", "notes", "created_by", "created_at"}

// Repo provides content history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        int64     `db:"id"`
	ContentID int64     `db:"content_id"`
	Status    string    `db:"status"`
	Notes     *string   `db:"notes"`
	CreatedBy int64     `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.ContentHistoryEntry {
	return domain.ContentHistoryEntry{
		ID:        r.ID,
		ContentID: r.ContentID,
		Status:    domain.ContentStatus(r.Status),
		Notes:     r.Notes,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

// Create appends a history entry.
func (r *Repo) Create(ctx context.Context, e domain.ContentHistoryEntry) (*domain.ContentHistoryEntry, error) {
	insert := postgres.Builder().Insert(table).
		Columns("content_id", "status", "notes", "created_by", "created_at").
		Values(e.ContentID, string(e.Status), e.Notes, e.CreatedBy, e.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, insert); err != nil {
		return nil, postgres.MapError(err, "content_history", nil)
	}

	created := rw.toDomain()
	return &created, nil
}

// ListByContent returns the history of one item, newest first.
func (r *Repo) ListByContent(ctx context.Context, contentID int64) ([]domain.ContentHistoryEntry, error) {
	query := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"content_id": contentID}).
		OrderBy("created_at DESC", "id DESC")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "content_history", contentID)
	}

	entries := make([]domain.ContentHistoryEntry, len(rows))
	for i, rw := range rows {
		entries[i] = rw.toDomain()
	}
	return entries, nil
}

// DeleteByContent removes every history row of an item and reports how many
// were removed.
func (r *Repo) DeleteByContent(ctx context.Context, contentID int64) (int64, error) {
	stmt := postgres.Builder().Delete(table).Where(squirrel.Eq{"content_id": contentID})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return 0, postgres.MapError(err, "content_history", contentID)
	}
	return tag.RowsAffected(), nil
}
