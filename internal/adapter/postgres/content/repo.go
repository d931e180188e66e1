// Package content implements the content item repository using PostgreSQL.
package content

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
	table = "content_items"

	assigneeFK = "fk_content_items_assigned_to"
)

var columns = []string{
	"id", "title", "description", "content_type", "status",
	"assigned_to", "deadline", "created_by", "created_at", "updated_at",
}

// Repo provides content item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new content repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	ContentType string     `db:"content_type"`
	Status      string     `db:"status"`
	AssignedTo  *int64     `db:"assigned_to"`
	Deadline    *time.Time `db:"deadline"`
	CreatedBy   int64      `db:"created_by"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.ContentItem {
	item := domain.ContentItem{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		ContentType: domain.ContentType(r.ContentType),
		Status:      domain.ContentStatus(r.Status),
		AssignedTo:  r.AssignedTo,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
	if r.Deadline != nil {
		d := r.Deadline.UTC()
		item.Deadline = &d
	}
	return item
}

// List returns content items matching the filter, most recently updated first.
// Unset filter fields do not restrict the result.
func (r *Repo) List(ctx context.Context, f domain.ContentFilter) ([]domain.ContentItem, error) {
	query := postgres.Builder().Select(columns...).From(table)
	if f.ContentType != nil {
		query = query.Where(squirrel.Eq{"content_type": string(*f.ContentType)})
	}
	if f.Status != nil {
		query = query.Where(squirrel.Eq{"status": string(*f.Status)})
	}
	if f.AssignedTo != nil {
		query = query.Where(squirrel.Eq{"assigned_to": *f.AssignedTo})
	}
	query = query.OrderBy("updated_at DESC", "id DESC")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "content_item", nil)
	}

	items := make([]domain.ContentItem, len(rows))
	for i, rw := range rows {
		items[i] = rw.toDomain()
	}
	return items, nil
}

// GetByID returns a content item by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.ContentItem, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate returns a content item and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (*domain.ContentItem, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id int64, lock bool) (*domain.ContentItem, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query); err != nil {
		return nil, postgres.MapError(err, "content_item", id)
	}

	item := rw.toDomain()
	return &item, nil
}

// Create inserts a new content item and returns it with its assigned ID.
func (r *Repo) Create(ctx context.Context, item domain.ContentItem) (*domain.ContentItem, error) {
	insert := postgres.Builder().Insert(table).
		Columns("title", "description", "content_type", "status", "assigned_to", "deadline", "created_by", "created_at", "updated_at").
		Values(item.Title, item.Description, string(item.ContentType), string(item.Status),
			item.AssignedTo, item.Deadline, item.CreatedBy, item.CreatedAt, item.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, insert); err != nil {
		return nil, mapWriteError(err, nil)
	}

	created := rw.toDomain()
	return &created, nil
}

// Update overwrites the mutable fields of an existing item. created_by and
// created_at are never written.
func (r *Repo) Update(ctx context.Context, item domain.ContentItem) (*domain.ContentItem, error) {
	update := postgres.Builder().Update(table).
		Set("title", item.Title).
		Set("description", item.Description).
		Set("content_type", string(item.ContentType)).
		Set("status", string(item.Status)).
		Set("assigned_to", item.AssignedTo).
		Set("deadline", item.Deadline).
		Set("updated_at", item.UpdatedAt).
		Where(squirrel.Eq{"id": item.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, update); err != nil {
		return nil, mapWriteError(err, item.ID)
	}

	updated := rw.toDomain()
	return &updated, nil
}

// Delete removes a content item. History rows must be removed first.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	stmt := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, "content_item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("content_item %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// mapWriteError reports an assignee that is not a user as a validation error
// rather than a missing content item.
func mapWriteError(err error, id any) error {
	if postgres.IsForeignKeyViolation(err, assigneeFK) {
		return domain.NewValidationError("assignedTo", "unknown user")
	}
	return postgres.MapError(err, "content_item", id)
}
