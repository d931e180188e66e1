// Package workflow implements the workflow definition repository using PostgreSQL.
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres"
	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

const table = "workflows"

var columns = []string{"id", "name", "content_type", "steps", "created_at", "updated_at"}

// Repo provides workflow definition persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new workflow repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	ContentType string    `db:"content_type"`
	Steps       []byte    `db:"steps"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() (domain.WorkflowDefinition, error) {
	var steps []string
	if err := json.Unmarshal(r.Steps, &steps); err != nil {
		return domain.WorkflowDefinition{}, fmt.Errorf("workflow %d: decode steps: %w", r.ID, err)
	}
	return domain.WorkflowDefinition{
		ID:          r.ID,
		Name:        r.Name,
		ContentType: domain.ContentType(r.ContentType),
		Steps:       steps,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}, nil
}

func encodeSteps(steps []string) ([]byte, error) {
	if steps == nil {
		steps = []string{}
	}
	b, err := json.Marshal(steps)
	if err != nil {
		return nil, fmt.Errorf("encode steps: %w", err)
	}
	return b, nil
}

func toDomainList(rows []row) ([]domain.WorkflowDefinition, error) {
	out := make([]domain.WorkflowDefinition, 0, len(rows))
	for _, rw := range rows {
		wf, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, wf)
	}
	return out, nil
}

// Create inserts a workflow definition.
func (r *Repo) Create(ctx context.Context, wf domain.WorkflowDefinition) (*domain.WorkflowDefinition, error) {
	steps, err := encodeSteps(wf.Steps)
	if err != nil {
		return nil, err
	}

	insert := postgres.Builder().Insert(table).
		Columns("name", "content_type", "steps", "created_at", "updated_at").
		Values(wf.Name, string(wf.ContentType), steps, wf.CreatedAt, wf.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.getOne(ctx, insert, nil)
}

// List returns all definitions, or only those for contentType when non-nil,
// ordered by id.
func (r *Repo) List(ctx context.Context, contentType *domain.ContentType) ([]domain.WorkflowDefinition, error) {
	query := postgres.Builder().Select(columns...).From(table)
	if contentType != nil {
		query = query.Where(squirrel.Eq{"content_type": string(*contentType)})
	}
	query = query.OrderBy("id ASC")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "workflow", nil)
	}
	return toDomainList(rows)
}

// GetByID returns a definition by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.WorkflowDefinition, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	return r.getOne(ctx, query, id)
}

// LatestByType returns the most recently updated definition for a content type.
func (r *Repo) LatestByType(ctx context.Context, contentType domain.ContentType) (*domain.WorkflowDefinition, error) {
	query := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"content_type": string(contentType)}).
		OrderBy("updated_at DESC", "id DESC").
		Limit(1)
	return r.getOne(ctx, query, contentType)
}

// Update overwrites name, content type and steps of an existing definition.
func (r *Repo) Update(ctx context.Context, wf domain.WorkflowDefinition) (*domain.WorkflowDefinition, error) {
	steps, err := encodeSteps(wf.Steps)
	if err != nil {
		return nil, err
	}

	update := postgres.Builder().Update(table).
		Set("name", wf.Name).
		Set("content_type", string(wf.ContentType)).
		Set("steps", steps).
		Set("updated_at", wf.UpdatedAt).
		Where(squirrel.Eq{"id": wf.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.getOne(ctx, update, wf.ID)
}

// Delete removes a definition.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	stmt := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), stmt)
	if err != nil {
		return postgres.MapError(err, "workflow", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workflow %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer, id any) (*domain.WorkflowDefinition, error) {
	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query); err != nil {
		return nil, postgres.MapError(err, "workflow", id)
	}
	wf, err := rw.toDomain()
	if err != nil {
		return nil, err
	}
	return &wf, nil
}
