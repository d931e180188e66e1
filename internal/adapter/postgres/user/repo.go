// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres"
	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

const table = "users"

var columns = []string{"id", "username", "full_name", "role", "password_hash", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	FullName     string    `db:"full_name"`
	Role         string    `db:"role"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r row) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Username:     r.Username,
		FullName:     r.FullName,
		Role:         domain.UserRole(r.Role),
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := rw.toDomain()
	return &u, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"username": username})

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	u := rw.toDomain()
	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// A duplicate username yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	insert := postgres.Builder().Insert(table).
		Columns("username", "full_name", "role", "password_hash", "created_at").
		Values(u.Username, u.FullName, string(u.Role), u.PasswordHash, u.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var rw row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, insert); err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	created := rw.toDomain()
	return &created, nil
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	return postgres.CountRows(ctx, postgres.QuerierFromCtx(ctx, r.db), table)
}

// CountCreatedBetween counts users created in (after, until].
func (r *Repo) CountCreatedBetween(ctx context.Context, after, until time.Time) (int, error) {
	return postgres.CountCreatedBetween(ctx, postgres.QuerierFromCtx(ctx, r.db), table, after, until)
}
