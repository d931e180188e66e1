package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the user role. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserAt(t, pool, time.Now().UTC())
}

// SeedUserAt creates a user whose created_at is the given instant.
func SeedUserAt(t *testing.T, pool *pgxpool.Pool, createdAt time.Time) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		Username:     "user-" + suffix,
		FullName:     "Test User " + suffix,
		Role:         domain.UserRoleUser,
		PasswordHash: "x",
		CreatedAt:    createdAt.Truncate(time.Microsecond),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, full_name, role, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		user.Username, user.FullName, string(user.Role), user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedDocument creates a document owned by createdBy at the given instant.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, createdBy int64, createdAt time.Time) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO documents (name, status, created_by, created_at, updated_at)
		 VALUES ($1, 'draft', $2, $3, $3) RETURNING id`,
		"doc-"+uniqueSuffix(), createdBy, createdAt,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument: %v", err)
	}
	return id
}

// SeedActivity appends an activity row for userID at the given instant.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, userID int64, createdAt time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO activities (type, description, user_id, created_at)
		 VALUES ('document_created', 'seeded', $1, $2)`,
		userID, createdAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity: %v", err)
	}
}
