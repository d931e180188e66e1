package testhelper

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	postgres "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres"
)

// ExternalDSNEnv names a database to run integration tests against instead of
// a container. Migrations are applied to it as well.
const ExternalDSNEnv = "PORTAL_TEST_DSN"

var (
	dsnOnce sync.Once
	testDSN string
	dsnErr  error
)

// SetupTestDB returns a pool on a migrated portal database. The database is
// prepared once per test binary; each caller gets its own pool, closed on
// cleanup. Skipped under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("integration test: requires postgres")
	}

	dsnOnce.Do(func() {
		testDSN, dsnErr = prepareDatabase()
	})
	if dsnErr != nil {
		t.Fatalf("testhelper: prepare database: %v", dsnErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, testDSN)
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func prepareDatabase() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv(ExternalDSNEnv)
	if dsn == "" {
		var err error
		if dsn, err = startPostgres(ctx); err != nil {
			return "", err
		}
	}

	if err := postgres.Migrate(ctx, dsn, nil); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return dsn, nil
}

// startPostgres runs a throwaway container. It is reaped when the test
// process exits.
func startPostgres(ctx context.Context) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "portal",
				"POSTGRES_PASSWORD": "portal",
				"POSTGRES_DB":       "portal_test",
				"TZ":                "UTC",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("container endpoint: %w", err)
	}

	return fmt.Sprintf("postgres://portal:portal@%s/portal_test?sslmode=disable", endpoint), nil
}
