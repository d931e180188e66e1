package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres"
	activityrepo "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres/activity"
	announcementrepo "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres/announcement"
	contentrepo "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres/content"
	documentrepo "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres/document"
	financerepo "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres/finance"
	historyrepo "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres/history"
	userrepo "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres/user"
	workflowrepo "github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres/workflow"
	"github.com/sharankona/CompanyPortal-sub000/internal/app/seeder"
	"github.com/sharankona/CompanyPortal-sub000/internal/auth"
	"github.com/sharankona/CompanyPortal-sub000/internal/config"
	"github.com/sharankona/CompanyPortal-sub000/internal/service/content"
	"github.com/sharankona/CompanyPortal-sub000/internal/service/dashboard"
	"github.com/sharankona/CompanyPortal-sub000/internal/service/finance"
	"github.com/sharankona/CompanyPortal-sub000/internal/service/user"
	"github.com/sharankona/CompanyPortal-sub000/internal/service/workflow"
	"github.com/sharankona/CompanyPortal-sub000/internal/transport/middleware"
	"github.com/sharankona/CompanyPortal-sub000/internal/transport/rest"
)

// Run starts the HTTP API and blocks until ctx is cancelled, then shuts the
// server down gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("commit", Commit),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("strict_transitions", cfg.Content.StrictTransitions),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := NewHandler(cfg, logger, pool, limiter)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// NewHandler assembles repositories, services and transport into the
// server's root handler.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, limiter *middleware.RateLimiter) http.Handler {
	txm := postgres.NewTxManager(pool)

	items := contentrepo.New(pool)
	history := historyrepo.New(pool)
	workflows := workflowrepo.New(pool)
	activity := activityrepo.New(pool)
	users := userrepo.New(pool)
	documents := documentrepo.New(pool)
	announcements := announcementrepo.New(pool)
	records := financerepo.New(pool)

	var opts []content.Option
	if cfg.Content.StrictTransitions {
		opts = append(opts, content.WithPolicy(content.NewStrictPolicy(workflows)))
	}

	contentSvc := content.NewService(logger, items, history, activity, txm, opts...)
	workflowSvc := workflow.NewService(logger, workflows, activity, txm)
	dashboardSvc := dashboard.NewService(logger, documents, users, announcements, activity, cfg.Dashboard.ActivityFeedMax)
	financeSvc := finance.NewService(logger, records)

	var statsLimit func(http.Handler) http.Handler
	if cfg.Dashboard.RateLimitPerMinute > 0 {
		statsLimit = limiter.Limit("dashboard_stats", cfg.Dashboard.RateLimitPerMinute)
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(BuildVersion(), rest.HealthCheck{Name: "database", Target: pool}),
		Content:   rest.NewContentHandler(contentSvc, logger),
		Workflow:  rest.NewWorkflowHandler(workflowSvc, logger),
		Dashboard: rest.NewDashboardHandler(dashboardSvc, logger),
		Finance:   rest.NewFinanceHandler(financeSvc, logger),
	}, statsLimit)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.ForPrefix("/api/", middleware.Auth(jwt)),
	)(mux)
}

// NewUserService builds the user service over the pool, for CLI commands.
func NewUserService(logger *slog.Logger, pool *pgxpool.Pool) *user.Service {
	return user.NewService(logger, userrepo.New(pool), activityrepo.New(pool), postgres.NewTxManager(pool))
}

// NewSeedRepos returns the stores the demo data seeder writes to.
func NewSeedRepos(pool *pgxpool.Pool) seeder.Repos {
	return seeder.Repos{
		Users:         userrepo.New(pool),
		Documents:     documentrepo.New(pool),
		Announcements: announcementrepo.New(pool),
		Activity:      activityrepo.New(pool),
		Finance:       financerepo.New(pool),
		Workflows:     workflowrepo.New(pool),
	}
}
