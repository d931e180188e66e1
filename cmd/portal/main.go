// Command portal runs the company portal API and its maintenance tasks.
//
// Usage:
//
//	portal serve
//	portal migrate
//	portal create-admin --username=jane --name="Jane Doe" --password=...
//	portal seed --phases=users,documents --seed-config=seed.yaml
//	portal issue-token --user-id=1 --role=admin --name="Jane Doe"
//	portal version
//
// Configuration comes from --config or CONFIG_PATH (YAML) and environment
// variables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sharankona/CompanyPortal-sub000/internal/adapter/postgres"
	"github.com/sharankona/CompanyPortal-sub000/internal/app"
	"github.com/sharankona/CompanyPortal-sub000/internal/app/seeder"
	"github.com/sharankona/CompanyPortal-sub000/internal/auth"
	"github.com/sharankona/CompanyPortal-sub000/internal/config"
	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/internal/service/user"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "portal",
	Short:        "Company portal backend",
	SilenceUsage: true,
}

var configPath string

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return app.Run(ctx, cfg)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log)

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Println("Migrations applied.")
		return nil
	},
}

var adminFlags struct {
	username string
	fullName string
	password string
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log)

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		u, err := app.NewUserService(logger, pool).CreateAdmin(ctx, user.CreateAdminInput{
			Username: adminFlags.username,
			FullName: adminFlags.fullName,
			Password: adminFlags.password,
		})
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}

		fmt.Printf("Admin %q created with id %d.\n", u.Username, u.ID)
		return nil
	},
}

var seedFlags struct {
	configPath string
	phases     []string
	dryRun     bool
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log)

		seedCfg, err := seeder.LoadConfig(seedFlags.configPath)
		if err != nil {
			return err
		}
		if seedFlags.dryRun {
			seedCfg.DryRun = true
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		p := seeder.NewPipeline(logger, app.NewSeedRepos(pool), *seedCfg)
		if err := p.Run(ctx, seedFlags.phases); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if p.HasErrors() {
			return fmt.Errorf("seed: one or more phases failed")
		}
		return nil
	},
}

var tokenFlags struct {
	userID int64
	role   string
	name   string
	ttl    time.Duration
}

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Print a signed access token for local testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if tokenFlags.userID <= 0 {
			return fmt.Errorf("--user-id must be positive")
		}
		role := domain.UserRole(tokenFlags.role)
		if !role.IsValid() {
			return fmt.Errorf("--role must be %q or %q", domain.UserRoleUser, domain.UserRoleAdmin)
		}

		ttl := cfg.Auth.AccessTokenTTL
		if tokenFlags.ttl > 0 {
			ttl = tokenFlags.ttl
		}
		jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl)

		token, err := jwt.GenerateAccessToken(auth.Identity{
			UserID: tokenFlags.userID,
			Role:   string(role),
			Name:   tokenFlags.name,
		})
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		fmt.Println(token)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(app.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file; overrides CONFIG_PATH")

	createAdminCmd.Flags().StringVar(&adminFlags.username, "username", "", "login name")
	createAdminCmd.Flags().StringVar(&adminFlags.fullName, "name", "", "display name")
	createAdminCmd.Flags().StringVar(&adminFlags.password, "password", "", "initial password")
	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("password")

	seedCmd.Flags().StringVar(&seedFlags.configPath, "seed-config", "", "seeder YAML config; environment only when empty")
	seedCmd.Flags().StringSliceVar(&seedFlags.phases, "phases", nil, "phases to run (users, documents, announcements, activity, finance, workflows)")
	seedCmd.Flags().BoolVar(&seedFlags.dryRun, "dry-run", false, "report what would be inserted without writing")

	issueTokenCmd.Flags().Int64Var(&tokenFlags.userID, "user-id", 0, "subject user id")
	issueTokenCmd.Flags().StringVar(&tokenFlags.role, "role", string(domain.UserRoleUser), "user or admin")
	issueTokenCmd.Flags().StringVar(&tokenFlags.name, "name", "", "display name used in activity entries")
	issueTokenCmd.Flags().DurationVar(&tokenFlags.ttl, "ttl", 0, "token lifetime; defaults to the configured access TTL")
	_ = issueTokenCmd.MarkFlagRequired("user-id")

	rootCmd.AddCommand(serveCmd, migrateCmd, createAdminCmd, seedCmd, issueTokenCmd, versionCmd)
}
