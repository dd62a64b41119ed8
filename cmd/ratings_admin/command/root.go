package command

// root.go defines the root command for ratings_admin and the wiring
// shared by every subcommand: configuration, logging and the rating service.

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/rating_registry/internal/core/ports/services"
	"github.com/SscSPs/rating_registry/internal/core/services"
	"github.com/SscSPs/rating_registry/internal/platform/config"
	"github.com/SscSPs/rating_registry/internal/platform/contextx"
	"github.com/SscSPs/rating_registry/internal/platform/logging"
	"github.com/SscSPs/rating_registry/internal/repositories/database/pgsql"
	"github.com/SscSPs/rating_registry/pkg/database"
	"github.com/spf13/cobra"
)

// serviceOpener connects the rating service to its storage. The returned
// func releases whatever the service holds.
type serviceOpener func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portssvc.RatingSvcFacade, func(), error)

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	open    serviceOpener
	migrate func(databaseURL string, logger *slog.Logger) (bool, error)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	rootCmd := newRootCmd(&app{open: openDatabaseService, migrate: database.RunMigrations})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ratings_admin",
		Short: "ratings_admin - credit rating registry administration",
		Long: `ratings_admin maintains the credit rating scale stored in PostgreSQL.
Each rating row holds the Moody's, S&P and Fitch notations of one grade and a
unique rank; ranks 1 to 12 are investment grade, 13 and above speculative.

Configuration is read from the environment (or a .env file):
  PGSQL_URL, IS_PRODUCTION, LOG_LEVEL, ENABLE_DB_CHECK, RUN_MIGRATIONS, ACTOR_ID`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.AddCommand(
		newMigrateCmd(a),
		newSaveCmd(a),
		newGetCmd(a),
		newDeleteCmd(a),
		newListCmd(a),
	)
	return rootCmd
}

// setup loads configuration once and attaches the logger and actor to the
// command context.
func (a *app) setup(cmd *cobra.Command) error {
	if a.cfg == nil {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		a.cfg = cfg
	}
	if a.logger == nil {
		a.logger = logging.New(os.Stderr, a.cfg.IsProduction, a.cfg.LogLevel)
		slog.SetDefault(a.logger)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = contextx.WithLogger(ctx, a.logger)
	ctx = contextx.WithActorID(ctx, a.cfg.ActorID)
	cmd.SetContext(ctx)
	return nil
}

// withService opens the rating service, runs fn and releases the service.
func (a *app) withService(ctx context.Context, fn func(svc portssvc.RatingSvcFacade) error) error {
	svc, release, err := a.open(ctx, a.cfg, a.logger)
	if err != nil {
		return err
	}
	defer release()
	return fn(svc)
}

func openDatabaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portssvc.RatingSvcFacade, func(), error) {
	if cfg.RunMigrations {
		if _, err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return nil, nil, err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	logger.Debug("Database connection pool established.")

	container := services.NewServiceContainer(pgsql.NewRepositoryProvider(dbPool))
	return container.Rating, func() { database.ClosePgxPool(dbPool) }, nil
}
