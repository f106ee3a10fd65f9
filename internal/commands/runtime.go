package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/roundup_ledger/internal/adapters/analytics"
	"github.com/SscSPs/roundup_ledger/internal/core/chart"
	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/SscSPs/roundup_ledger/internal/core/services"
	"github.com/SscSPs/roundup_ledger/internal/platform/config"
	"github.com/SscSPs/roundup_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/roundup_ledger/pkg/database"
)

// runtime is the database-backed application shared by serve, automap and snapshot.
type runtime struct {
	cfg      *config.Config
	logger   *slog.Logger
	services *portssvc.ServiceContainer
	close    func()
}

// openRuntime loads configuration, connects to Postgres and applies pending migrations.
func openRuntime(ctx context.Context, logger *slog.Logger) (*runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	logger.Info("Database connection pool established.")

	if _, err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		database.ClosePgxPool(dbPool)
		return nil, err
	}

	analyticsClient := analytics.NewClient(cfg.AnalyticsBaseURL, cfg.AnalyticsAPIToken, cfg.AnalyticsTimeout)
	repos := pgsql.NewRepositoryProvider(dbPool)

	return &runtime{
		cfg:      cfg,
		logger:   logger,
		services: services.NewServiceContainer(cfg, repos, analyticsClient),
		close:    func() { database.ClosePgxPool(dbPool) },
	}, nil
}

// seedChart returns the configured seed chart, or the built-in one.
func seedChart(path string) (*chart.Chart, error) {
	if path == "" {
		return chart.Default(), nil
	}
	c, err := chart.LoadYAML(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart seed file %s: %w", path, err)
	}
	return c, nil
}

// seedAccounts inserts the seed chart when the accounts table is empty.
func (r *runtime) seedAccounts(ctx context.Context) error {
	c, err := seedChart(r.cfg.ChartSeedFile)
	if err != nil {
		return err
	}
	inserted, err := r.services.Account.SeedDefaults(ctx, c.Accounts())
	if err != nil {
		return fmt.Errorf("failed to seed chart of accounts: %w", err)
	}
	if inserted > 0 {
		r.logger.Info("Seeded chart of accounts", slog.Int("accounts", inserted))
	}
	return nil
}
