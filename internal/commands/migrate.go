package commands

import (
	"log/slog"

	"github.com/SscSPs/roundup_ledger/internal/platform/config"
	"github.com/SscSPs/roundup_ledger/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.newLogger()
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			logger.Info("Running database migrations...")
			applied, err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath)
			if err != nil {
				logger.Error("Migration failed", slog.String("error", err.Error()))
				return err
			}
			if applied {
				cmd.Println("migrations applied")
			} else {
				cmd.Println("no new migrations")
			}
			return nil
		},
	}
}
