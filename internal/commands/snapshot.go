package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/roundup_ledger/internal/adapters/snapshot"
	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/spf13/cobra"
)

func newSnapshotCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Move the chart, locations and departments to or from a SQLite snapshot",
	}

	cmd.AddCommand(
		newSnapshotSubcommand(opts, "export", "Write the database state into a snapshot file",
			func(ctx context.Context, svc portssvc.SnapshotSvc, store *snapshot.Store) (portssvc.SnapshotCounts, error) {
				return svc.Export(ctx, store)
			}),
		newSnapshotSubcommand(opts, "import", "Upsert the rows of a snapshot file into the database",
			func(ctx context.Context, svc portssvc.SnapshotSvc, store *snapshot.Store) (portssvc.SnapshotCounts, error) {
				return svc.Import(ctx, store, cliUserID)
			}),
	)
	return cmd
}

type snapshotFunc func(ctx context.Context, svc portssvc.SnapshotSvc, store *snapshot.Store) (portssvc.SnapshotCounts, error)

func newSnapshotSubcommand(opts *rootOptions, use, short string, run snapshotFunc) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.newLogger()
			if err != nil {
				return err
			}

			store, err := snapshot.Open(file)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := store.Close(); cerr != nil {
					logger.Error("Error closing snapshot store", slog.String("error", cerr.Error()))
				}
			}()

			rt, err := openRuntime(cmd.Context(), logger)
			if err != nil {
				return err
			}
			defer rt.close()

			counts, err := run(cmd.Context(), rt.services.Snapshot, store)
			if err != nil {
				return fmt.Errorf("snapshot %s: %w", use, err)
			}
			cmd.Printf("%s %s: %d accounts, %d locations, %d departments\n",
				use, store.Path(), counts.Accounts, counts.Locations, counts.Departments)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "snapshot SQLite file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
