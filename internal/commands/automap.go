package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/roundup_ledger/internal/adapters/feed"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/SscSPs/roundup_ledger/internal/core/services"
	"github.com/spf13/cobra"
)

func newAutomapCommand(opts *rootOptions) *cobra.Command {
	var file string
	var dryRun bool
	var chartFile string

	cmd := &cobra.Command{
		Use:   "automap",
		Short: "Map a transaction feed CSV to journal entries",
		Long: `Reads a feed CSV with the columns transaction_id, amount, fee, account_type
and payment_processor, and creates one revenue entry per transaction plus a fee
entry when the fee is positive. Transactions mapped by an earlier run are skipped.

With --dry-run the entries are printed as CSV and nothing is stored; no
database is needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.newLogger()
			if err != nil {
				return err
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening feed: %w", err)
			}
			defer f.Close()

			txns, err := feed.ReadTransactions(f)
			if err != nil {
				return err
			}
			logger.Info("Read transaction feed", slog.String("file", file), slog.Int("transactions", len(txns)))

			if dryRun {
				return runAutomapDryRun(cmd, cmd.OutOrStdout(), txns, chartFile)
			}

			rt, err := openRuntime(cmd.Context(), logger)
			if err != nil {
				return err
			}
			defer rt.close()
			if err := rt.seedAccounts(cmd.Context()); err != nil {
				return err
			}

			result, err := rt.services.Journal.AutoMapTransactions(cmd.Context(), txns, cliUserID)
			if err != nil {
				return err
			}
			if err := feed.WriteEntries(cmd.OutOrStdout(), result.Entries); err != nil {
				return err
			}
			for _, id := range result.SkippedTransactions {
				cmd.PrintErrf("skipped already mapped transaction %s\n", id)
			}
			for _, r := range result.RejectedTransactions {
				cmd.PrintErrf("rejected transaction #%d %s: %s\n", r.Index, r.TransactionID, r.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "transaction feed CSV (required)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print entries without storing them")
	cmd.Flags().StringVar(&chartFile, "chart", "", "chart of accounts YAML for --dry-run (default: built-in chart)")

	return cmd
}

// runAutomapDryRun builds the entries against a static chart and writes them as CSV.
func runAutomapDryRun(cmd *cobra.Command, out io.Writer, txns []domain.SourceTransaction, chartFile string) error {
	c, err := seedChart(chartFile)
	if err != nil {
		return err
	}

	journal := services.NewJournalService(nil, nil, services.WithStaticChart(c))
	entries, err := journal.BuildAutoMappedEntries(cmd.Context(), txns, cliUserID)
	if err != nil {
		return err
	}
	return feed.WriteEntries(out, entries)
}
