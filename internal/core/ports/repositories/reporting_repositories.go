package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
)

// ReportingRepository defines operations for retrieving report data
type ReportingRepository interface {
	// GetAccountSummaryData sums debits and credits per account code for entries dated in [from, to).
	// Only AccountCode, AccountName, Debit, Credit and EntryCount are populated.
	GetAccountSummaryData(ctx context.Context, from, to time.Time) ([]domain.AccountSummaryRow, error)
}
