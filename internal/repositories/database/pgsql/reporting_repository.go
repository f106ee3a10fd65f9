package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/roundup_ledger/internal/apperrors"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/roundup_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetAccountSummaryData sums entries per account code. The most recently stored
// account name is reported for each code.
func (r *reportingRepository) GetAccountSummaryData(ctx context.Context, from, to time.Time) ([]domain.AccountSummaryRow, error) {
	query := `
		SELECT account_code,
		       (ARRAY_AGG(account_name ORDER BY entry_date DESC))[1] AS account_name,
		       COALESCE(SUM(debit), 0) AS total_debit,
		       COALESCE(SUM(credit), 0) AS total_credit,
		       COUNT(*) AS entry_count
		FROM journal_entries
		WHERE entry_date >= $1 AND entry_date < $2
		GROUP BY account_code
		ORDER BY account_code;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account summary", err)
	}
	defer rows.Close()

	result := []domain.AccountSummaryRow{}
	for rows.Next() {
		var row domain.AccountSummaryRow
		if err := rows.Scan(&row.AccountCode, &row.AccountName, &row.Debit, &row.Credit, &row.EntryCount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account summary row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account summary rows", err)
	}
	return result, nil
}
