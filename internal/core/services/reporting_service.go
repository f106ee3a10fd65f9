package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/roundup_ledger/internal/apperrors"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/roundup_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/SscSPs/roundup_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository, accountRepo portsrepo.AccountReader) portssvc.ReportingService {
	return &reportingService{
		BaseService:   newBaseService(),
		reportingRepo: repo,
		accountRepo:   accountRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// AccountSummary sums stored entries per account. Balances are signed by each
// account's normal balance; accounts no longer in the chart are treated as debit-normal.
func (s *reportingService) AccountSummary(ctx context.Context, from, to time.Time) (*domain.AccountSummaryReport, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("%w: report end must be after its start", apperrors.ErrValidation)
	}

	rows, err := s.reportingRepo.GetAccountSummaryData(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to get account summary data",
			slog.Time("from", from),
			slog.Time("to", to))
		return nil, fmt.Errorf("failed to get account summary data: %w", err)
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for summary")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	byCode := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}

	report := &domain.AccountSummaryReport{
		From:        from,
		To:          to,
		Rows:        make([]domain.AccountSummaryRow, 0, len(rows)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, row := range rows {
		row.NormalBalance = domain.DebitNormal
		if a, ok := byCode[row.AccountCode]; ok {
			row.AccountType = a.Type
			row.NormalBalance = a.NormalBalance
			row.AccountName = a.Name
		}
		row.Balance = accounting.SignedBalance(row.NormalBalance, row.Debit, row.Credit)

		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
		report.EntryCount += row.EntryCount
		report.Rows = append(report.Rows, row)
	}

	sort.Slice(report.Rows, func(i, j int) bool { return report.Rows[i].AccountCode < report.Rows[j].AccountCode })

	s.LogDebug(ctx, "Account summary generated", slog.Int("accounts", len(report.Rows)), slog.Int("entries", report.EntryCount))
	return report, nil
}
