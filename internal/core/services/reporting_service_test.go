package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/roundup_ledger/internal/apperrors"
	"github.com/SscSPs/roundup_ledger/internal/core/chart"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/SscSPs/roundup_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportingService_AccountSummary(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	reportingRepo := new(MockReportingRepository)
	accountRepo := new(MockAccountRepository)
	reportingRepo.On("GetAccountSummaryData", ctx, from, to).Return([]domain.AccountSummaryRow{
		{AccountCode: "5010", AccountName: "Payment Processor Fees", Debit: decimal.RequireFromString("4.20"), Credit: decimal.Zero, EntryCount: 3},
		{AccountCode: "4060", AccountName: "Old Name", Debit: decimal.Zero, Credit: decimal.NewFromInt(300), EntryCount: 4},
		{AccountCode: "8888", AccountName: "Retired", Debit: decimal.NewFromInt(10), Credit: decimal.NewFromInt(4), EntryCount: 2},
	}, nil).Once()
	accountRepo.On("ListAccounts", ctx, true).Return(chart.DefaultAccounts(), nil).Once()

	svc := services.NewReportingService(reportingRepo, accountRepo)
	report, err := svc.AccountSummary(ctx, from, to)

	require.NoError(t, err)
	require.Len(t, report.Rows, 3)

	assert.Equal(t, "4060", report.Rows[0].AccountCode)
	assert.Equal(t, "Individual Users", report.Rows[0].AccountName)
	assert.Equal(t, domain.CreditNormal, report.Rows[0].NormalBalance)
	assert.True(t, report.Rows[0].Balance.Equal(decimal.NewFromInt(300)))

	assert.Equal(t, "5010", report.Rows[1].AccountCode)
	assert.True(t, report.Rows[1].Balance.Equal(decimal.RequireFromString("4.20")))

	assert.Equal(t, "8888", report.Rows[2].AccountCode)
	assert.Equal(t, domain.DebitNormal, report.Rows[2].NormalBalance)
	assert.True(t, report.Rows[2].Balance.Equal(decimal.NewFromInt(6)))

	assert.True(t, report.TotalDebit.Equal(decimal.RequireFromString("14.20")))
	assert.True(t, report.TotalCredit.Equal(decimal.NewFromInt(304)))
	assert.Equal(t, 9, report.EntryCount)
	reportingRepo.AssertExpectations(t)
}

func TestReportingService_AccountSummary_InvalidRange(t *testing.T) {
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := services.NewReportingService(new(MockReportingRepository), new(MockAccountRepository))

	_, err := svc.AccountSummary(context.Background(), day, day)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestReportingService_AccountSummary_RepoError(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	reportingRepo := new(MockReportingRepository)
	reportingRepo.On("GetAccountSummaryData", ctx, from, to).Return(nil, assert.AnError).Once()

	_, err := services.NewReportingService(reportingRepo, new(MockAccountRepository)).AccountSummary(ctx, from, to)

	assert.ErrorIs(t, err, assert.AnError)
}
