package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/roundup_ledger/internal/apperrors"
	"github.com/SscSPs/roundup_ledger/internal/core/chart"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/roundup_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/SscSPs/roundup_ledger/internal/core/services"
	"github.com/SscSPs/roundup_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	mockTagRepo     *MockTagRepository
	service         portssvc.JournalSvcFacade
	fixedNow        time.Time
	idSeq           int
	userID          string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTagRepo = new(MockTagRepository)
	suite.fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	suite.idSeq = 0
	suite.userID = "admin"

	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo,
		services.WithTagReader(suite.mockTagRepo),
		services.WithJournalClock(func() time.Time { return suite.fixedNow }),
		services.WithJournalIDGenerator(func() string {
			suite.idSeq++
			return fmt.Sprintf("entry-%d", suite.idSeq)
		}),
	)
}

// expectChart makes the account repository serve the seed chart once per call.
func (suite *JournalServiceTestSuite) expectChart(ctx context.Context) {
	suite.mockAccountRepo.On("ListAccounts", ctx, true).Return(chart.DefaultAccounts(), nil)
}

func txn(id, amount, fee, tier, processor string) domain.SourceTransaction {
	return dto.TransactionInput{
		TransactionID:    id,
		Amount:           decimal.RequireFromString(amount),
		Fee:              decimal.RequireFromString(fee),
		AccountType:      tier,
		PaymentProcessor: processor,
	}.ToSourceTransaction()
}

// --- Preview ---

func (suite *JournalServiceTestSuite) TestPreviewDebitCredit_CreditNormalRevenue() {
	ctx := context.Background()
	suite.expectChart(ctx)

	dc, name, err := suite.service.PreviewDebitCredit(ctx, dto.PreviewDebitCreditRequest{AccountCode: "4060", Amount: "100"})

	suite.Require().NoError(err)
	suite.Equal("Individual Users", name)
	suite.True(dc.Debit.IsZero())
	suite.True(dc.Credit.Equal(decimal.NewFromInt(100)))
}

func (suite *JournalServiceTestSuite) TestPreviewDebitCredit_IgnoresEntryType() {
	ctx := context.Background()
	suite.expectChart(ctx)

	for _, et := range []string{"deposit", "expense", "transfer", "payment"} {
		dc, _, err := suite.service.PreviewDebitCredit(ctx, dto.PreviewDebitCreditRequest{EntryType: et, AccountCode: "1000", Amount: "12.50"})
		suite.Require().NoError(err)
		suite.True(dc.Debit.Equal(decimal.RequireFromString("12.50")), et)
		suite.True(dc.Credit.IsZero(), et)
	}
}

func (suite *JournalServiceTestSuite) TestPreviewDebitCredit_UnknownAccount() {
	ctx := context.Background()
	suite.expectChart(ctx)

	dc, name, err := suite.service.PreviewDebitCredit(ctx, dto.PreviewDebitCreditRequest{AccountCode: "9999", Amount: "50"})

	suite.Require().NoError(err)
	suite.Equal(domain.UnknownAccountName, name)
	suite.True(dc.IsZero())
}

func (suite *JournalServiceTestSuite) TestPreviewDebitCredit_ChartLoadFails() {
	ctx := context.Background()
	suite.mockAccountRepo.On("ListAccounts", ctx, true).Return(nil, assert.AnError).Once()

	_, _, err := suite.service.PreviewDebitCredit(ctx, dto.PreviewDebitCreditRequest{AccountCode: "1000", Amount: "1"})

	suite.ErrorIs(err, assert.AnError)
}

// --- Manual entries ---

func (suite *JournalServiceTestSuite) TestCreateManualEntry_DebitNormalAccount() {
	ctx := context.Background()
	suite.expectChart(ctx)
	hq := &domain.Tag{TagID: "loc-1", Kind: domain.TagLocation, Name: "Austin HQ"}
	suite.mockTagRepo.On("FindTagByID", ctx, domain.TagLocation, "loc-1").Return(hq, nil).Once()

	var saved []domain.JournalEntry
	suite.mockJournalRepo.On("SaveEntries", ctx, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).([]domain.JournalEntry) }).
		Return(nil).Once()

	entry, err := suite.service.CreateManualEntry(ctx, dto.CreateJournalEntryRequest{
		EntryType:   "deposit",
		AccountCode: "1000",
		Amount:      "12.50",
		LocationID:  "loc-1",
		Memo:        "petty cash top-up",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("entry-1", entry.EntryID)
	suite.Equal(suite.fixedNow, entry.Date)
	suite.Equal("Cash", entry.AccountName)
	suite.Equal("Austin HQ", entry.LocationName)
	suite.Equal(domain.DefaultDepartmentName, entry.DepartmentName)
	suite.True(entry.Debit.Equal(decimal.RequireFromString("12.50")))
	suite.True(entry.Credit.IsZero())
	suite.False(entry.IsAutoMapped)
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.Require().Len(saved, 1)
	suite.Equal(entry.EntryID, saved[0].EntryID)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockTagRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateManualEntry_CreditNormalAccount() {
	ctx := context.Background()
	suite.expectChart(ctx)
	suite.mockJournalRepo.On("SaveEntries", ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.CreateManualEntry(ctx, dto.CreateJournalEntryRequest{AccountCode: "4070", Amount: "80"}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.EntryDeposit, entry.EntryType)
	suite.True(entry.Debit.IsZero())
	suite.True(entry.Credit.Equal(decimal.NewFromInt(80)))
}

func (suite *JournalServiceTestSuite) TestCreateManualEntry_MissingFieldsIsNoOp() {
	ctx := context.Background()

	for _, req := range []dto.CreateJournalEntryRequest{
		{AccountCode: "1000"},
		{Amount: "10"},
		{AccountCode: "  ", Amount: "10"},
	} {
		entry, err := suite.service.CreateManualEntry(ctx, req, suite.userID)
		suite.NoError(err)
		suite.Nil(entry)
	}

	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateManualEntry_FallbackNames() {
	ctx := context.Background()
	suite.expectChart(ctx)
	suite.mockTagRepo.On("FindTagByID", ctx, domain.TagLocation, "gone").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTagRepo.On("FindTagByID", ctx, domain.TagDepartment, "also-gone").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockJournalRepo.On("SaveEntries", ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.CreateManualEntry(ctx, dto.CreateJournalEntryRequest{
		AccountCode:  "7777",
		Amount:       "5",
		LocationID:   "gone",
		DepartmentID: "also-gone",
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.UnknownAccountName, entry.AccountName)
	suite.Equal(domain.DefaultLocationName, entry.LocationName)
	suite.Equal(domain.DefaultDepartmentName, entry.DepartmentName)
	suite.True(entry.Debit.IsZero())
	suite.True(entry.Credit.IsZero())
}

func (suite *JournalServiceTestSuite) TestCreateManualEntry_InvalidInput() {
	ctx := context.Background()

	_, err := suite.service.CreateManualEntry(ctx, dto.CreateJournalEntryRequest{AccountCode: "1000", Amount: "abc"}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateManualEntry(ctx, dto.CreateJournalEntryRequest{AccountCode: "1000", Amount: "-3"}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateManualEntry(ctx, dto.CreateJournalEntryRequest{EntryType: "refund", AccountCode: "1000", Amount: "3"}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateManualEntry_AmountOutsideStoredPrecision() {
	ctx := context.Background()

	for _, amount := range []string{"0.00001", "1e20", "1000000000000000"} {
		entry, err := suite.service.CreateManualEntry(ctx, dto.CreateJournalEntryRequest{AccountCode: "1000", Amount: amount}, suite.userID)
		suite.ErrorIs(err, apperrors.ErrValidation, amount)
		suite.Nil(entry, amount)
	}

	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateManualEntry_TrimsAccountCode() {
	ctx := context.Background()
	suite.expectChart(ctx)
	suite.mockJournalRepo.On("SaveEntries", ctx, mock.MatchedBy(func(e []domain.JournalEntry) bool {
		return len(e) == 1 && e[0].AccountCode == "1000"
	})).Return(nil).Once()

	entry, err := suite.service.CreateManualEntry(ctx, dto.CreateJournalEntryRequest{AccountCode: " 1000 ", Amount: "5"}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("1000", entry.AccountCode)
	suite.Equal("Cash", entry.AccountName)
	suite.True(entry.Debit.Equal(decimal.NewFromInt(5)))
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPreviewDebitCredit_TrimsAccountCode() {
	ctx := context.Background()
	suite.expectChart(ctx)

	dc, name, err := suite.service.PreviewDebitCredit(ctx, dto.PreviewDebitCreditRequest{AccountCode: "4060 ", Amount: "7"})

	suite.Require().NoError(err)
	suite.Equal("Individual Users", name)
	suite.True(dc.Credit.Equal(decimal.NewFromInt(7)))
}

func (suite *JournalServiceTestSuite) TestCreateManualEntry_SaveError() {
	ctx := context.Background()
	suite.expectChart(ctx)
	suite.mockJournalRepo.On("SaveEntries", ctx, mock.Anything).Return(assert.AnError).Once()

	entry, err := suite.service.CreateManualEntry(ctx, dto.CreateJournalEntryRequest{AccountCode: "1000", Amount: "1"}, suite.userID)

	suite.Nil(entry)
	suite.ErrorIs(err, assert.AnError)
}

// --- Auto-mapping ---

func (suite *JournalServiceTestSuite) TestBuildAutoMappedEntries_RevenueAndFees() {
	ctx := context.Background()
	suite.expectChart(ctx)

	entries, err := suite.service.BuildAutoMappedEntries(ctx, []domain.SourceTransaction{
		txn("t1", "100", "2.90", "family", "stripe"),
		txn("t2", "50", "0", "business", "alpaca"),
		txn("t3", "20", "1", "", "venmo"),
		txn("t4", "0", "0.30", "individual", "alpaca"),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 5)

	suite.Equal("4070", entries[0].AccountCode)
	suite.Equal("Family Users", entries[0].AccountName)
	suite.Equal(domain.EntryDeposit, entries[0].EntryType)
	suite.True(entries[0].Credit.Equal(decimal.NewFromInt(100)))
	suite.True(entries[0].Debit.IsZero())

	suite.Equal("5010", entries[1].AccountCode)
	suite.Equal(domain.EntryExpense, entries[1].EntryType)
	suite.True(entries[1].Debit.Equal(decimal.RequireFromString("2.90")))
	suite.True(entries[1].Credit.IsZero())

	suite.Equal("4080", entries[2].AccountCode)
	suite.Equal("4060", entries[3].AccountCode)
	suite.Equal("5040", entries[4].AccountCode)

	for _, e := range entries {
		suite.True(e.IsAutoMapped)
		suite.Equal(domain.DefaultLocationName, e.LocationName)
		suite.Equal(domain.DefaultDepartmentName, e.DepartmentName)
		suite.NoError(e.Validate())
	}
}

func (suite *JournalServiceTestSuite) TestBuildAutoMappedEntries_ZeroFeeAmountOnlyFee() {
	ctx := context.Background()
	suite.expectChart(ctx)

	entries, err := suite.service.BuildAutoMappedEntries(ctx, []domain.SourceTransaction{
		txn("t4", "0", "0.30", "individual", "alpaca"),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal("5070", entries[0].AccountCode)
	suite.Equal("t4", entries[0].SourceTransactionID)
}

func (suite *JournalServiceTestSuite) TestBuildAutoMappedEntries_NegativeAmountProducesNothing() {
	ctx := context.Background()
	suite.expectChart(ctx)

	entries, err := suite.service.BuildAutoMappedEntries(ctx, []domain.SourceTransaction{
		txn("refund", "-5", "0.30", "individual", "stripe"),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *JournalServiceTestSuite) TestAutoMapTransactions_EntryCountIsNPlusM() {
	ctx := context.Background()
	suite.expectChart(ctx)
	ids := []string{"a", "b", "c"}
	suite.mockJournalRepo.On("FindProcessedTransactionIDs", ctx, ids).Return(map[string]bool{}, nil).Once()
	suite.mockJournalRepo.On("SaveAutoMappedEntries", ctx, mock.MatchedBy(func(e []domain.JournalEntry) bool { return len(e) == 5 }), ids).Return(nil).Once()

	result, err := suite.service.AutoMapTransactions(ctx, []domain.SourceTransaction{
		txn("a", "10", "0.25", "individual", "plaid"),
		txn("b", "20", "0.50", "family", "dwolla"),
		txn("c", "30", "0", "business", "stripe"),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Len(result.Entries, 5)
	suite.Empty(result.SkippedTransactions)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestAutoMapTransactions_SkipsProcessedAndRepeatedIDs() {
	ctx := context.Background()
	suite.expectChart(ctx)
	suite.mockJournalRepo.On("FindProcessedTransactionIDs", ctx, []string{"old", "new", "new"}).
		Return(map[string]bool{"old": true}, nil).Once()
	suite.mockJournalRepo.On("SaveAutoMappedEntries", ctx, mock.MatchedBy(func(e []domain.JournalEntry) bool {
		return len(e) == 2 && e[0].SourceTransactionID == "new" && e[1].SourceTransactionID == ""
	}), []string{"new"}).Return(nil).Once()

	result, err := suite.service.AutoMapTransactions(ctx, []domain.SourceTransaction{
		txn("old", "10", "0", "individual", ""),
		txn("new", "15", "0", "family", ""),
		txn("new", "15", "0", "family", ""),
		txn("", "7", "0", "business", ""),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Len(result.Entries, 2)
	suite.Equal([]string{"old", "new"}, result.SkippedTransactions)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestAutoMapTransactions_RerunProducesNothing() {
	ctx := context.Background()
	suite.expectChart(ctx)
	suite.mockJournalRepo.On("FindProcessedTransactionIDs", ctx, []string{"a"}).Return(map[string]bool{"a": true}, nil).Once()

	result, err := suite.service.AutoMapTransactions(ctx, []domain.SourceTransaction{txn("a", "10", "1", "individual", "stripe")}, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(result.Entries)
	suite.Equal([]string{"a"}, result.SkippedTransactions)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveAutoMappedEntries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestAutoMapTransactions_ConcurrentRunIsConflict() {
	ctx := context.Background()
	suite.expectChart(ctx)
	suite.mockJournalRepo.On("FindProcessedTransactionIDs", ctx, []string{"a"}).Return(map[string]bool{}, nil).Once()
	suite.mockJournalRepo.On("SaveAutoMappedEntries", ctx, mock.Anything, []string{"a"}).Return(apperrors.ErrDuplicate).Once()

	result, err := suite.service.AutoMapTransactions(ctx, []domain.SourceTransaction{txn("a", "10", "0", "individual", "")}, suite.userID)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *JournalServiceTestSuite) TestAutoMapTransactions_ReportsNegativeAmounts() {
	ctx := context.Background()
	suite.expectChart(ctx)
	suite.mockJournalRepo.On("FindProcessedTransactionIDs", ctx, []string{"refund", "a"}).Return(map[string]bool{}, nil).Once()
	suite.mockJournalRepo.On("SaveAutoMappedEntries", ctx, mock.MatchedBy(func(e []domain.JournalEntry) bool {
		return len(e) == 1 && e[0].SourceTransactionID == "a"
	}), []string{"a"}).Return(nil).Once()

	result, err := suite.service.AutoMapTransactions(ctx, []domain.SourceTransaction{
		txn("refund", "-5", "0", "individual", ""),
		txn("a", "10", "0", "individual", ""),
		txn("", "-2", "0", "family", ""),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(result.Entries, 1)
	suite.Equal(domain.EntryDeposit, result.Entries[0].EntryType)
	suite.Equal([]portssvc.RejectedTransaction{
		{Index: 0, TransactionID: "refund", Reason: "negative amount"},
		{Index: 2, TransactionID: "", Reason: "negative amount"},
	}, result.RejectedTransactions)
	suite.Empty(result.SkippedTransactions)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestAutoMapTransactions_AmountOutsideStoredPrecision() {
	ctx := context.Background()

	for _, batch := range [][]domain.SourceTransaction{
		{txn("a", "10", "0.00001", "individual", "stripe")},
		{txn("a", "10", "0", "individual", ""), txn("b", "1e16", "0", "family", "")},
	} {
		result, err := suite.service.AutoMapTransactions(ctx, batch, suite.userID)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(result)

		_, err = suite.service.BuildAutoMappedEntries(ctx, batch, suite.userID)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}

	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindProcessedTransactionIDs", mock.Anything, mock.Anything)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveAutoMappedEntries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestAutoMapTransactions_EmptyBatch() {
	result, err := suite.service.AutoMapTransactions(context.Background(), nil, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(result.Entries)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindProcessedTransactionIDs", mock.Anything, mock.Anything)
}

// --- Reads ---

func (suite *JournalServiceTestSuite) TestListEntries_PassesFilterAndToken() {
	ctx := context.Background()
	token := "abc"
	next := "def"
	entries := []domain.JournalEntry{{EntryID: "e1", AccountCode: "1000", Debit: decimal.NewFromInt(1), Credit: decimal.Zero}}
	suite.mockJournalRepo.On("ListEntries", ctx, portsrepo.EntrySourceAuto, 20, &token).Return(entries, &next, nil).Once()

	resp, err := suite.service.ListEntries(ctx, dto.ListJournalEntriesParams{Limit: 20, NextToken: token, Source: "auto"})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Entries, 1)
	suite.Equal("e1", resp.Entries[0].EntryID)
	suite.Equal(&next, resp.NextToken)
}

func (suite *JournalServiceTestSuite) TestListEntries_BadToken() {
	ctx := context.Background()
	badToken := apperrors.NewAppError(400, "invalid nextToken", assert.AnError)
	suite.mockJournalRepo.On("ListEntries", ctx, portsrepo.EntrySourceAll, 10, mock.Anything).Return(nil, nil, badToken).Once()

	resp, err := suite.service.ListEntries(ctx, dto.ListJournalEntriesParams{Limit: 10, NextToken: "!!"})

	suite.Nil(resp)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
}

func (suite *JournalServiceTestSuite) TestGetEntryByID_NotFound() {
	ctx := context.Background()
	suite.mockJournalRepo.On("FindEntryByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntryByID(ctx, "missing")

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestJournalService(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func TestJournalService_StaticChartNeedsNoRepository(t *testing.T) {
	svc := services.NewJournalService(nil, nil, services.WithStaticChart(chart.Default()))

	entries, err := svc.BuildAutoMappedEntries(context.Background(), []domain.SourceTransaction{
		txn("x", "3.75", "0.10", "business", "dwolla"),
	}, "cli")

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "Business Users", entries[0].AccountName)
	assert.Equal(t, "Payment Processor Fees", entries[1].AccountName)
}
