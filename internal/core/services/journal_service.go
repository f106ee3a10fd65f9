package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/roundup_ledger/internal/apperrors"
	"github.com/SscSPs/roundup_ledger/internal/core/automap"
	"github.com/SscSPs/roundup_ledger/internal/core/chart"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/roundup_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/SscSPs/roundup_ledger/internal/dto"
	"github.com/SscSPs/roundup_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// journalService builds journal entries from the manual form and from the
// auto-mapping rules, and reads them back.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryWithTx
	accountRepo portsrepo.AccountReader
	tagRepo     portsrepo.TagReader
	staticChart *chart.Chart
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithStaticChart resolves accounts from c instead of the account repository.
func WithStaticChart(c *chart.Chart) JournalServiceOption {
	return func(s *journalService) {
		s.staticChart = c
	}
}

// WithJournalClock overrides the time source used to date entries.
func WithJournalClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// WithJournalIDGenerator overrides the entry ID generator.
func WithJournalIDGenerator(newID func() string) JournalServiceOption {
	return func(s *journalService) {
		s.newID = newID
	}
}

// WithTagReader sets the repository used to resolve location and department names.
func WithTagReader(repo portsrepo.TagReader) JournalServiceOption {
	return func(s *journalService) {
		s.tagRepo = repo
	}
}

// NewJournalService creates a new journal service with the provided options.
// journalRepo and accountRepo may be nil for callers that only build entries
// against a static chart.
func NewJournalService(journalRepo portsrepo.JournalRepositoryWithTx, accountRepo portsrepo.AccountReader, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		BaseService: newBaseService(),
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure journalService implements the JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// loadChart returns the chart used to resolve account codes for one operation.
func (s *journalService) loadChart(ctx context.Context) (*chart.Chart, error) {
	if s.staticChart != nil {
		return s.staticChart, nil
	}
	if s.accountRepo == nil {
		return nil, fmt.Errorf("%w: no account source configured", apperrors.ErrInternal)
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts")
		return nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}
	c, err := chart.NewChart(accounts)
	if err != nil {
		s.LogError(ctx, err, "Stored chart of accounts is invalid")
		return nil, fmt.Errorf("%w: stored chart of accounts is invalid: %v", apperrors.ErrInternal, err)
	}
	return c, nil
}

// tagName resolves a location or department id to its name, falling back to the
// kind's placeholder for empty or unknown ids.
func (s *journalService) tagName(ctx context.Context, kind domain.TagKind, tagID string) (string, error) {
	if strings.TrimSpace(tagID) == "" || s.tagRepo == nil {
		return kind.FallbackName(), nil
	}
	tag, err := s.tagRepo.FindTagByID(ctx, kind, tagID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Tag not found, using fallback name", slog.String("kind", string(kind)), slog.String("tag_id", tagID))
			return kind.FallbackName(), nil
		}
		return "", fmt.Errorf("failed to resolve %s %s: %w", kind, tagID, err)
	}
	return tag.Name, nil
}

func (s *journalService) PreviewDebitCredit(ctx context.Context, req dto.PreviewDebitCreditRequest) (accounting.DebitCredit, string, error) {
	entryType := domain.EntryDeposit
	if req.EntryType != "" {
		parsed, err := domain.ParseEntryType(req.EntryType)
		if err != nil {
			return accounting.DebitCredit{}, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		entryType = parsed
	}

	c, err := s.loadChart(ctx)
	if err != nil {
		return accounting.DebitCredit{}, "", err
	}

	accountCode := strings.TrimSpace(req.AccountCode)
	name := ""
	if accountCode != "" {
		name = c.AccountName(accountCode)
	}
	return accounting.CalculateDebitCredit(c, entryType, accountCode, req.Amount), name, nil
}

func (s *journalService) CreateManualEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	accountCode := strings.TrimSpace(req.AccountCode)
	if strings.TrimSpace(req.Amount) == "" || accountCode == "" {
		s.LogDebug(ctx, "Manual entry missing amount or account, nothing to do")
		return nil, nil
	}

	entryType := domain.EntryDeposit
	if req.EntryType != "" {
		parsed, err := domain.ParseEntryType(req.EntryType)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		entryType = parsed
	}

	amount, ok := accounting.ParseAmount(req.Amount)
	if !ok {
		return nil, fmt.Errorf("%w: amount %q must be a non-negative number with at most %d decimal places and %d integer digits",
			apperrors.ErrValidation, req.Amount, accounting.MaxAmountScale, accounting.MaxAmountIntegerDigits)
	}

	c, err := s.loadChart(ctx)
	if err != nil {
		return nil, err
	}
	locationName, err := s.tagName(ctx, domain.TagLocation, req.LocationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve location")
		return nil, err
	}
	departmentName, err := s.tagName(ctx, domain.TagDepartment, req.DepartmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve department")
		return nil, err
	}

	dc := accounting.CalculateDebitCredit(c, entryType, accountCode, req.Amount)
	now := s.Now()
	entry := domain.JournalEntry{
		EntryID:        s.NewID(),
		Date:           now,
		EntryType:      entryType,
		AccountCode:    accountCode,
		AccountName:    c.AccountName(accountCode),
		LocationID:     req.LocationID,
		LocationName:   locationName,
		DepartmentID:   req.DepartmentID,
		DepartmentName: departmentName,
		Memo:           req.Memo,
		Debit:          dc.Debit,
		Credit:         dc.Credit,
		Amount:         amount,
		IsAutoMapped:   false,
		AuditFields:    domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID},
	}
	if err := entry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if dc.IsZero() {
		s.LogWarn(ctx, "Manual entry posts no amount", slog.String("account_code", entry.AccountCode), slog.String("account_name", entry.AccountName))
	}

	if err := s.journalRepo.SaveEntries(ctx, []domain.JournalEntry{entry}); err != nil {
		s.LogError(ctx, err, "Failed to save manual entry", slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Manual entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("account_code", entry.AccountCode),
		slog.String("debit", entry.Debit.String()),
		slog.String("credit", entry.Credit.String()))
	return &entry, nil
}

// checkTransactionAmounts rejects a batch holding an amount or fee the entries table cannot store.
func checkTransactionAmounts(txns []domain.SourceTransaction) error {
	for i, txn := range txns {
		for _, v := range []struct {
			field  string
			amount decimal.Decimal
		}{{"amount", txn.Amount}, {"fee", txn.Fee}} {
			if !accounting.AmountFits(v.amount) {
				return fmt.Errorf("%w: transaction %d (%s): %s %s has more than %d decimal places or %d integer digits",
					apperrors.ErrValidation, i, txn.TransactionID, v.field, v.amount.String(),
					accounting.MaxAmountScale, accounting.MaxAmountIntegerDigits)
			}
		}
	}
	return nil
}

// BuildAutoMappedEntries drafts one deposit entry per positive amount and one expense
// entry per positive fee. Transactions with a negative amount produce no entries.
func (s *journalService) BuildAutoMappedEntries(ctx context.Context, txns []domain.SourceTransaction, userID string) ([]domain.JournalEntry, error) {
	if err := checkTransactionAmounts(txns); err != nil {
		return nil, err
	}

	c, err := s.loadChart(ctx)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}
	entries := make([]domain.JournalEntry, 0, len(txns)*2)

	draft := func(txn domain.SourceTransaction, entryType domain.EntryType, mapped automap.MappedAccount) domain.JournalEntry {
		memo := mapped.Label
		if txn.TransactionID != "" {
			memo = fmt.Sprintf("%s (txn %s)", mapped.Label, txn.TransactionID)
		}
		return domain.JournalEntry{
			EntryID:             s.NewID(),
			Date:                now,
			EntryType:           entryType,
			AccountCode:         mapped.Code,
			AccountName:         c.AccountName(mapped.Code),
			LocationName:        domain.DefaultLocationName,
			DepartmentName:      domain.DefaultDepartmentName,
			Memo:                memo,
			Debit:               decimal.Zero,
			Credit:              decimal.Zero,
			IsAutoMapped:        true,
			SourceTransactionID: txn.TransactionID,
			AuditFields:         audit,
		}
	}

	for _, txn := range txns {
		if txn.Amount.IsNegative() {
			s.LogWarn(ctx, "Skipping transaction with negative amount",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("amount", txn.Amount.String()))
			continue
		}
		if txn.Amount.IsPositive() {
			revenue := draft(txn, domain.EntryDeposit, automap.RevenueAccount(txn))
			revenue.Credit = txn.Amount
			revenue.Amount = txn.Amount
			entries = append(entries, revenue)
		}

		if feeAccount, ok := automap.FeeAccount(txn); ok {
			fee := draft(txn, domain.EntryExpense, feeAccount)
			fee.Debit = txn.Fee
			fee.Amount = txn.Fee
			entries = append(entries, fee)
		}
	}

	return entries, nil
}

func (s *journalService) AutoMapTransactions(ctx context.Context, txns []domain.SourceTransaction, userID string) (*portssvc.AutoMapResult, error) {
	result := &portssvc.AutoMapResult{
		Entries:              []domain.JournalEntry{},
		SkippedTransactions:  []string{},
		RejectedTransactions: []portssvc.RejectedTransaction{},
	}
	if len(txns) == 0 {
		return result, nil
	}
	if err := checkTransactionAmounts(txns); err != nil {
		s.LogWarn(ctx, "Rejected auto-map batch", slog.String("error", err.Error()))
		return nil, err
	}

	ids := make([]string, 0, len(txns))
	for _, txn := range txns {
		if txn.TransactionID != "" {
			ids = append(ids, txn.TransactionID)
		}
	}

	processed := map[string]bool{}
	if len(ids) > 0 {
		var err error
		processed, err = s.journalRepo.FindProcessedTransactionIDs(ctx, ids)
		if err != nil {
			s.LogError(ctx, err, "Failed to look up processed transactions")
			return nil, fmt.Errorf("failed to look up processed transactions: %w", err)
		}
	}

	pending := make([]domain.SourceTransaction, 0, len(txns))
	newIDs := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	anonymous := 0
	for i, txn := range txns {
		if txn.Amount.IsNegative() {
			result.RejectedTransactions = append(result.RejectedTransactions, portssvc.RejectedTransaction{
				Index:         i,
				TransactionID: txn.TransactionID,
				Reason:        "negative amount",
			})
			continue
		}
		if txn.TransactionID == "" {
			anonymous++
			pending = append(pending, txn)
			continue
		}
		if processed[txn.TransactionID] || seen[txn.TransactionID] {
			result.SkippedTransactions = append(result.SkippedTransactions, txn.TransactionID)
			continue
		}
		seen[txn.TransactionID] = true
		newIDs = append(newIDs, txn.TransactionID)
		pending = append(pending, txn)
	}
	if anonymous > 0 {
		s.LogWarn(ctx, "Transactions without an id cannot be deduplicated", slog.Int("count", anonymous))
	}
	if len(result.RejectedTransactions) > 0 {
		s.LogWarn(ctx, "Transactions with a negative amount were not mapped", slog.Int("count", len(result.RejectedTransactions)))
	}

	entries, err := s.BuildAutoMappedEntries(ctx, pending, userID)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}

	if len(entries) > 0 || len(newIDs) > 0 {
		if err := s.journalRepo.SaveAutoMappedEntries(ctx, entries, newIDs); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				s.LogWarn(ctx, "Concurrent auto-map run already processed some transactions")
				return nil, fmt.Errorf("%w: transactions were processed by another run, retry to pick up the rest", apperrors.ErrConflict)
			}
			s.LogError(ctx, err, "Failed to save auto-mapped entries", slog.Int("entries", len(entries)))
			return nil, err
		}
	}

	result.Entries = entries
	s.LogInfo(ctx, "Auto-mapped transactions",
		slog.Int("transactions", len(txns)),
		slog.Int("entries", len(entries)),
		slog.Int("skipped", len(result.SkippedTransactions)),
		slog.Int("rejected", len(result.RejectedTransactions)))
	return result, nil
}

func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	var tokenPtr *string
	if params.NextToken != "" {
		tokenPtr = &params.NextToken
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, portsrepo.EntrySource(params.Source), params.Limit, tokenPtr)
	if err != nil {
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Code >= 500 {
			s.LogError(ctx, err, "Failed to list entries")
		}
		return nil, err
	}

	return &dto.ListJournalEntriesResponse{
		Entries:   dto.ToJournalEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}
