package services

import (
	"context"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/SscSPs/roundup_ledger/internal/dto"
	"github.com/SscSPs/roundup_ledger/internal/utils/accounting"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetEntryByID retrieves a specific entry by its ID.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of entries, newest first.
	ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines write operations for journal entries
type JournalWriterSvc interface {
	// CreateManualEntry builds and stores an entry from the manual form.
	// Returns nil, nil when amount or account code is missing.
	CreateManualEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// AutoMapTransactions maps a batch of feed transactions to entries and stores them.
	// Transactions whose id was already mapped are skipped and reported.
	AutoMapTransactions(ctx context.Context, txns []domain.SourceTransaction, userID string) (*AutoMapResult, error)
}

// JournalCalculatorSvc defines pure calculations used by the entry form
type JournalCalculatorSvc interface {
	// PreviewDebitCredit computes the debit/credit split for the entry form.
	PreviewDebitCredit(ctx context.Context, req dto.PreviewDebitCreditRequest) (accounting.DebitCredit, string, error)

	// BuildAutoMappedEntries maps transactions to entry drafts without storing them.
	BuildAutoMappedEntries(ctx context.Context, txns []domain.SourceTransaction, userID string) ([]domain.JournalEntry, error)
}

// AutoMapResult is the outcome of an auto-map run.
type AutoMapResult struct {
	Entries              []domain.JournalEntry
	SkippedTransactions  []string // Already mapped by an earlier run
	RejectedTransactions []RejectedTransaction
}

// RejectedTransaction is a transaction that produced no entries and was not marked processed.
type RejectedTransaction struct {
	Index         int // Position in the submitted batch
	TransactionID string
	Reason        string
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalCalculatorSvc
}
