package repositories

import (
	"context"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
)

// EntrySource filters entries by how they were created.
type EntrySource string

const (
	EntrySourceAll    EntrySource = ""
	EntrySourceAuto   EntrySource = "auto"
	EntrySourceManual EntrySource = "manual"
)

// JournalEntryReader defines read operations for journal entries
type JournalEntryReader interface {
	// FindEntryByID retrieves a specific entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves entries newest first using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, source EntrySource, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// FindProcessedTransactionIDs returns the subset of ids that were already auto-mapped.
	FindProcessedTransactionIDs(ctx context.Context, transactionIDs []string) (map[string]bool, error)
}

// JournalEntryWriter defines write operations for journal entries. Entries are append-only.
type JournalEntryWriter interface {
	// SaveEntries appends entries in a single database transaction.
	SaveEntries(ctx context.Context, entries []domain.JournalEntry) error

	// SaveAutoMappedEntries appends entries and records processedTransactionIDs in the same
	// database transaction. Returns apperrors.ErrDuplicate if any id was already processed,
	// in which case nothing is written.
	SaveAutoMappedEntries(ctx context.Context, entries []domain.JournalEntry, processedTransactionIDs []string) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
