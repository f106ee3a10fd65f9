package repositories

import (
	"context"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
)

// AccountReader defines read operations for GL account data
type AccountReader interface {
	// FindAccountByCode retrieves a specific account by its code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves every account ordered by code.
	ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error)

	// CountAccounts returns the number of stored accounts, active or not.
	CountAccounts(ctx context.Context) (int, error)
}

// AccountWriter defines write operations for GL account data
type AccountWriter interface {
	// SaveAccount persists a new account. Returns apperrors.ErrDuplicate if the code is taken.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpsertAccounts inserts or overwrites accounts in one batch (seeding and snapshot import).
	UpsertAccounts(ctx context.Context, accounts []domain.Account) error

	// UpdateAccount overwrites an account if its stored version equals expectedVersion.
	// Returns apperrors.ErrConflict on a version mismatch.
	UpdateAccount(ctx context.Context, account domain.Account, expectedVersion int64) error

	// DeleteAccount removes an account if its stored version equals expectedVersion.
	DeleteAccount(ctx context.Context, code string, expectedVersion int64) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
