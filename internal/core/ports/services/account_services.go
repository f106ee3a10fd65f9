package services

import (
	"context"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"github.com/SscSPs/roundup_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for GL account data
type AccountReaderSvc interface {
	// GetAccountByCode retrieves a specific account by its code.
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts ordered by code.
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for GL account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account if req.Version is current.
	UpdateAccount(ctx context.Context, code string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeleteAccount removes an account if version is current.
	DeleteAccount(ctx context.Context, code string, version int64) error

	// SeedDefaults inserts the seed chart when no accounts exist yet. Returns the number inserted.
	SeedDefaults(ctx context.Context, seed []domain.Account) (int, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
