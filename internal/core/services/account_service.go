package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/roundup_ledger/internal/apperrors"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/roundup_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/SscSPs/roundup_ledger/internal/dto"
)

// systemUser is recorded in audit fields for rows written without a request.
const systemUser = "system"

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: newBaseService(),
		accountRepo: repo,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	accountType, err := domain.ParseAccountType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	normal := domain.ConventionalNormalBalance(accountType)
	if req.NormalBalance != "" {
		if normal, err = domain.ParseNormalBalance(req.NormalBalance); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := s.Now()
	account := domain.Account{
		Code:          req.Code,
		Name:          req.Name,
		Type:          accountType,
		NormalBalance: normal,
		Description:   req.Description,
		IsActive:      isActive,
		Version:       1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := account.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save account in repository", slog.String("account_code", account.Code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_code", account.Code), slog.String("type", string(account.Type)))
	return &account, nil
}

func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		// Note: Don't log if error is ErrNotFound, as it's an expected outcome
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code in repository", slog.String("account_code", code))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, params.IncludeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts from repository")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, code string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	current, err := s.GetAccountByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if current.Version != req.Version {
		return nil, fmt.Errorf("%w: account %s is at version %d, request was based on %d", apperrors.ErrConflict, code, current.Version, req.Version)
	}

	updated := *current
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Type != nil {
		if updated.Type, err = domain.ParseAccountType(*req.Type); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		// A new type without an explicit side takes the conventional one.
		if req.NormalBalance == nil {
			updated.NormalBalance = domain.ConventionalNormalBalance(updated.Type)
		}
	}
	if req.NormalBalance != nil {
		if updated.NormalBalance, err = domain.ParseNormalBalance(*req.NormalBalance); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}
	if err := updated.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	updated.Version = req.Version + 1
	updated.LastUpdatedAt = s.Now()
	updated.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, updated, req.Version); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update account in repository", slog.String("account_code", code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_code", code), slog.Int64("version", updated.Version))
	return &updated, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, code string, version int64) error {
	if err := s.accountRepo.DeleteAccount(ctx, code, version); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete account in repository", slog.String("account_code", code))
		}
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_code", code))
	return nil
}

func (s *accountService) SeedDefaults(ctx context.Context, seed []domain.Account) (int, error) {
	count, err := s.accountRepo.CountAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count accounts before seeding")
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		s.LogDebug(ctx, "Chart of accounts already populated, skipping seed", slog.Int("count", count))
		return 0, nil
	}

	now := s.Now()
	accounts := make([]domain.Account, len(seed))
	for i, a := range seed {
		if err := a.Validate(); err != nil {
			return 0, fmt.Errorf("%w: seed account: %v", apperrors.ErrValidation, err)
		}
		a.Version = 1
		a.AuditFields = domain.AuditFields{CreatedAt: now, CreatedBy: systemUser, LastUpdatedAt: now, LastUpdatedBy: systemUser}
		accounts[i] = a
	}

	if err := s.accountRepo.UpsertAccounts(ctx, accounts); err != nil {
		s.LogError(ctx, err, "Failed to seed chart of accounts")
		return 0, fmt.Errorf("failed to seed chart of accounts: %w", err)
	}

	s.LogInfo(ctx, "Seeded chart of accounts", slog.Int("count", len(accounts)))
	return len(accounts), nil
}
