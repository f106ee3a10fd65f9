package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/roundup_ledger/internal/apperrors"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/roundup_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/roundup_ledger/internal/models"
	"github.com/SscSPs/roundup_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `code, name, account_type, normal_balance, description, is_active, version,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for GL account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.NormalBalance,
		&m.Description,
		&m.IsActive,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `INSERT INTO gl_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	_, err := r.Pool.Exec(ctx, query,
		m.Code, m.Name, m.AccountType, m.NormalBalance, m.Description, m.IsActive, m.Version,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save account %s: %w", m.Code, err)
	}
	return nil
}

// UpsertAccounts inserts or overwrites accounts in one batch. Overwritten rows get their version bumped.
func (r *PgxAccountRepository) UpsertAccounts(ctx context.Context, accounts []domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	query := `INSERT INTO gl_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			account_type = EXCLUDED.account_type,
			normal_balance = EXCLUDED.normal_balance,
			description = EXCLUDED.description,
			is_active = EXCLUDED.is_active,
			version = gl_accounts.version + 1,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;`

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, a := range accounts {
		m := mapping.ToModelAccount(a)
		batch.Queue(query,
			m.Code, m.Name, m.AccountType, m.NormalBalance, m.Description, m.IsActive, m.Version,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to upsert accounts", err)
	}
	return r.Commit(ctx, tx)
}

// FindAccountByCode retrieves an account by its code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM gl_accounts WHERE code = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", code, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccounts retrieves accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM gl_accounts`
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

func (r *PgxAccountRepository) CountAccounts(ctx context.Context) (int, error) {
	var n int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM gl_accounts;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return n, nil
}

// UpdateAccount overwrites an account guarded by its version.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account, expectedVersion int64) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE gl_accounts
		SET name = $2, account_type = $3, normal_balance = $4, description = $5, is_active = $6,
		    version = $7, last_updated_at = $8, last_updated_by = $9
		WHERE code = $1 AND version = $10;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Code, m.Name, m.AccountType, m.NormalBalance, m.Description, m.IsActive,
		m.Version, m.LastUpdatedAt, m.LastUpdatedBy, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.Code, err)
	}
	if tag.RowsAffected() == 0 {
		return r.versionMiss(ctx, `SELECT EXISTS (SELECT 1 FROM gl_accounts WHERE code = $1);`, m.Code)
	}
	return nil
}

// DeleteAccount removes an account guarded by its version.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, code string, expectedVersion int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM gl_accounts WHERE code = $1 AND version = $2;`, code, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return r.versionMiss(ctx, `SELECT EXISTS (SELECT 1 FROM gl_accounts WHERE code = $1);`, code)
	}
	return nil
}
