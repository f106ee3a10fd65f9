package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/roundup_ledger/internal/apperrors"
	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/roundup_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/roundup_ledger/internal/models"
	"github.com/SscSPs/roundup_ledger/internal/utils/mapping"
	"github.com/SscSPs/roundup_ledger/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `entry_id, entry_date, entry_type, account_code, account_name,
	location_id, location_name, department_id, department_name, memo,
	debit, credit, amount, is_auto_mapped, source_transaction_id, created_at, created_by`

const insertEntryQuery = `INSERT INTO journal_entries (` + entryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryDate,
		&m.EntryType,
		&m.AccountCode,
		&m.AccountName,
		&m.LocationID,
		&m.LocationName,
		&m.DepartmentID,
		&m.DepartmentName,
		&m.Memo,
		&m.Debit,
		&m.Credit,
		&m.Amount,
		&m.IsAutoMapped,
		&m.SourceTransactionID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

func queueEntries(batch *pgx.Batch, entries []domain.JournalEntry) {
	for _, e := range entries {
		m := mapping.ToModelJournalEntry(e)
		batch.Queue(insertEntryQuery,
			m.EntryID,
			m.EntryDate,
			m.EntryType,
			m.AccountCode,
			m.AccountName,
			m.LocationID,
			m.LocationName,
			m.DepartmentID,
			m.DepartmentName,
			m.Memo,
			m.Debit,
			m.Credit,
			m.Amount,
			m.IsAutoMapped,
			m.SourceTransactionID,
			m.CreatedAt,
			m.CreatedBy,
		)
	}
}

// SaveEntries appends entries within a single DB transaction.
func (r *PgxJournalRepository) SaveEntries(ctx context.Context, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	batch := &pgx.Batch{}
	queueEntries(batch, entries)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entries", err)
	}
	return r.Commit(ctx, tx)
}

// SaveAutoMappedEntries claims the processed markers first so a concurrent run
// fails on the primary key before any of its entries are written.
func (r *PgxJournalRepository) SaveAutoMappedEntries(ctx context.Context, entries []domain.JournalEntry, processedTransactionIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, id := range processedTransactionIDs {
		batch.Queue(`INSERT INTO automap_processed_transactions (transaction_id) VALUES ($1);`, id)
	}
	queueEntries(batch, entries)

	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: transaction already auto-mapped", apperrors.ErrDuplicate)
			}
			return apperrors.NewAppError(500, "failed to insert auto-mapped entries", err)
		}
	}
	return r.Commit(ctx, tx)
}

// FindProcessedTransactionIDs returns the subset of ids with a processed marker.
func (r *PgxJournalRepository) FindProcessedTransactionIDs(ctx context.Context, transactionIDs []string) (map[string]bool, error) {
	processed := make(map[string]bool)
	if len(transactionIDs) == 0 {
		return processed, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT transaction_id FROM automap_processed_transactions WHERE transaction_id = ANY($1);`, transactionIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query processed transactions", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan processed transaction id", err)
		}
		processed[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating processed transaction rows", err)
	}
	return processed, nil
}

// FindEntryByID retrieves an entry by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	if _, err := uuid.Parse(entryID); err != nil {
		return nil, apperrors.ErrNotFound
	}
	m, err := scanEntry(r.Pool.QueryRow(ctx, `SELECT `+entryColumns+` FROM journal_entries WHERE entry_id = $1;`, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry "+entryID, err)
	}
	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

// ListEntries retrieves entries newest first using token-based pagination.
// It returns the entries, a token for the next page, and an error.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, source portsrepo.EntrySource, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE TRUE`
	args := []any{}

	switch source {
	case portsrepo.EntrySourceAuto:
		query += ` AND is_auto_mapped`
	case portsrepo.EntrySourceManual:
		query += ` AND NOT is_auto_mapped`
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeEntryCursor(*nextToken)
		if decodeErr == nil {
			_, decodeErr = uuid.Parse(lastID)
		}
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastID)
		query += ` AND (entry_date, entry_id) < ($1, $2::uuid)`
	}

	// entry_id breaks ties between entries stamped in the same instant.
	args = append(args, fetchLimit)
	query += ` ORDER BY entry_date DESC, entry_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}

	var nextTokenVal *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeEntryCursor(last.EntryDate, last.EntryID)
		nextTokenVal = &token
		entries = entries[:limit]
	}

	return mapping.ToDomainJournalEntrySlice(entries), nextTokenVal, nil
}
