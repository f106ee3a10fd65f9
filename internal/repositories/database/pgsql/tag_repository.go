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

const tagColumns = `tag_id, kind, name, version, created_at, created_by, last_updated_at, last_updated_by`

type PgxTagRepository struct {
	BaseRepository
}

func newPgxTagRepository(pool *pgxpool.Pool) portsrepo.TagRepositoryFacade {
	return &PgxTagRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TagRepositoryFacade = (*PgxTagRepository)(nil)

func scanTag(row pgx.Row) (models.Tag, error) {
	var m models.Tag
	err := row.Scan(&m.TagID, &m.Kind, &m.Name, &m.Version, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	return m, err
}

func (r *PgxTagRepository) SaveTag(ctx context.Context, tag domain.Tag) error {
	m := mapping.ToModelTag(tag)
	_, err := r.Pool.Exec(ctx, `INSERT INTO gl_tags (`+tagColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		m.TagID, m.Kind, m.Name, m.Version, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s named %q already exists", apperrors.ErrDuplicate, m.Kind, m.Name)
		}
		return fmt.Errorf("failed to save %s %s: %w", m.Kind, m.TagID, err)
	}
	return nil
}

// UpsertTags inserts or renames tags by id in one transaction.
func (r *PgxTagRepository) UpsertTags(ctx context.Context, tags []domain.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	query := `INSERT INTO gl_tags (` + tagColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (tag_id) DO UPDATE SET
			name = EXCLUDED.name,
			version = gl_tags.version + 1,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;`

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, t := range tags {
		m := mapping.ToModelTag(t)
		batch.Queue(query, m.TagID, m.Kind, m.Name, m.Version, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: duplicate tag name in import", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to upsert tags", err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxTagRepository) FindTagByID(ctx context.Context, kind domain.TagKind, tagID string) (*domain.Tag, error) {
	m, err := scanTag(r.Pool.QueryRow(ctx, `SELECT `+tagColumns+` FROM gl_tags WHERE kind = $1 AND tag_id::text = $2;`, string(kind), tagID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s %s: %w", kind, tagID, err)
	}
	tag := mapping.ToDomainTag(m)
	return &tag, nil
}

func (r *PgxTagRepository) ListTags(ctx context.Context, kind domain.TagKind) ([]domain.Tag, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+tagColumns+` FROM gl_tags WHERE kind = $1 ORDER BY name;`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s tags: %w", kind, err)
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		m, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		tags = append(tags, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}
	return mapping.ToDomainTagSlice(tags), nil
}

func (r *PgxTagRepository) UpdateTag(ctx context.Context, tag domain.Tag, expectedVersion int64) error {
	m := mapping.ToModelTag(tag)
	ct, err := r.Pool.Exec(ctx, `
		UPDATE gl_tags SET name = $3, version = $4, last_updated_at = $5, last_updated_by = $6
		WHERE kind = $1 AND tag_id::text = $2 AND version = $7;`,
		m.Kind, m.TagID, m.Name, m.Version, m.LastUpdatedAt, m.LastUpdatedBy, expectedVersion)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s named %q already exists", apperrors.ErrDuplicate, m.Kind, m.Name)
		}
		return fmt.Errorf("failed to update %s %s: %w", m.Kind, m.TagID, err)
	}
	if ct.RowsAffected() == 0 {
		return r.versionMiss(ctx, `SELECT EXISTS (SELECT 1 FROM gl_tags WHERE kind = $1 AND tag_id::text = $2);`, m.Kind, m.TagID)
	}
	return nil
}

func (r *PgxTagRepository) DeleteTag(ctx context.Context, kind domain.TagKind, tagID string, expectedVersion int64) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM gl_tags WHERE kind = $1 AND tag_id::text = $2 AND version = $3;`, string(kind), tagID, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", kind, tagID, err)
	}
	if ct.RowsAffected() == 0 {
		return r.versionMiss(ctx, `SELECT EXISTS (SELECT 1 FROM gl_tags WHERE kind = $1 AND tag_id::text = $2);`, string(kind), tagID)
	}
	return nil
}
