package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	"github.com/atlascompta/compta_backend/internal/models"
	"github.com/atlascompta/compta_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for entry and line data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, journal_id, entry_date, reference, description, document_ref, validated, created_at, updated_at`

// SaveEntry persists an entry with its lines in one transaction. The
// reference is drawn from the journal's sequence scope inside the same
// transaction, so the counter advance and the insert commit together and a
// concurrent save can never produce the same reference.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry, lines []domain.EntryLine, scope, prefix string) (*domain.Entry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now()
	reference, err := nextReferenceInTx(ctx, tx, scope, prefix, entry.EntryDate, now)
	if err != nil {
		return nil, err
	}
	entry.Reference = reference

	m := mapping.ToModelEntry(entry)
	entryQuery := `
		INSERT INTO entries (entry_id, journal_id, entry_date, reference, description, document_ref, validated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, entryQuery,
		m.EntryID, m.JournalID, m.EntryDate, m.Reference,
		m.Description, m.DocumentRef, m.Validated, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert entry "+m.Reference, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO entry_lines (line_id, entry_id, account_id, label, debit, credit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for i := range lines {
		lines[i].EntryID = entry.EntryID
		ml := mapping.ToModelEntryLine(lines[i])
		batch.Queue(lineQuery,
			ml.LineID, ml.EntryID, ml.AccountID, ml.Label, ml.Debit, ml.Credit, ml.CreatedAt, ml.UpdatedAt,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert lines for entry "+m.Reference, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	entry.Lines = lines
	return &entry, nil
}

// FindEntryByID retrieves an entry header by its ID, without lines.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	var m models.Entry
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = $1;`
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID, &m.JournalID, &m.EntryDate, &m.Reference,
		&m.Description, &m.DocumentRef, &m.Validated, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}
	entry := mapping.ToDomainEntry(m)
	return &entry, nil
}

// FindLinesByEntryID retrieves the lines of one entry in insertion order.
func (r *PgxEntryRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.EntryLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, label, debit, credit, created_at, updated_at
		FROM entry_lines
		WHERE entry_id = $1
		ORDER BY created_at, line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.EntryLine{}
	for rows.Next() {
		var m models.EntryLine
		if err := rows.Scan(
			&m.LineID, &m.EntryID, &m.AccountID, &m.Label, &m.Debit, &m.Credit, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}

	return mapping.ToDomainEntryLineSlice(lines), nil
}

// ListEntriesByJournal retrieves a journal's entry headers ordered by
// (entry_date, reference).
func (r *PgxEntryRepository) ListEntriesByJournal(ctx context.Context, journalID string) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE journal_id = $1 ORDER BY entry_date, reference;`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for journal "+journalID, err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var m models.Entry
		if err := rows.Scan(
			&m.EntryID, &m.JournalID, &m.EntryDate, &m.Reference,
			&m.Description, &m.DocumentRef, &m.Validated, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row for journal "+journalID, err)
		}
		entries = append(entries, mapping.ToDomainEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows for journal "+journalID, err)
	}

	return entries, nil
}

// MarkEntryValidated flags an entry as final. Returns ErrNotFound when no
// such entry exists.
func (r *PgxEntryRepository) MarkEntryValidated(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE entries SET validated = TRUE, updated_at = $2 WHERE entry_id = $1;
	`, entryID, time.Now())
	if err != nil {
		return apperrors.NewAppError(500, "failed to validate entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
