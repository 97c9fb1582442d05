package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/models"
	"github.com/atlascompta/compta_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// nextReferenceInTx draws the next document reference for a scope inside the
// caller's transaction. The scope row is created on first use, then locked
// with FOR UPDATE so two concurrent documents can never draw the same number.
// The counter advance commits or rolls back together with the document that
// consumed it.
func nextReferenceInTx(ctx context.Context, tx pgx.Tx, scope, prefix string, when time.Time, now time.Time) (string, error) {
	_, err := tx.Exec(ctx, `
		INSERT INTO sequences (scope, prefix, next_number, created_at, updated_at)
		VALUES ($1, $2, 1, $3, $3)
		ON CONFLICT (scope) DO NOTHING;
	`, scope, prefix, now)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to initialize sequence scope "+scope, err)
	}

	var seq models.SequenceScope
	err = tx.QueryRow(ctx, `
		SELECT scope, prefix, next_number, created_at, updated_at
		FROM sequences
		WHERE scope = $1
		FOR UPDATE;
	`, scope).Scan(&seq.Scope, &seq.Prefix, &seq.NextNumber, &seq.CreatedAt, &seq.UpdatedAt)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to lock sequence scope "+scope, err)
	}

	domainSeq := mapping.ToDomainSequenceScope(seq)
	reference := domainSeq.NextReference(when)

	_, err = tx.Exec(ctx, `
		UPDATE sequences SET next_number = $2, updated_at = $3 WHERE scope = $1;
	`, scope, domainSeq.NextNumber, now)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to advance sequence scope "+scope, err)
	}

	return reference, nil
}
