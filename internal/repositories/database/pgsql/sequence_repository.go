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

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates a new repository for document numbering scopes.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepositoryFacade {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepositoryFacade = (*PgxSequenceRepository)(nil)

// NextReference draws the next reference for a scope in its own transaction.
// Documents that must commit atomically with their number use
// nextReferenceInTx inside their own repository transaction instead.
func (r *PgxSequenceRepository) NextReference(ctx context.Context, scope, prefix string, when time.Time) (string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx)

	reference, err := nextReferenceInTx(ctx, tx, scope, prefix, when, time.Now())
	if err != nil {
		return "", err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", err
	}
	return reference, nil
}

// FindScope retrieves one numbering scope without locking it.
func (r *PgxSequenceRepository) FindScope(ctx context.Context, scope string) (*domain.SequenceScope, error) {
	var m models.SequenceScope
	err := r.Pool.QueryRow(ctx, `
		SELECT scope, prefix, next_number, created_at, updated_at
		FROM sequences
		WHERE scope = $1;
	`, scope).Scan(&m.Scope, &m.Prefix, &m.NextNumber, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sequence scope "+scope, err)
	}
	seq := mapping.ToDomainSequenceScope(m)
	return &seq, nil
}
