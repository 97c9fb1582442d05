package pgsql

import (
	"context"
	"errors"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	"github.com/atlascompta/compta_backend/internal/models"
	"github.com/atlascompta/compta_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, code, name, class_code, account_type, created_at, updated_at`

// SaveAccount inserts one account. A duplicate code maps to ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, code, name, class_code, account_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.Code, m.Name, m.ClassCode, m.AccountType, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert account "+m.Code, err)
	}
	return nil
}

// SaveAccounts bulk-inserts accounts in one transaction, skipping codes that
// already exist, and returns the number actually created.
func (r *PgxAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO accounts (account_id, code, name, class_code, account_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (code) DO NOTHING;
	`
	created := 0
	for _, account := range accounts {
		m := mapping.ToModelAccount(account)
		tag, err := tx.Exec(ctx, query,
			m.AccountID, m.Code, m.Name, m.ClassCode, m.AccountType, m.CreatedAt, m.UpdatedAt,
		)
		if err != nil {
			return 0, apperrors.NewAppError(500, "failed to insert account "+m.Code, err)
		}
		created += int(tag.RowsAffected())
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return created, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return r.findAccount(ctx, `account_id = $1`, accountID)
}

// FindAccountByCode retrieves an account by its unique code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return r.findAccount(ctx, `code = $1`, code)
}

func (r *PgxAccountRepository) findAccount(ctx context.Context, where string, arg any) (*domain.Account, error) {
	var m models.Account
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where + `;`
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.AccountID, &m.Code, &m.Name, &m.ClassCode, &m.AccountType, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account", err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccounts retrieves all accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(
			&m.AccountID, &m.Code, &m.Name, &m.ClassCode, &m.AccountType, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}

	return mapping.ToDomainAccountSlice(accounts), nil
}

// CountAccounts returns the number of accounts in the chart.
func (r *PgxAccountRepository) CountAccounts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM accounts;`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count accounts", err)
	}
	return count, nil
}
