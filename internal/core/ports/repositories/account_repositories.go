package repositories

import (
	"context"

	"github.com/atlascompta/compta_backend/internal/core/domain"
)

// AccountRepositoryFacade defines persistence operations for the chart of
// accounts.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	// SaveAccounts bulk-inserts accounts, skipping codes that already exist,
	// and returns the number actually created.
	SaveAccounts(ctx context.Context, accounts []domain.Account) (int, error)
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	// ListAccounts returns all accounts ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	CountAccounts(ctx context.Context) (int64, error)
}
