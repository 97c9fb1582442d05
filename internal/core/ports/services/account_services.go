package services

import (
	"context"
	"io"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/atlascompta/compta_backend/internal/dto"
)

// AccountReaderSvc defines read operations for chart-of-accounts data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountByCode retrieves a specific account by its unique code.
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves all accounts ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for chart-of-accounts data
type AccountWriterSvc interface {
	// CreateAccount persists a new account, deriving its class from the code.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// SeedChart loads the built-in Moroccan chart of accounts when the
	// accounts table is empty. It is a no-op otherwise.
	SeedChart(ctx context.Context) error

	// ImportCSV bulk-creates accounts from a code,name,class,type CSV
	// stream, skipping codes that already exist. Returns created and
	// skipped counts.
	ImportCSV(ctx context.Context, r io.Reader) (created int, skipped int, err error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
