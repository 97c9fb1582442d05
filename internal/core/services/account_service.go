package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/dto"
	"github.com/atlascompta/compta_backend/internal/platform/seed"
)

// accountService provides chart-of-accounts operations.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// classCodeOf derives the PCM class from an account code's leading digit.
func classCodeOf(code string) string {
	return code[:1]
}

// CreateAccount persists a new account, deriving its class from the code.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" || code[0] < '1' || code[0] > '8' {
		return nil, fmt.Errorf("%w: account code must start with a class digit 1-8", apperrors.ErrValidation)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        code,
		Name:        strings.TrimSpace(req.Name),
		ClassCode:   classCodeOf(code),
		AccountType: req.AccountType,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("code", code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("code", code), slog.String("account_id", account.AccountID))
	return &account, nil
}

// GetAccountByID retrieves a specific account by its ID.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// GetAccountByCode retrieves a specific account by its unique code.
func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByCode(ctx, code)
}

// ListAccounts retrieves all accounts ordered by code.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

// SeedChart loads the bundled Moroccan chart of accounts when the accounts
// table is empty. It is a no-op otherwise.
func (s *accountService) SeedChart(ctx context.Context) error {
	count, err := s.accountRepo.CountAccounts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.LogDebug(ctx, "Chart already seeded", slog.Int64("accounts", count))
		return nil
	}

	chart, err := seed.Chart()
	if err != nil {
		return apperrors.NewAppError(500, "failed to load bundled chart of accounts", err)
	}

	now := time.Now()
	accounts := make([]domain.Account, len(chart))
	for i, row := range chart {
		accounts[i] = domain.Account{
			AccountID:   uuid.NewString(),
			Code:        row.Code,
			Name:        row.Name,
			ClassCode:   row.Class,
			AccountType: domain.AccountType(row.Type),
			Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
		}
	}

	created, err := s.accountRepo.SaveAccounts(ctx, accounts)
	if err != nil {
		s.LogError(ctx, err, "Failed to seed chart of accounts")
		return err
	}
	s.LogInfo(ctx, "Chart of accounts seeded", slog.Int("created", created))
	return nil
}

// ImportCSV bulk-creates accounts from a code,name,class,type CSV stream,
// skipping codes that already exist.
func (s *accountService) ImportCSV(ctx context.Context, r io.Reader) (int, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: empty or unreadable CSV", apperrors.ErrValidation)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"code", "name", "class", "type"} {
		if _, ok := col[required]; !ok {
			return 0, 0, fmt.Errorf("%w: CSV requires columns code,name,class,type", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	accounts := []domain.Account{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, 0, fmt.Errorf("%w: malformed CSV row", apperrors.ErrValidation)
		}
		accounts = append(accounts, domain.Account{
			AccountID:   uuid.NewString(),
			Code:        strings.TrimSpace(record[col["code"]]),
			Name:        strings.TrimSpace(record[col["name"]]),
			ClassCode:   strings.TrimSpace(record[col["class"]]),
			AccountType: domain.AccountType(strings.ToUpper(strings.TrimSpace(record[col["type"]]))),
			Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
		})
	}

	created, err := s.accountRepo.SaveAccounts(ctx, accounts)
	if err != nil {
		s.LogError(ctx, err, "Failed to import accounts from CSV")
		return 0, 0, err
	}
	skipped := len(accounts) - created
	s.LogInfo(ctx, "Accounts imported from CSV", slog.Int("created", created), slog.Int("skipped", skipped))
	return created, skipped, nil
}
