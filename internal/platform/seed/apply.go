package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
)

// ApplyDefaults inserts the standard journals and VAT rates, skipping any
// that already exist. It runs on every startup.
func ApplyDefaults(ctx context.Context, repos *portsrepo.RepositoryProvider) error {
	now := time.Now()

	for _, journal := range DefaultJournals() {
		journal.JournalID = uuid.NewString()
		journal.CreatedAt = now
		journal.UpdatedAt = now
		if err := repos.JournalRepo.SaveJournal(ctx, journal); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			return fmt.Errorf("seeding journal %s: %w", journal.Code, err)
		}
	}

	for _, rate := range DefaultVatRates() {
		rate.VatRateID = uuid.NewString()
		rate.CreatedAt = now
		rate.UpdatedAt = now
		if err := repos.VatRateRepo.SaveVatRate(ctx, rate); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			return fmt.Errorf("seeding VAT rate %s: %w", rate.Code, err)
		}
	}

	return nil
}

// EnsureAdminUser creates the initial admin account when the user table is
// empty, so a fresh install can log in. Once any user exists it does
// nothing.
func EnsureAdminUser(ctx context.Context, userRepo portsrepo.UserRepositoryFacade, email, password string) error {
	count, err := userRepo.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		Role:         "admin",
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := userRepo.SaveUser(ctx, user); err != nil {
		// A concurrent start may have created the user between the count
		// and the insert.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("seeding admin user %s: %w", user.Email, err)
	}
	return nil
}
