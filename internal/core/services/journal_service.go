package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/dto"
	"github.com/atlascompta/compta_backend/internal/utils/accounting"
)

// journalService provides journal and entry operations.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	entryRepo   portsrepo.EntryRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, entryRepo portsrepo.EntryRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournal persists a new journal with its reference prefix.
func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.Journal, error) {
	now := time.Now()
	journal := domain.Journal{
		JournalID:   uuid.NewString(),
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:        strings.TrimSpace(req.Name),
		JournalType: req.JournalType,
		Prefix:      req.Prefix,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.journalRepo.SaveJournal(ctx, journal); err != nil {
		s.LogError(ctx, err, "Failed to create journal", slog.String("code", journal.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Journal created", slog.String("code", journal.Code), slog.String("journal_id", journal.JournalID))
	return &journal, nil
}

// GetJournalByID retrieves a specific journal by its ID.
func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	return s.journalRepo.FindJournalByID(ctx, journalID)
}

// ListJournals retrieves all journals ordered by code.
func (s *journalService) ListJournals(ctx context.Context) ([]domain.Journal, error) {
	return s.journalRepo.ListJournals(ctx)
}

// RecordEntry prunes zero lines, checks balance and persists the entry with
// a freshly drawn reference. The reference draw and the insert share one
// transaction inside the repository, so concurrent saves cannot collide.
func (s *journalService) RecordEntry(ctx context.Context, journalID string, req dto.CreateEntryRequest) (*domain.Entry, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}

	entryDate, err := time.Parse(time.DateOnly, req.EntryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: entry date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	now := time.Now()
	entryID := uuid.NewString()
	lines := make([]domain.EntryLine, len(req.Lines))
	for i, lr := range req.Lines {
		lines[i] = domain.EntryLine{
			LineID:     uuid.NewString(),
			EntryID:    entryID,
			AccountID:  lr.AccountID,
			Label:      strings.TrimSpace(lr.Label),
			Debit:      lr.Debit,
			Credit:     lr.Credit,
			Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
		}
	}

	// Blank form rows are dropped silently, then both sides must match.
	lines = accounting.PruneZeroLines(lines)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: entry has no non-empty lines", apperrors.ErrValidation)
	}
	if err := accounting.ValidateBalanced(lines); err != nil {
		s.LogInfo(ctx, "Unbalanced entry rejected", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		return nil, err
	}

	for _, line := range lines {
		if _, err := s.accountRepo.FindAccountByID(ctx, line.AccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown account %s", apperrors.ErrValidation, line.AccountID)
			}
			return nil, err
		}
	}

	entry := domain.Entry{
		EntryID:     entryID,
		JournalID:   journal.JournalID,
		EntryDate:   entryDate,
		Description: strings.TrimSpace(req.Description),
		DocumentRef: strings.TrimSpace(req.DocumentRef),
		Validated:   false,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	saved, err := s.entryRepo.SaveEntry(ctx, entry, lines, domain.JournalScope(journal.Code), journal.Prefix)
	if err != nil {
		s.LogError(ctx, err, "Failed to record entry", slog.String("journal_id", journalID))
		return nil, err
	}

	s.LogInfo(ctx, "Entry recorded",
		slog.String("journal_id", journalID),
		slog.String("entry_id", saved.EntryID),
		slog.String("reference", saved.Reference))
	return saved, nil
}

// GetEntryByID retrieves an entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.entryRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntriesByJournal retrieves a journal's entries with their lines.
func (s *journalService) ListEntriesByJournal(ctx context.Context, journalID string) ([]domain.Entry, error) {
	entries, err := s.entryRepo.ListEntriesByJournal(ctx, journalID)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		lines, err := s.entryRepo.FindLinesByEntryID(ctx, entries[i].EntryID)
		if err != nil {
			return nil, err
		}
		entries[i].Lines = lines
	}
	return entries, nil
}

// ValidateEntry marks an entry as final so reports start counting it.
func (s *journalService) ValidateEntry(ctx context.Context, entryID string) error {
	if err := s.entryRepo.MarkEntryValidated(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to validate entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Entry validated", slog.String("entry_id", entryID))
	return nil
}
