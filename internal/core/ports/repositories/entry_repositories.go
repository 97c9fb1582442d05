package repositories

import (
	"context"
	"time"

	"github.com/atlascompta/compta_backend/internal/core/domain"
)

// JournalRepositoryFacade defines persistence operations for journals.
type JournalRepositoryFacade interface {
	SaveJournal(ctx context.Context, journal domain.Journal) error
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
	// ListJournals returns all journals ordered by code.
	ListJournals(ctx context.Context) ([]domain.Journal, error)
}

// EntryRepositoryFacade defines persistence operations for entries and their
// lines. SaveEntry draws the entry's reference from the sequence scope and
// inserts the entry with all lines in one database transaction, so either
// everything persists or nothing does and the counter still advances
// atomically with the insert.
type EntryRepositoryFacade interface {
	SaveEntry(ctx context.Context, entry domain.Entry, lines []domain.EntryLine, scope, prefix string) (*domain.Entry, error)
	FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.EntryLine, error)
	// ListEntriesByJournal returns a journal's entries ordered by
	// (entry_date, reference).
	ListEntriesByJournal(ctx context.Context, journalID string) ([]domain.Entry, error)
	// MarkEntryValidated flags an entry as final. Returns ErrNotFound when no
	// such entry exists.
	MarkEntryValidated(ctx context.Context, entryID string) error
}

// SequenceRepositoryFacade exposes the atomic per-scope reference generator.
// NextReference locks the scope row (creating it on first use), formats the
// reference for the supplied date and advances the counter, all in one
// transaction.
type SequenceRepositoryFacade interface {
	NextReference(ctx context.Context, scope, prefix string, when time.Time) (string, error)
	FindScope(ctx context.Context, scope string) (*domain.SequenceScope, error)
}
