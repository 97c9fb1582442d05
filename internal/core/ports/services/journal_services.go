package services

import (
	"context"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/atlascompta/compta_backend/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalByID retrieves a specific journal by its ID.
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournals retrieves all journals ordered by code.
	ListJournals(ctx context.Context) ([]domain.Journal, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateJournal persists a new journal with its reference prefix.
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.Journal, error)
}

// EntryReaderSvc defines read operations for entry data
type EntryReaderSvc interface {
	// GetEntryByID retrieves an entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error)

	// ListEntriesByJournal retrieves a journal's entries with their lines.
	ListEntriesByJournal(ctx context.Context, journalID string) ([]domain.Entry, error)
}

// EntryWriterSvc defines write operations for entry data
type EntryWriterSvc interface {
	// RecordEntry prunes zero lines, checks balance and persists the entry
	// with a freshly drawn reference, all-or-nothing.
	RecordEntry(ctx context.Context, journalID string, req dto.CreateEntryRequest) (*domain.Entry, error)

	// ValidateEntry marks an entry as final so reports start counting it.
	ValidateEntry(ctx context.Context, entryID string) error
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	EntryReaderSvc
	EntryWriterSvc
}
