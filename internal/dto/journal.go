package dto

import (
	"time"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalRequest defines the data needed to create a journal.
type CreateJournalRequest struct {
	Code        string             `json:"code" binding:"required,max=10"`
	Name        string             `json:"name" binding:"required"`
	JournalType domain.JournalType `json:"journalType" binding:"required,oneof=PURCHASES SALES CASH GENERAL"`
	Prefix      string             `json:"prefix" binding:"required,max=10"`
}

// EntryLineRequest is one line of an entry creation request. Debit and
// credit default to zero when omitted.
type EntryLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Label     string          `json:"label"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// CreateEntryRequest defines the data needed to record an entry with its
// lines. The reference is never supplied; it is generated server-side.
type CreateEntryRequest struct {
	EntryDate   string             `json:"entryDate" binding:"required,datetime=2006-01-02"`
	Description string             `json:"description"`
	DocumentRef string             `json:"documentRef"`
	Lines       []EntryLineRequest `json:"lines" binding:"required,dive"`
}

// JournalResponse defines the data returned for a journal.
type JournalResponse struct {
	JournalID   string             `json:"journalID"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	JournalType domain.JournalType `json:"journalType"`
	Prefix      string             `json:"prefix"`
}

// EntryLineResponse defines the data returned for one entry line.
type EntryLineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Label     string          `json:"label"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// EntryResponse defines the data returned for an entry and its lines.
type EntryResponse struct {
	EntryID     string              `json:"entryID"`
	JournalID   string              `json:"journalID"`
	EntryDate   string              `json:"entryDate"`
	Reference   string              `json:"reference"`
	Description string              `json:"description"`
	DocumentRef string              `json:"documentRef"`
	Validated   bool                `json:"validated"`
	TotalDebit  decimal.Decimal     `json:"totalDebit"`
	TotalCredit decimal.Decimal     `json:"totalCredit"`
	Lines       []EntryLineResponse `json:"lines"`
}

// ListJournalsResponse wraps the list of journals.
type ListJournalsResponse struct {
	Journals []JournalResponse `json:"journals"`
}

// ListEntriesResponse wraps a journal's entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO
func ToJournalResponse(j *domain.Journal) JournalResponse {
	return JournalResponse{
		JournalID:   j.JournalID,
		Code:        j.Code,
		Name:        j.Name,
		JournalType: j.JournalType,
		Prefix:      j.Prefix,
	}
}

// ToEntryResponse converts a domain.Entry with its lines to EntryResponse DTO
func ToEntryResponse(e *domain.Entry) EntryResponse {
	lines := make([]EntryLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = EntryLineResponse{
			LineID:    l.LineID,
			AccountID: l.AccountID,
			Label:     l.Label,
			Debit:     l.Debit,
			Credit:    l.Credit,
		}
	}
	return EntryResponse{
		EntryID:     e.EntryID,
		JournalID:   e.JournalID,
		EntryDate:   e.EntryDate.Format(time.DateOnly),
		Reference:   e.Reference,
		Description: e.Description,
		DocumentRef: e.DocumentRef,
		Validated:   e.Validated,
		TotalDebit:  e.TotalDebit(),
		TotalCredit: e.TotalCredit(),
		Lines:       lines,
	}
}

// ToListEntriesResponse converts a slice of domain.Entry to ListEntriesResponse DTO
func ToListEntriesResponse(entries []domain.Entry) ListEntriesResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return ListEntriesResponse{Entries: responses}
}
