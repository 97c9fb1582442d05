package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a dated, referenced set of debit/credit lines within a journal.
// It only appears in reports once Validated is true.
type Entry struct {
	EntryID     string      `json:"entryID"` // Primary Key (UUID)
	JournalID   string      `json:"journalID"`
	EntryDate   time.Time   `json:"entryDate"`
	Reference   string      `json:"reference"` // Auto-numbered, e.g. "ACH-2024-0001"
	Description string      `json:"description"`
	DocumentRef string      `json:"documentRef"` // Reference piece justificative
	Validated   bool        `json:"validated"`
	Lines       []EntryLine `json:"lines,omitempty"`
	Timestamps
}

// EntryLine is one posting of an entry against an account. Debit and credit
// are both kept; the legacy tolerance of a line carrying both is preserved.
type EntryLine struct {
	LineID    string          `json:"lineID"` // Primary Key (UUID)
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Label     string          `json:"label"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Timestamps
}

// TotalDebit sums the debit side of the entry's lines.
func (e *Entry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of the entry's lines.
func (e *Entry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// IsBalanced reports whether debits equal credits to 2 decimal places.
func (e *Entry) IsBalanced() bool {
	return e.TotalDebit().Round(2).Equal(e.TotalCredit().Round(2))
}
