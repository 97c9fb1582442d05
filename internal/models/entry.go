package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal mirrors the journals table. The numbering counter lives in the
// sequences table, keyed by "journal:{code}".
type Journal struct {
	JournalID   string    `db:"journal_id"`
	Code        string    `db:"code"`
	Name        string    `db:"name"`
	JournalType string    `db:"journal_type"`
	Prefix      string    `db:"prefix"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Entry mirrors the entries table.
type Entry struct {
	EntryID     string    `db:"entry_id"`
	JournalID   string    `db:"journal_id"`
	EntryDate   time.Time `db:"entry_date"`
	Reference   string    `db:"reference"`
	Description *string   `db:"description"`
	DocumentRef *string   `db:"document_ref"`
	Validated   bool      `db:"validated"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// EntryLine mirrors the entry_lines table.
type EntryLine struct {
	LineID    string          `db:"line_id"`
	EntryID   string          `db:"entry_id"`
	AccountID string          `db:"account_id"`
	Label     *string         `db:"label"`
	Debit     decimal.Decimal `db:"debit"`
	Credit    decimal.Decimal `db:"credit"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// SequenceScope mirrors the sequences table.
type SequenceScope struct {
	Scope      string    `db:"scope"`
	Prefix     string    `db:"prefix"`
	NextNumber int64     `db:"next_number"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
