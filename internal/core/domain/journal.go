package domain

// JournalType classifies a journal by the documents it records.
type JournalType string

const (
	Purchases JournalType = "PURCHASES"
	Sales     JournalType = "SALES"
	Cash      JournalType = "CASH"
	General   JournalType = "GENERAL"
)

// Journal is a named ledger bucket owning entries. Its reference numbering
// lives in a SequenceScope keyed by JournalScope(code), not on the journal
// row itself.
type Journal struct {
	JournalID   string      `json:"journalID"` // Primary Key (UUID)
	Code        string      `json:"code"`      // Unique, e.g. "ACH"
	Name        string      `json:"name"`
	JournalType JournalType `json:"journalType"`
	Prefix      string      `json:"prefix"` // Reference prefix, e.g. "ACH-"
	Timestamps
}

// JournalScope returns the sequence scope key owning a journal's counter.
func JournalScope(code string) string {
	return "journal:" + code
}
