package domain

import (
	"fmt"
	"time"
)

// Well-known sequence scopes. Journals use JournalScope(code).
const (
	ScopeInvoice = "invoice"
	ScopeQuote   = "quote"
)

// SequenceScope is a monotonic, year-scoped document numbering counter.
// One row per scope; a journal and the invoice/quote numbering share this
// single abstraction. Counters are never rewound, even when the owning
// document is deleted.
type SequenceScope struct {
	Scope      string `json:"scope"` // Primary Key, e.g. "journal:ACH"
	Prefix     string `json:"prefix"`
	NextNumber int64  `json:"nextNumber"`
	Timestamps
}

// NextReference formats the next reference as {prefix}{year}-{NNNN} using the
// calendar year of when (today if zero), then increments the counter by one.
// Callers must hold the scope's row lock for the increment to be safe against
// concurrent document creation.
func (s *SequenceScope) NextReference(when time.Time) string {
	if when.IsZero() {
		when = time.Now()
	}
	ref := fmt.Sprintf("%s%d-%04d", s.Prefix, when.Year(), s.NextNumber)
	s.NextNumber++
	return ref
}
