package mapping

import (
	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/atlascompta/compta_backend/internal/models"
)

// ToModelJournal converts a domain Journal to its row form.
func ToModelJournal(j domain.Journal) models.Journal {
	return models.Journal{
		JournalID:   j.JournalID,
		Code:        j.Code,
		Name:        j.Name,
		JournalType: string(j.JournalType),
		Prefix:      j.Prefix,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

// ToDomainJournal converts a journals row to its domain form.
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:   m.JournalID,
		Code:        m.Code,
		Name:        m.Name,
		JournalType: domain.JournalType(m.JournalType),
		Prefix:      m.Prefix,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelEntry converts a domain Entry header to its row form.
func ToModelEntry(e domain.Entry) models.Entry {
	return models.Entry{
		EntryID:     e.EntryID,
		JournalID:   e.JournalID,
		EntryDate:   e.EntryDate,
		Reference:   e.Reference,
		Description: strPtr(e.Description),
		DocumentRef: strPtr(e.DocumentRef),
		Validated:   e.Validated,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToDomainEntry converts an entries row to its domain form, without lines.
func ToDomainEntry(m models.Entry) domain.Entry {
	return domain.Entry{
		EntryID:     m.EntryID,
		JournalID:   m.JournalID,
		EntryDate:   m.EntryDate,
		Reference:   m.Reference,
		Description: strVal(m.Description),
		DocumentRef: strVal(m.DocumentRef),
		Validated:   m.Validated,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelEntryLine converts a domain EntryLine to its row form.
func ToModelEntryLine(l domain.EntryLine) models.EntryLine {
	return models.EntryLine{
		LineID:    l.LineID,
		EntryID:   l.EntryID,
		AccountID: l.AccountID,
		Label:     strPtr(l.Label),
		Debit:     l.Debit,
		Credit:    l.Credit,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// ToDomainEntryLine converts an entry_lines row to its domain form.
func ToDomainEntryLine(m models.EntryLine) domain.EntryLine {
	return domain.EntryLine{
		LineID:    m.LineID,
		EntryID:   m.EntryID,
		AccountID: m.AccountID,
		Label:     strVal(m.Label),
		Debit:     m.Debit,
		Credit:    m.Credit,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainEntryLineSlice converts a slice of entry_lines rows.
func ToDomainEntryLineSlice(ms []models.EntryLine) []domain.EntryLine {
	out := make([]domain.EntryLine, len(ms))
	for i, m := range ms {
		out[i] = ToDomainEntryLine(m)
	}
	return out
}

// ToDomainSequenceScope converts a sequences row to its domain form.
func ToDomainSequenceScope(m models.SequenceScope) domain.SequenceScope {
	return domain.SequenceScope{
		Scope:      m.Scope,
		Prefix:     m.Prefix,
		NextNumber: m.NextNumber,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}
