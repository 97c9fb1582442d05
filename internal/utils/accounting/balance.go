package accounting

import (
	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PruneZeroLines drops lines whose debit and credit are both zero. Those are
// empty form rows, not an error. Lines carrying both a debit and a credit
// are kept as-is for compatibility with historical data.
func PruneZeroLines(lines []domain.EntryLine) []domain.EntryLine {
	kept := make([]domain.EntryLine, 0, len(lines))
	for _, l := range lines {
		if l.Debit.IsZero() && l.Credit.IsZero() {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}

// SumLines totals the debit and credit sides of a line set.
func SumLines(lines []domain.EntryLine) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// ValidateBalanced checks that the line set's debits equal its credits to 2
// decimal places. On mismatch it returns an UnbalancedEntryError carrying
// both computed totals so the caller can display them.
func ValidateBalanced(lines []domain.EntryLine) error {
	debit, credit := SumLines(lines)
	if !debit.Round(2).Equal(credit.Round(2)) {
		return &apperrors.UnbalancedEntryError{
			TotalDebit:  debit.Round(2),
			TotalCredit: credit.Round(2),
		}
	}
	return nil
}
