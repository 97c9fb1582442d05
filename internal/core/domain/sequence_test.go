package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/atlascompta/compta_backend/internal/core/domain"
)

func TestSequenceScope_NextReference(t *testing.T) {
	scope := domain.SequenceScope{Scope: domain.JournalScope("ACH"), Prefix: "ACH-", NextNumber: 1}
	when := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "ACH-2024-0001", scope.NextReference(when))
	assert.Equal(t, "ACH-2024-0002", scope.NextReference(when))
	assert.EqualValues(t, 3, scope.NextNumber)
}

func TestSequenceScope_NextReference_Sequential(t *testing.T) {
	scope := domain.SequenceScope{Scope: "invoice", Prefix: "INV-", NextNumber: 1}
	when := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= 120; i++ {
		got := scope.NextReference(when)
		assert.Equal(t, fmt.Sprintf("INV-2025-%04d", i), got)
	}
}

func TestSequenceScope_NextReference_WidensPastFourDigits(t *testing.T) {
	scope := domain.SequenceScope{Prefix: "VTE-", NextNumber: 12345}
	when := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "VTE-2024-12345", scope.NextReference(when))
}

func TestSequenceScope_NextReference_YearFromDocumentDate(t *testing.T) {
	scope := domain.SequenceScope{Prefix: "OD-", NextNumber: 7}

	ref := scope.NextReference(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "OD-2023-0007", ref)

	// The counter does not reset across years; only the year label changes.
	ref = scope.NextReference(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "OD-2024-0008", ref)
}

func TestJournalScope(t *testing.T) {
	assert.Equal(t, "journal:ACH", domain.JournalScope("ACH"))
}
