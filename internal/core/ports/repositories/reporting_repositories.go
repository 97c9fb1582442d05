package repositories

import (
	"context"

	"github.com/atlascompta/compta_backend/internal/core/domain"
)

// ReportingRepositoryFacade exposes read-only aggregations over validated
// journal entries. Every report the service layer produces derives from
// SumByAccount so filtering semantics stay in one query.
type ReportingRepositoryFacade interface {
	// SumByAccount returns per-account debit and credit totals over
	// validated entries matching the filter, ordered by account code. Date
	// bounds are inclusive; an empty ClassCodes slice means all classes.
	SumByAccount(ctx context.Context, filter domain.ActivityFilter) ([]domain.AccountActivity, error)
	// LedgerLines returns the validated entry lines of one account ordered
	// by (entry_date, reference).
	LedgerLines(ctx context.Context, accountID string, filter domain.ActivityFilter) ([]domain.LedgerLine, error)
	// JournalExportRows returns validated entry lines of one journal in
	// chronological order, flattened for export.
	JournalExportRows(ctx context.Context, journalID string, filter domain.ActivityFilter) ([]domain.JournalExportRow, error)
}
