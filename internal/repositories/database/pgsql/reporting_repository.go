package pgsql

import (
	"context"
	"strconv"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new repository for report aggregations.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &ReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepositoryFacade = (*ReportingRepository)(nil)

// appendFilter extends a WHERE clause with the filter's optional conditions,
// using e as the entries alias and a as the accounts alias.
func appendFilter(where string, args []any, filter domain.ActivityFilter) (string, []any) {
	if filter.Start != nil {
		args = append(args, *filter.Start)
		where += ` AND e.entry_date >= $` + strconv.Itoa(len(args))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		where += ` AND e.entry_date <= $` + strconv.Itoa(len(args))
	}
	if len(filter.ClassCodes) > 0 {
		args = append(args, filter.ClassCodes)
		where += ` AND a.class_code = ANY($` + strconv.Itoa(len(args)) + `)`
	}
	return where, args
}

// SumByAccount returns per-account debit and credit totals over validated
// entries matching the filter, ordered by account code.
func (r *ReportingRepository) SumByAccount(ctx context.Context, filter domain.ActivityFilter) ([]domain.AccountActivity, error) {
	where, args := appendFilter(`e.validated = TRUE`, nil, filter)
	query := `
		SELECT a.code, a.name, a.class_code,
		       COALESCE(SUM(l.debit), 0) AS total_debit,
		       COALESCE(SUM(l.credit), 0) AS total_credit
		FROM entry_lines l
		JOIN entries e ON l.entry_id = e.entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE ` + where + `
		GROUP BY a.code, a.name, a.class_code
		ORDER BY a.code;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account activity", err)
	}
	defer rows.Close()

	activity := []domain.AccountActivity{}
	for rows.Next() {
		var row domain.AccountActivity
		if err := rows.Scan(&row.AccountCode, &row.AccountName, &row.ClassCode, &row.Debit, &row.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account activity row", err)
		}
		activity = append(activity, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account activity rows", err)
	}
	return activity, nil
}

// LedgerLines returns the validated postings of one account in
// chronological order.
func (r *ReportingRepository) LedgerLines(ctx context.Context, accountID string, filter domain.ActivityFilter) ([]domain.LedgerLine, error) {
	where, args := appendFilter(`e.validated = TRUE AND l.account_id = $1`, []any{accountID}, filter)
	query := `
		SELECT a.code, e.entry_date, e.reference, COALESCE(l.label, ''), l.debit, l.credit
		FROM entry_lines l
		JOIN entries e ON l.entry_id = e.entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE ` + where + `
		ORDER BY e.entry_date, e.reference;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger for account "+accountID, err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	for rows.Next() {
		var line domain.LedgerLine
		if err := rows.Scan(&line.AccountCode, &line.EntryDate, &line.Reference, &line.Label, &line.Debit, &line.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger row for account "+accountID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger rows for account "+accountID, err)
	}
	return lines, nil
}

// JournalExportRows returns validated entry lines of one journal in
// chronological order, flattened for export.
func (r *ReportingRepository) JournalExportRows(ctx context.Context, journalID string, filter domain.ActivityFilter) ([]domain.JournalExportRow, error) {
	where, args := appendFilter(`e.validated = TRUE AND e.journal_id = $1`, []any{journalID}, filter)
	query := `
		SELECT e.reference, e.entry_date, a.code, a.name, COALESCE(l.label, ''), l.debit, l.credit
		FROM entry_lines l
		JOIN entries e ON l.entry_id = e.entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE ` + where + `
		ORDER BY e.entry_date, e.reference, l.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query export rows for journal "+journalID, err)
	}
	defer rows.Close()

	exportRows := []domain.JournalExportRow{}
	for rows.Next() {
		var row domain.JournalExportRow
		if err := rows.Scan(
			&row.Reference, &row.EntryDate, &row.AccountCode, &row.AccountName, &row.Label, &row.Debit, &row.Credit,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan export row for journal "+journalID, err)
		}
		exportRows = append(exportRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating export rows for journal "+journalID, err)
	}
	return exportRows, nil
}
