package services

import (
	"context"

	"github.com/atlascompta/compta_backend/internal/core/domain"
)

// ReportingService defines operations for generating financial reports.
// Every report aggregates validated entries only.
type ReportingService interface {
	// TrialBalance generates the per-account debit/credit/balance rows over
	// the filtered period.
	TrialBalance(ctx context.Context, filter domain.ActivityFilter) ([]domain.TrialBalanceRow, error)

	// Ledger returns one account's chronological postings.
	Ledger(ctx context.Context, accountID string, filter domain.ActivityFilter) ([]domain.LedgerLine, error)

	// BalanceSheet generates the simplified class-code balance sheet.
	BalanceSheet(ctx context.Context, filter domain.ActivityFilter) (*domain.BalanceSheetReport, error)

	// IncomeStatement nets revenue classes against expense classes.
	IncomeStatement(ctx context.Context, filter domain.ActivityFilter) (*domain.IncomeStatementReport, error)
}

// ExportService renders reports and documents as downloadable files. Every
// method returns the file bytes with a suggested filename.
type ExportService interface {
	// ExportJournalExcel renders a journal's validated lines as an xlsx
	// workbook.
	ExportJournalExcel(ctx context.Context, journalID string, filter domain.ActivityFilter) ([]byte, string, error)

	// ExportJournalPDF renders the same lines as a PDF document.
	ExportJournalPDF(ctx context.Context, journalID string, filter domain.ActivityFilter) ([]byte, string, error)

	// ExportTrialBalanceExcel renders the per-account balance rows as an
	// xlsx workbook.
	ExportTrialBalanceExcel(ctx context.Context, filter domain.ActivityFilter) ([]byte, string, error)

	// ExportVatDeclarationExcel renders an already-built declaration's
	// lines and totals as an xlsx workbook.
	ExportVatDeclarationExcel(ctx context.Context, decl *domain.VatDeclaration) ([]byte, string, error)

	// ExportVatDeclarationPDF renders the declaration as a PDF statement.
	ExportVatDeclarationPDF(ctx context.Context, decl *domain.VatDeclaration) ([]byte, string, error)

	// ExportInvoicePDF renders an invoice or quote, with its customer
	// block and HT/TVA/TTC totals, as a PDF statement.
	ExportInvoicePDF(ctx context.Context, invoice *domain.Invoice, customer *domain.Customer) ([]byte, string, error)

	// ExportSocietesExcel renders the managed-company register as an xlsx
	// workbook, one row per societe with its cabinet resolved.
	ExportSocietesExcel(ctx context.Context) ([]byte, string, error)
}
