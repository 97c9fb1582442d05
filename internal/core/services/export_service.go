package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/pkg/export"
)

// exportService renders reports and documents as downloadable files.
type exportService struct {
	BaseService
	journalRepo   portsrepo.JournalRepositoryFacade
	reportingRepo portsrepo.ReportingRepositoryFacade
	societeRepo   portsrepo.SocieteRepositoryFacade
	cabinetRepo   portsrepo.CabinetRepositoryFacade
}

// NewExportService creates a new ExportService.
func NewExportService(
	journalRepo portsrepo.JournalRepositoryFacade,
	reportingRepo portsrepo.ReportingRepositoryFacade,
	societeRepo portsrepo.SocieteRepositoryFacade,
	cabinetRepo portsrepo.CabinetRepositoryFacade,
) portssvc.ExportService {
	return &exportService{
		journalRepo:   journalRepo,
		reportingRepo: reportingRepo,
		societeRepo:   societeRepo,
		cabinetRepo:   cabinetRepo,
	}
}

var _ portssvc.ExportService = (*exportService)(nil)

var journalExportHeaders = []string{"Référence", "Date", "Compte", "Intitulé", "Libellé", "Débit", "Crédit"}

// journalTable gathers a journal's validated lines into a renderable table.
func (s *exportService) journalTable(ctx context.Context, journalID string, filter domain.ActivityFilter) (export.Table, string, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return export.Table{}, "", err
	}

	rows, err := s.reportingRepo.JournalExportRows(ctx, journalID, filter)
	if err != nil {
		return export.Table{}, "", err
	}

	table := export.Table{
		Title:   "Journal " + journal.Code,
		Headers: journalExportHeaders,
		Rows:    make([][]string, len(rows)),
	}
	for i, row := range rows {
		table.Rows[i] = []string{
			row.Reference,
			row.EntryDate.Format(time.DateOnly),
			row.AccountCode,
			row.AccountName,
			row.Label,
			row.Debit.StringFixed(2),
			row.Credit.StringFixed(2),
		}
	}

	s.LogInfo(ctx, "Journal export prepared",
		slog.String("journal_id", journalID),
		slog.Int("rows", len(rows)))
	return table, journal.Code, nil
}

// ExportJournalExcel renders a journal's validated lines as an xlsx
// workbook.
func (s *exportService) ExportJournalExcel(ctx context.Context, journalID string, filter domain.ActivityFilter) ([]byte, string, error) {
	table, code, err := s.journalTable(ctx, journalID, filter)
	if err != nil {
		return nil, "", err
	}
	data, err := export.ToExcel(table)
	if err != nil {
		s.LogError(ctx, err, "Failed to render journal Excel", slog.String("journal_id", journalID))
		return nil, "", err
	}
	return data, fmt.Sprintf("journal_%s.xlsx", code), nil
}

// ExportJournalPDF renders the same lines as a PDF document.
func (s *exportService) ExportJournalPDF(ctx context.Context, journalID string, filter domain.ActivityFilter) ([]byte, string, error) {
	table, code, err := s.journalTable(ctx, journalID, filter)
	if err != nil {
		return nil, "", err
	}
	data, err := export.ToPDF(table)
	if err != nil {
		s.LogError(ctx, err, "Failed to render journal PDF", slog.String("journal_id", journalID))
		return nil, "", err
	}
	return data, fmt.Sprintf("journal_%s.pdf", code), nil
}

// ExportTrialBalanceExcel renders the per-account balance rows as an xlsx
// workbook.
func (s *exportService) ExportTrialBalanceExcel(ctx context.Context, filter domain.ActivityFilter) ([]byte, string, error) {
	activity, err := s.reportingRepo.SumByAccount(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	table := export.Table{
		Title:   "Balance générale",
		Headers: []string{"Compte", "Intitulé", "Débit", "Crédit", "Solde"},
		Rows:    make([][]string, len(activity)),
	}
	for i, a := range activity {
		table.Rows[i] = []string{
			a.AccountCode,
			a.AccountName,
			a.Debit.Round(2).StringFixed(2),
			a.Credit.Round(2).StringFixed(2),
			a.Debit.Sub(a.Credit).Round(2).StringFixed(2),
		}
	}

	data, err := export.ToExcel(table)
	if err != nil {
		s.LogError(ctx, err, "Failed to render trial balance Excel")
		return nil, "", err
	}
	s.LogInfo(ctx, "Trial balance export prepared", slog.Int("rows", len(activity)))
	return data, "balance_generale.xlsx", nil
}

var vatDeclarationHeaders = []string{"Date", "Facture", "Description", "Qté", "PU", "HT", "TVA"}

// vatDeclarationTable lays out an already-built declaration's lines.
func vatDeclarationTable(decl *domain.VatDeclaration) export.Table {
	table := export.Table{
		Title:   "Déclaration TVA " + decl.Period,
		Headers: vatDeclarationHeaders,
		Rows:    make([][]string, len(decl.Lines)),
	}
	for i, line := range decl.Lines {
		table.Rows[i] = []string{
			line.InvoiceDate.Format(time.DateOnly),
			line.InvoiceNumber,
			line.Description,
			line.Quantity.String(),
			line.UnitPrice.StringFixed(2),
			line.TotalHT.StringFixed(2),
			line.TVA.StringFixed(2),
		}
	}
	return table
}

// ExportVatDeclarationExcel renders the declaration's lines as an xlsx
// workbook.
func (s *exportService) ExportVatDeclarationExcel(ctx context.Context, decl *domain.VatDeclaration) ([]byte, string, error) {
	data, err := export.ToExcel(vatDeclarationTable(decl))
	if err != nil {
		s.LogError(ctx, err, "Failed to render VAT declaration Excel", slog.String("period", decl.Period))
		return nil, "", err
	}
	return data, fmt.Sprintf("declaration_tva_%s.xlsx", decl.Period), nil
}

// ExportVatDeclarationPDF renders the declaration as a PDF statement with
// its period bounds and totals.
func (s *exportService) ExportVatDeclarationPDF(ctx context.Context, decl *domain.VatDeclaration) ([]byte, string, error) {
	statement := export.Statement{
		Title: "Déclaration TVA " + decl.Period,
		Meta: []string{
			"Période: " + decl.Start.Format(time.DateOnly) + " au " + decl.End.Format(time.DateOnly),
			"Fréquence: " + decl.Frequency,
		},
		Table: vatDeclarationTable(decl),
		Totals: [][2]string{
			{"Total HT", decl.TotalHT.StringFixed(2)},
			{"Total TVA", decl.TotalTVA.StringFixed(2)},
		},
	}
	data, err := export.ToStatementPDF(statement)
	if err != nil {
		s.LogError(ctx, err, "Failed to render VAT declaration PDF", slog.String("period", decl.Period))
		return nil, "", err
	}
	return data, fmt.Sprintf("declaration_tva_%s.pdf", decl.Period), nil
}

// ExportInvoicePDF renders an invoice or quote as a PDF statement. The
// invoice carries resolved VAT rates on its items; the customer block is
// rendered in the header.
func (s *exportService) ExportInvoicePDF(ctx context.Context, invoice *domain.Invoice, customer *domain.Customer) ([]byte, string, error) {
	kind := "Facture"
	if invoice.IsQuote {
		kind = "Devis"
	}

	meta := []string{
		"Date: " + invoice.InvoiceDate.Format(time.DateOnly),
		"Client: " + customer.Name,
	}
	if customer.Address != "" {
		meta = append(meta, customer.Address)
	}
	if customer.VatID != "" {
		meta = append(meta, "Identifiant TVA: "+customer.VatID)
	}

	table := export.Table{
		Headers: []string{"Description", "Qté", "PU", "TVA", "HT"},
		Rows:    make([][]string, len(invoice.Items)),
	}
	for i, item := range invoice.Items {
		rate := "-"
		if item.VatRate != nil {
			rate = item.VatRate.Rate.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
		}
		table.Rows[i] = []string{
			item.Description,
			item.Quantity.String(),
			item.UnitPrice.StringFixed(2),
			rate,
			item.TotalHT().StringFixed(2),
		}
	}

	statement := export.Statement{
		Title: kind + " " + invoice.Number,
		Meta:  meta,
		Table: table,
		Totals: [][2]string{
			{"Total HT", invoice.TotalHT().StringFixed(2)},
			{"Total TVA", invoice.TotalTVA().StringFixed(2)},
			{"Total TTC", invoice.TotalTTC().StringFixed(2)},
		},
	}
	data, err := export.ToStatementPDF(statement)
	if err != nil {
		s.LogError(ctx, err, "Failed to render invoice PDF", slog.String("number", invoice.Number))
		return nil, "", err
	}
	return data, invoice.Number + ".pdf", nil
}

// ExportSocietesExcel renders the managed-company register as an xlsx
// workbook, one row per societe with its cabinet name resolved.
func (s *exportService) ExportSocietesExcel(ctx context.Context) ([]byte, string, error) {
	societes, err := s.societeRepo.ListSocietes(ctx, "")
	if err != nil {
		return nil, "", err
	}
	cabinets, err := s.cabinetRepo.ListCabinets(ctx)
	if err != nil {
		return nil, "", err
	}
	cabinetNames := make(map[string]string, len(cabinets))
	for _, cabinet := range cabinets {
		cabinetNames[cabinet.CabinetID] = cabinet.Name
	}

	table := export.Table{
		Title:   "Sociétés",
		Headers: []string{"ID", "Nom", "Type", "Capital", "Gérant", "RC", "Cabinet"},
		Rows:    make([][]string, len(societes)),
	}
	for i, societe := range societes {
		table.Rows[i] = []string{
			societe.SocieteID,
			societe.Name,
			societe.TypeJuridique,
			societe.Capital.StringFixed(2),
			societe.Gerant,
			societe.RC,
			cabinetNames[societe.CabinetID],
		}
	}

	data, err := export.ToExcel(table)
	if err != nil {
		s.LogError(ctx, err, "Failed to render societes Excel")
		return nil, "", err
	}
	s.LogInfo(ctx, "Societes export prepared", slog.Int("rows", len(societes)))
	return data, "societes.xlsx", nil
}
