package dto

import (
	"time"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportPeriodParams defines the optional date bounds of a report, both
// inclusive.
type ReportPeriodParams struct {
	Start string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End   string `form:"end" binding:"omitempty,datetime=2006-01-02"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// LedgerLineResponse represents one posting of the general ledger response
type LedgerLineResponse struct {
	EntryDate string          `json:"entryDate"`
	Reference string          `json:"reference"`
	Label     string          `json:"label"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// LedgerResponse represents one account's ledger with running totals
type LedgerResponse struct {
	AccountCode string               `json:"accountCode"`
	Lines       []LedgerLineResponse `json:"lines"`
	Totals      struct {
		Debit   decimal.Decimal `json:"debit"`
		Credit  decimal.Decimal `json:"credit"`
		Balance decimal.Decimal `json:"balance"`
	} `json:"totals"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	Assets            decimal.Decimal `json:"assets"`
	LiabilitiesEquity decimal.Decimal `json:"liabilitiesEquity"`
}

// IncomeStatementResponse represents the income statement report response
type IncomeStatementResponse struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Result   decimal.Decimal `json:"result"`
}

// ToTrialBalanceResponse converts domain trial balance rows to a DTO response
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Rows: make([]TrialBalanceRowResponse, len(rows)),
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for i, row := range rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			Debit:       row.Debit,
			Credit:      row.Credit,
			Balance:     row.Balance,
		}
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}

	response.Totals.Debit = totalDebit
	response.Totals.Credit = totalCredit

	return response
}

// ToLedgerResponse converts an account's domain ledger lines to a DTO response
func ToLedgerResponse(accountCode string, lines []domain.LedgerLine) LedgerResponse {
	response := LedgerResponse{
		AccountCode: accountCode,
		Lines:       make([]LedgerLineResponse, len(lines)),
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for i, line := range lines {
		response.Lines[i] = LedgerLineResponse{
			EntryDate: line.EntryDate.Format(time.DateOnly),
			Reference: line.Reference,
			Label:     line.Label,
			Debit:     line.Debit,
			Credit:    line.Credit,
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	response.Totals.Debit = totalDebit
	response.Totals.Credit = totalCredit
	response.Totals.Balance = totalDebit.Sub(totalCredit)

	return response
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	return BalanceSheetResponse{
		Assets:            report.Assets,
		LiabilitiesEquity: report.LiabilitiesEquity,
	}
}

// ToIncomeStatementResponse converts a domain income statement to a DTO response
func ToIncomeStatementResponse(report *domain.IncomeStatementReport) IncomeStatementResponse {
	return IncomeStatementResponse{
		Revenue:  report.Revenue,
		Expenses: report.Expenses,
		Result:   report.Result,
	}
}
