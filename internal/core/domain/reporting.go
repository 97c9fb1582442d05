package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountActivity is the single aggregation primitive every report derives
// from: per-account sums of debit and credit over a validated, date-bounded
// line set, ordered by account code.
type AccountActivity struct {
	AccountCode string
	AccountName string
	ClassCode   string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// ActivityFilter bounds an aggregation. Start/End are inclusive on both ends
// when set; ClassCodes restricts to the given PCM classes when non-empty.
// Only validated entries are ever aggregated.
type ActivityFilter struct {
	Start      *time.Time
	End        *time.Time
	ClassCodes []string
}

// TrialBalanceRow is one account of the trial balance.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"` // debit - credit
}

// LedgerLine is one posting of an account's chronological ledger.
type LedgerLine struct {
	AccountCode string          `json:"accountCode"`
	EntryDate   time.Time       `json:"entryDate"`
	Reference   string          `json:"reference"`
	Label       string          `json:"label"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// BalanceSheetReport is the simplified class-code mapping of the balance
// sheet: classes 1,2,3,5 on the asset side, class 4 on the other.
type BalanceSheetReport struct {
	Assets            decimal.Decimal `json:"assets"`
	LiabilitiesEquity decimal.Decimal `json:"liabilitiesEquity"`
}

// IncomeStatementReport nets class 7 against class 6.
type IncomeStatementReport struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Result   decimal.Decimal `json:"result"`
}

// JournalExportRow is one line of a journal's Excel/PDF export, one row per
// entry line joined with its account.
type JournalExportRow struct {
	Reference   string          `json:"reference"`
	EntryDate   time.Time       `json:"entryDate"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Label       string          `json:"label"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// PeriodItem is an invoice item joined with its invoice header and VAT rate,
// as fetched for a declaration period. HT and TVA are derived by the service.
type PeriodItem struct {
	InvoiceDate   time.Time
	InvoiceNumber string
	Description   string
	IsQuote       bool
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	Rate          decimal.Decimal // Zero when the item is untaxed
}

// VatDeclarationLine is one invoice item of a VAT declaration period.
type VatDeclarationLine struct {
	InvoiceDate   time.Time       `json:"invoiceDate"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalHT       decimal.Decimal `json:"totalHT"`
	TVA           decimal.Decimal `json:"tva"`
}

// VatDeclaration aggregates invoice items over a declaration period.
type VatDeclaration struct {
	Period    string               `json:"period"`    // "YYYY-MM"
	Frequency string               `json:"frequency"` // "monthly" or "quarterly"
	Start     time.Time            `json:"start"`
	End       time.Time            `json:"end"`
	Lines     []VatDeclarationLine `json:"lines"`
	TotalHT   decimal.Decimal      `json:"totalHT"`
	TotalTVA  decimal.Decimal      `json:"totalTVA"`
}
