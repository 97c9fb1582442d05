package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VatRate is a named VAT percentage, stored as a fraction (0.2000 = 20%).
type VatRate struct {
	VatRateID string          `json:"vatRateID"` // Primary Key (UUID)
	Code      string          `json:"code"`      // Unique, e.g. "TVA20"
	Label     string          `json:"label"`
	Rate      decimal.Decimal `json:"rate"`
	Timestamps
}

// Customer is an invoiced party. VatID holds the ICE/IF identifier.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	Name       string `json:"name"`
	VatID      string `json:"vatID"`
	Address    string `json:"address"`
	Timestamps
}

// Invoice is an invoice or quote header. Totals are always derived from the
// items, never stored.
type Invoice struct {
	InvoiceID   string        `json:"invoiceID"` // Primary Key (UUID)
	Number      string        `json:"number"`    // Unique, sequence-generated
	InvoiceDate time.Time     `json:"invoiceDate"`
	CustomerID  string        `json:"customerID"`
	IsQuote     bool          `json:"isQuote"`
	Prefix      string        `json:"prefix"`
	Items       []InvoiceItem `json:"items,omitempty"`
	Timestamps
}

// InvoiceItem is one line of an invoice. VatRate is resolved by the caller
// when computing TVA; a nil rate means the line is untaxed.
type InvoiceItem struct {
	ItemID      string          `json:"itemID"` // Primary Key (UUID)
	InvoiceID   string          `json:"invoiceID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VatRateID   string          `json:"vatRateID"` // Empty when untaxed
	VatRate     *VatRate        `json:"vatRate,omitempty"`
	Timestamps
}

// TotalHT returns the pre-tax amount of the item.
func (i *InvoiceItem) TotalHT() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// TVAAmount returns the VAT of the item, rounded to 2 decimals. An item
// without a resolved rate carries no VAT.
func (i *InvoiceItem) TVAAmount() decimal.Decimal {
	if i.VatRate == nil {
		return decimal.Zero
	}
	return i.TotalHT().Mul(i.VatRate.Rate).Round(2)
}

// TotalHT sums the pre-tax amounts of all items.
func (inv *Invoice) TotalHT() decimal.Decimal {
	total := decimal.Zero
	for idx := range inv.Items {
		total = total.Add(inv.Items[idx].TotalHT())
	}
	return total
}

// TotalTVA sums the VAT of all items.
func (inv *Invoice) TotalTVA() decimal.Decimal {
	total := decimal.Zero
	for idx := range inv.Items {
		total = total.Add(inv.Items[idx].TVAAmount())
	}
	return total
}

// TotalTTC is the tax-inclusive total.
func (inv *Invoice) TotalTTC() decimal.Decimal {
	return inv.TotalHT().Add(inv.TotalTVA())
}
