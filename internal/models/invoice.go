package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VatRate mirrors the vat_rates table.
type VatRate struct {
	VatRateID string          `db:"vat_rate_id"`
	Code      string          `db:"code"`
	Label     string          `db:"label"`
	Rate      decimal.Decimal `db:"rate"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// Customer mirrors the customers table.
type Customer struct {
	CustomerID string    `db:"customer_id"`
	Name       string    `db:"name"`
	VatID      *string   `db:"vat_id"`
	Address    *string   `db:"address"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Invoice mirrors the invoices table.
type Invoice struct {
	InvoiceID   string    `db:"invoice_id"`
	Number      string    `db:"number"`
	InvoiceDate time.Time `db:"invoice_date"`
	CustomerID  string    `db:"customer_id"`
	IsQuote     bool      `db:"is_quote"`
	Prefix      string    `db:"prefix"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// InvoiceItem mirrors the invoice_items table.
type InvoiceItem struct {
	ItemID      string          `db:"item_id"`
	InvoiceID   string          `db:"invoice_id"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	VatRateID   *string         `db:"vat_rate_id"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
