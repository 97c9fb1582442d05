package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/atlascompta/compta_backend/internal/core/domain"
)

func TestInvoiceItem_Amounts(t *testing.T) {
	tva20 := &domain.VatRate{Code: "TVA20", Rate: decimal.RequireFromString("0.20")}

	item := domain.InvoiceItem{
		Quantity:  decimal.RequireFromString("3"),
		UnitPrice: decimal.RequireFromString("199.99"),
		VatRate:   tva20,
	}

	assert.True(t, item.TotalHT().Equal(decimal.RequireFromString("599.97")))
	assert.True(t, item.TVAAmount().Equal(decimal.RequireFromString("119.99")), "VAT rounds to 2 decimals")
}

func TestInvoiceItem_UntaxedCarriesNoVAT(t *testing.T) {
	item := domain.InvoiceItem{
		Quantity:  decimal.RequireFromString("2"),
		UnitPrice: decimal.RequireFromString("100"),
	}

	assert.True(t, item.TVAAmount().IsZero())
}

func TestInvoice_Totals(t *testing.T) {
	tva20 := &domain.VatRate{Code: "TVA20", Rate: decimal.RequireFromString("0.20")}
	tva10 := &domain.VatRate{Code: "TVA10", Rate: decimal.RequireFromString("0.10")}

	invoice := domain.Invoice{
		Items: []domain.InvoiceItem{
			{Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("500"), VatRate: tva20},
			{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("80"), VatRate: tva10},
			{Quantity: decimal.NewFromInt(5), UnitPrice: decimal.RequireFromString("10")}, // untaxed
		},
	}

	assert.True(t, invoice.TotalHT().Equal(decimal.RequireFromString("1130")))
	assert.True(t, invoice.TotalTVA().Equal(decimal.RequireFromString("208")))
	assert.True(t, invoice.TotalTTC().Equal(decimal.RequireFromString("1338")))
}

func TestEntry_Totals(t *testing.T) {
	entry := domain.Entry{
		Lines: []domain.EntryLine{
			{Debit: decimal.RequireFromString("100"), Credit: decimal.Zero},
			{Debit: decimal.Zero, Credit: decimal.RequireFromString("60")},
			{Debit: decimal.Zero, Credit: decimal.RequireFromString("40")},
		},
	}

	assert.True(t, entry.TotalDebit().Equal(decimal.RequireFromString("100")))
	assert.True(t, entry.TotalCredit().Equal(decimal.RequireFromString("100")))
	assert.True(t, entry.IsBalanced())
}
