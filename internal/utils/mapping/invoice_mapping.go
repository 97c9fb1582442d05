package mapping

import (
	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/atlascompta/compta_backend/internal/models"
)

// ToModelVatRate converts a domain VatRate to its row form.
func ToModelVatRate(r domain.VatRate) models.VatRate {
	return models.VatRate{
		VatRateID: r.VatRateID,
		Code:      r.Code,
		Label:     r.Label,
		Rate:      r.Rate,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToModelCustomer converts a domain Customer to its row form.
func ToModelCustomer(c domain.Customer) models.Customer {
	return models.Customer{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		VatID:      strPtr(c.VatID),
		Address:    strPtr(c.Address),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToDomainVatRate converts a vat_rates row to its domain form.
func ToDomainVatRate(m models.VatRate) domain.VatRate {
	return domain.VatRate{
		VatRateID: m.VatRateID,
		Code:      m.Code,
		Label:     m.Label,
		Rate:      m.Rate,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainCustomer converts a customers row to its domain form.
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		VatID:      strVal(m.VatID),
		Address:    strVal(m.Address),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelInvoice converts a domain Invoice header to its row form.
func ToModelInvoice(inv domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:   inv.InvoiceID,
		Number:      inv.Number,
		InvoiceDate: inv.InvoiceDate,
		CustomerID:  inv.CustomerID,
		IsQuote:     inv.IsQuote,
		Prefix:      inv.Prefix,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

// ToDomainInvoice converts an invoices row to its domain form, without items.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:   m.InvoiceID,
		Number:      m.Number,
		InvoiceDate: m.InvoiceDate,
		CustomerID:  m.CustomerID,
		IsQuote:     m.IsQuote,
		Prefix:      m.Prefix,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToModelInvoiceItem converts a domain InvoiceItem to its row form.
func ToModelInvoiceItem(item domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		ItemID:      item.ItemID,
		InvoiceID:   item.InvoiceID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		VatRateID:   strPtr(item.VatRateID),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToDomainInvoiceItem converts an invoice_items row to its domain form.
// The VatRate pointer is resolved separately by the service.
func ToDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		ItemID:      m.ItemID,
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		VatRateID:   strVal(m.VatRateID),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}
