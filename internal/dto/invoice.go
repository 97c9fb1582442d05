package dto

import (
	"time"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVatRateRequest defines the data needed to create a VAT rate.
// Rate is a fraction: 0.20 for 20%.
type CreateVatRateRequest struct {
	Code  string          `json:"code" binding:"required,max=10"`
	Label string          `json:"label" binding:"required"`
	Rate  decimal.Decimal `json:"rate" binding:"required"`
}

// VatRateResponse defines the data returned for a VAT rate.
type VatRateResponse struct {
	VatRateID string          `json:"vatRateID"`
	Code      string          `json:"code"`
	Label     string          `json:"label"`
	Rate      decimal.Decimal `json:"rate"`
}

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	VatID   string `json:"vatID"`
	Address string `json:"address"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	VatID      string `json:"vatID"`
	Address    string `json:"address"`
}

// InvoiceItemRequest is one line of an invoice creation request.
type InvoiceItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	VatRateID   string          `json:"vatRateID"` // Empty means untaxed
}

// CreateInvoiceRequest defines the data needed to create an invoice or
// quote. The number is never supplied; it is generated server-side.
type CreateInvoiceRequest struct {
	InvoiceDate string               `json:"invoiceDate" binding:"required,datetime=2006-01-02"`
	CustomerID  string               `json:"customerID" binding:"required"`
	IsQuote     bool                 `json:"isQuote"`
	Items       []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// InvoiceItemResponse defines the data returned for an invoice item,
// including its derived amounts.
type InvoiceItemResponse struct {
	ItemID      string          `json:"itemID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VatRateID   string          `json:"vatRateID,omitempty"`
	TotalHT     decimal.Decimal `json:"totalHT"`
	TVA         decimal.Decimal `json:"tva"`
}

// InvoiceResponse defines the data returned for an invoice with its items
// and derived totals.
type InvoiceResponse struct {
	InvoiceID   string                `json:"invoiceID"`
	Number      string                `json:"number"`
	InvoiceDate string                `json:"invoiceDate"`
	CustomerID  string                `json:"customerID"`
	IsQuote     bool                  `json:"isQuote"`
	Items       []InvoiceItemResponse `json:"items"`
	Totals      struct {
		HT  decimal.Decimal `json:"ht"`
		TVA decimal.Decimal `json:"tva"`
		TTC decimal.Decimal `json:"ttc"`
	} `json:"totals"`
}

// ListInvoicesResponse wraps the list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToVatRateResponse converts a domain.VatRate to VatRateResponse DTO
func ToVatRateResponse(r *domain.VatRate) VatRateResponse {
	return VatRateResponse{
		VatRateID: r.VatRateID,
		Code:      r.Code,
		Label:     r.Label,
		Rate:      r.Rate,
	}
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		VatID:      c.VatID,
		Address:    c.Address,
	}
}

// ToInvoiceResponse converts a domain.Invoice with resolved items to
// InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i := range inv.Items {
		item := &inv.Items[i]
		items[i] = InvoiceItemResponse{
			ItemID:      item.ItemID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			VatRateID:   item.VatRateID,
			TotalHT:     item.TotalHT(),
			TVA:         item.TVAAmount(),
		}
	}
	resp := InvoiceResponse{
		InvoiceID:   inv.InvoiceID,
		Number:      inv.Number,
		InvoiceDate: inv.InvoiceDate.Format(time.DateOnly),
		CustomerID:  inv.CustomerID,
		IsQuote:     inv.IsQuote,
		Items:       items,
	}
	resp.Totals.HT = inv.TotalHT()
	resp.Totals.TVA = inv.TotalTVA()
	resp.Totals.TTC = inv.TotalTTC()
	return resp
}
