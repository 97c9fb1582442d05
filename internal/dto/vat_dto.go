package dto

import (
	"time"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VatDeclarationParams defines the query parameters of a VAT declaration.
// Period is the month anchoring the declaration; quarterly declarations
// cover the calendar quarter containing it.
type VatDeclarationParams struct {
	Period    string `form:"period" binding:"required,datetime=2006-01"`
	Frequency string `form:"frequency,default=monthly" binding:"omitempty,oneof=monthly quarterly"`
}

// VatDeclarationLineResponse is one invoice item of the declaration.
type VatDeclarationLineResponse struct {
	InvoiceDate   string          `json:"invoiceDate"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalHT       decimal.Decimal `json:"totalHT"`
	TVA           decimal.Decimal `json:"tva"`
}

// VatDeclarationResponse represents the VAT declaration report response
type VatDeclarationResponse struct {
	Period    string                       `json:"period"`
	Frequency string                       `json:"frequency"`
	Start     string                       `json:"start"`
	End       string                       `json:"end"`
	Lines     []VatDeclarationLineResponse `json:"lines"`
	Totals    struct {
		HT  decimal.Decimal `json:"ht"`
		TVA decimal.Decimal `json:"tva"`
	} `json:"totals"`
}

// ToVatDeclarationResponse converts a domain VAT declaration to a DTO response
func ToVatDeclarationResponse(decl *domain.VatDeclaration) VatDeclarationResponse {
	response := VatDeclarationResponse{
		Period:    decl.Period,
		Frequency: decl.Frequency,
		Start:     decl.Start.Format(time.DateOnly),
		End:       decl.End.Format(time.DateOnly),
		Lines:     make([]VatDeclarationLineResponse, len(decl.Lines)),
	}
	for i, line := range decl.Lines {
		response.Lines[i] = VatDeclarationLineResponse{
			InvoiceDate:   line.InvoiceDate.Format(time.DateOnly),
			InvoiceNumber: line.InvoiceNumber,
			Description:   line.Description,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			TotalHT:       line.TotalHT,
			TVA:           line.TVA,
		}
	}
	response.Totals.HT = decl.TotalHT
	response.Totals.TVA = decl.TotalTVA
	return response
}
