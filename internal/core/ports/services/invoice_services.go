package services

import (
	"context"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/atlascompta/compta_backend/internal/dto"
)

// VatRateSvc defines operations for VAT rate reference data
type VatRateSvc interface {
	CreateVatRate(ctx context.Context, req dto.CreateVatRateRequest) (*domain.VatRate, error)
	ListVatRates(ctx context.Context) ([]domain.VatRate, error)
}

// CustomerSvc defines operations for customer data
type CustomerSvc interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice with its items and resolved rates.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves all invoices, most recent first.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice persists an invoice or quote with a freshly drawn
	// number from the matching sequence scope.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	VatRateSvc
	CustomerSvc
	InvoiceReaderSvc
	InvoiceWriterSvc
}

// VatDeclarationSvc builds periodic VAT declarations from invoice items.
type VatDeclarationSvc interface {
	// Declare aggregates invoice items over the month or quarter the
	// period falls in, both bounds inclusive.
	Declare(ctx context.Context, params dto.VatDeclarationParams) (*domain.VatDeclaration, error)
}
