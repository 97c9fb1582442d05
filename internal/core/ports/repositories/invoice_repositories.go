package repositories

import (
	"context"
	"time"

	"github.com/atlascompta/compta_backend/internal/core/domain"
)

// VatRateRepositoryFacade defines persistence operations for VAT rates.
type VatRateRepositoryFacade interface {
	SaveVatRate(ctx context.Context, rate domain.VatRate) error
	// ListVatRates returns all rates ordered by rate descending.
	ListVatRates(ctx context.Context) ([]domain.VatRate, error)
	FindVatRatesByIDs(ctx context.Context, ids []string) (map[string]domain.VatRate, error)
}

// CustomerRepositoryFacade defines persistence operations for customers.
type CustomerRepositoryFacade interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	// ListCustomers returns all customers ordered by name.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// InvoiceRepositoryFacade defines persistence operations for invoices and
// their items. SaveInvoice draws the invoice number from the sequence scope
// and inserts header plus items in one transaction.
type InvoiceRepositoryFacade interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem, scope, prefix string) (*domain.Invoice, error)
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error)
	// ListInvoices returns all invoices ordered by (invoice_date desc,
	// number desc).
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	// ListItemsByPeriod returns invoice items joined with their invoice and
	// VAT rate for invoices dated within [start, end], both ends inclusive.
	ListItemsByPeriod(ctx context.Context, start, end time.Time) ([]domain.PeriodItem, error)
}
