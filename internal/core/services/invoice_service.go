package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/dto"
)

// Numbering prefixes for the two invoice scopes.
const (
	invoicePrefix = "INV-"
	quotePrefix   = "DEV-"
)

// invoiceService implements invoicing operations: VAT rates, customers and
// invoice/quote creation with sequence-drawn numbers.
type invoiceService struct {
	BaseService
	vatRateRepo  portsrepo.VatRateRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
}

// NewInvoiceService creates a new InvoiceSvcFacade.
func NewInvoiceService(
	vatRateRepo portsrepo.VatRateRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		vatRateRepo:  vatRateRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateVatRate registers a new VAT rate.
func (s *invoiceService) CreateVatRate(ctx context.Context, req dto.CreateVatRateRequest) (*domain.VatRate, error) {
	now := time.Now()
	rate := domain.VatRate{
		VatRateID: uuid.NewString(),
		Code:      strings.ToUpper(strings.TrimSpace(req.Code)),
		Label:     req.Label,
		Rate:      req.Rate,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.vatRateRepo.SaveVatRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save VAT rate", slog.String("code", rate.Code))
		return nil, err
	}
	return &rate, nil
}

func (s *invoiceService) ListVatRates(ctx context.Context) ([]domain.VatRate, error) {
	return s.vatRateRepo.ListVatRates(ctx)
}

// CreateCustomer registers a new customer.
func (s *invoiceService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	now := time.Now()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		VatID:      req.VatID,
		Address:    req.Address,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("name", customer.Name))
		return nil, err
	}
	return &customer, nil
}

func (s *invoiceService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *invoiceService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx)
}

// CreateInvoice persists an invoice or quote. The customer and every
// referenced VAT rate must exist; the number is drawn atomically from the
// scope matching IsQuote.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	invoiceDate, err := time.Parse(time.DateOnly, req.InvoiceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid invoice date %q", apperrors.ErrValidation, req.InvoiceDate)
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown customer %s", apperrors.ErrValidation, req.CustomerID)
		}
		return nil, err
	}

	rates, err := s.resolveRates(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:   uuid.NewString(),
		InvoiceDate: invoiceDate,
		CustomerID:  req.CustomerID,
		IsQuote:     req.IsQuote,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	items := make([]domain.InvoiceItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.InvoiceItem{
			ItemID:      uuid.NewString(),
			InvoiceID:   invoice.InvoiceID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			VatRateID:   item.VatRateID,
			Timestamps: domain.Timestamps{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		if item.VatRateID != "" {
			rate := rates[item.VatRateID]
			items[i].VatRate = &rate
		}
	}

	scope, prefix := domain.ScopeInvoice, invoicePrefix
	if req.IsQuote {
		scope, prefix = domain.ScopeQuote, quotePrefix
	}

	saved, err := s.invoiceRepo.SaveInvoice(ctx, invoice, items, scope, prefix)
	if err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("customer_id", req.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", saved.InvoiceID),
		slog.String("number", saved.Number),
		slog.Bool("is_quote", saved.IsQuote))
	return saved, nil
}

// resolveRates loads the VAT rates referenced by the request items and
// rejects unknown rate ids.
func (s *invoiceService) resolveRates(ctx context.Context, items []dto.InvoiceItemRequest) (map[string]domain.VatRate, error) {
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.VatRateID == "" || seen[item.VatRateID] {
			continue
		}
		seen[item.VatRateID] = true
		ids = append(ids, item.VatRateID)
	}
	if len(ids) == 0 {
		return map[string]domain.VatRate{}, nil
	}

	rates, err := s.vatRateRepo.FindVatRatesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := rates[id]; !ok {
			return nil, fmt.Errorf("%w: unknown VAT rate %s", apperrors.ErrValidation, id)
		}
	}
	return rates, nil
}

// GetInvoiceByID retrieves an invoice with its items, VAT rates resolved.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if err := s.loadItems(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// ListInvoices retrieves all invoices with their items, most recent first.
func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if err := s.loadItems(ctx, &invoices[i]); err != nil {
			return nil, err
		}
	}
	return invoices, nil
}

// loadItems attaches an invoice's items and resolves their VAT rates so the
// derived totals can be computed.
func (s *invoiceService) loadItems(ctx context.Context, invoice *domain.Invoice) error {
	items, err := s.invoiceRepo.FindItemsByInvoiceID(ctx, invoice.InvoiceID)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.VatRateID != "" {
			ids = append(ids, item.VatRateID)
		}
	}
	if len(ids) > 0 {
		rates, err := s.vatRateRepo.FindVatRatesByIDs(ctx, ids)
		if err != nil {
			return err
		}
		for i := range items {
			if rate, ok := rates[items[i].VatRateID]; ok {
				r := rate
				items[i].VatRate = &r
			}
		}
	}
	invoice.Items = items
	return nil
}
