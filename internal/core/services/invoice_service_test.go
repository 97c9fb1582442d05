package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/core/services"
	"github.com/atlascompta/compta_backend/internal/dto"
)

// MockVatRateRepository is a mock type for the VatRateRepositoryFacade interface
type MockVatRateRepository struct {
	mock.Mock
}

func (m *MockVatRateRepository) SaveVatRate(ctx context.Context, rate domain.VatRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockVatRateRepository) ListVatRates(ctx context.Context) ([]domain.VatRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VatRate), args.Error(1)
}

func (m *MockVatRateRepository) FindVatRatesByIDs(ctx context.Context, ids []string) (map[string]domain.VatRate, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.VatRate), args.Error(1)
}

// MockCustomerRepository is a mock type for the CustomerRepositoryFacade interface
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// --- Test Suite Setup ---

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockVatRateRepo  *MockVatRateRepository
	mockCustomerRepo *MockCustomerRepository
	mockInvoiceRepo  *MockInvoiceRepository
	service          portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockVatRateRepo = new(MockVatRateRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewInvoiceService(suite.mockVatRateRepo, suite.mockCustomerRepo, suite.mockInvoiceRepo)
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateVatRate_UppercasesCode() {
	ctx := context.Background()
	req := dto.CreateVatRateRequest{Code: " tva20 ", Label: "TVA 20%", Rate: decimal.RequireFromString("0.20")}

	suite.mockVatRateRepo.On("SaveVatRate", ctx, mock.MatchedBy(func(r domain.VatRate) bool {
		return r.Code == "TVA20"
	})).Return(nil).Once()

	rate, err := suite.service.CreateVatRate(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("TVA20", rate.Code)
	suite.NotEmpty(rate.VatRateID)
	suite.mockVatRateRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UsesInvoiceScope() {
	ctx := context.Background()
	customerID := uuid.NewString()
	rateID := uuid.NewString()

	req := dto.CreateInvoiceRequest{
		InvoiceDate: "2024-03-15",
		CustomerID:  customerID,
		Items: []dto.InvoiceItemRequest{
			{Description: "Prestation", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("100.00"), VatRateID: rateID},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(&domain.Customer{CustomerID: customerID}, nil).Once()
	suite.mockVatRateRepo.On("FindVatRatesByIDs", ctx, []string{rateID}).
		Return(map[string]domain.VatRate{rateID: {VatRateID: rateID, Rate: decimal.RequireFromString("0.20")}}, nil).Once()

	saved := &domain.Invoice{InvoiceID: uuid.NewString(), Number: "INV-2024-0001"}
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice"), mock.MatchedBy(func(items []domain.InvoiceItem) bool {
		return len(items) == 1 && items[0].VatRate != nil && items[0].VatRate.Rate.Equal(decimal.RequireFromString("0.20"))
	}), "invoice", "INV-").Return(saved, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("INV-2024-0001", invoice.Number)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_QuoteUsesQuoteScope() {
	ctx := context.Background()
	customerID := uuid.NewString()

	req := dto.CreateInvoiceRequest{
		InvoiceDate: "2024-03-15",
		CustomerID:  customerID,
		IsQuote:     true,
		Items: []dto.InvoiceItemRequest{
			{Description: "Etude", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("500.00")},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(&domain.Customer{CustomerID: customerID}, nil).Once()

	saved := &domain.Invoice{InvoiceID: uuid.NewString(), Number: "DEV-2024-0001", IsQuote: true}
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice"), mock.AnythingOfType("[]domain.InvoiceItem"), "quote", "DEV-").
		Return(saved, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.True(invoice.IsQuote)
	suite.mockVatRateRepo.AssertNotCalled(suite.T(), "FindVatRatesByIDs")
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownCustomer() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.CreateInvoice(ctx, dto.CreateInvoiceRequest{
		InvoiceDate: "2024-03-15",
		CustomerID:  customerID,
		Items: []dto.InvoiceItemRequest{
			{Description: "Prestation", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("100.00")},
		},
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(invoice)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownVatRate() {
	ctx := context.Background()
	customerID := uuid.NewString()
	rateID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(&domain.Customer{CustomerID: customerID}, nil).Once()
	suite.mockVatRateRepo.On("FindVatRatesByIDs", ctx, []string{rateID}).Return(map[string]domain.VatRate{}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, dto.CreateInvoiceRequest{
		InvoiceDate: "2024-03-15",
		CustomerID:  customerID,
		Items: []dto.InvoiceItemRequest{
			{Description: "Prestation", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("100.00"), VatRateID: rateID},
		},
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), rateID)
	suite.Nil(invoice)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice")
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_ResolvesRates() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	rateID := uuid.NewString()

	invoice := &domain.Invoice{InvoiceID: invoiceID, Number: "INV-2024-0001"}
	items := []domain.InvoiceItem{
		{ItemID: uuid.NewString(), InvoiceID: invoiceID, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.RequireFromString("100.00"), VatRateID: rateID},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(invoice, nil).Once()
	suite.mockInvoiceRepo.On("FindItemsByInvoiceID", ctx, invoiceID).Return(items, nil).Once()
	suite.mockVatRateRepo.On("FindVatRatesByIDs", ctx, []string{rateID}).
		Return(map[string]domain.VatRate{rateID: {VatRateID: rateID, Rate: decimal.RequireFromString("0.20")}}, nil).Once()

	got, err := suite.service.GetInvoiceByID(ctx, invoiceID)

	suite.Require().NoError(err)
	suite.Require().Len(got.Items, 1)
	suite.Require().NotNil(got.Items[0].VatRate)
	suite.True(got.TotalTVA().Equal(decimal.RequireFromString("40.00")), got.TotalTVA().String())
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockVatRateRepo.AssertExpectations(suite.T())
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
