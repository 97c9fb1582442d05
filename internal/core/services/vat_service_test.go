package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/core/services"
	"github.com/atlascompta/compta_backend/internal/dto"
)

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem, scope, prefix string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice, items, scope, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListItemsByPeriod(ctx context.Context, start, end time.Time) ([]domain.PeriodItem, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PeriodItem), args.Error(1)
}

// --- Test Suite Setup ---

type VatServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	service         portssvc.VatDeclarationSvc
}

func (suite *VatServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewVatService(suite.mockInvoiceRepo)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// --- Test Cases ---

func (suite *VatServiceTestSuite) TestDeclare_MonthlyBounds() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("ListItemsByPeriod", ctx, day(2024, time.March, 1), day(2024, time.March, 31)).
		Return([]domain.PeriodItem{}, nil).Once()

	decl, err := suite.service.Declare(ctx, dto.VatDeclarationParams{Period: "2024-03"})

	suite.Require().NoError(err)
	suite.Equal("monthly", decl.Frequency)
	suite.Equal(day(2024, time.March, 1), decl.Start)
	suite.Equal(day(2024, time.March, 31), decl.End)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *VatServiceTestSuite) TestDeclare_QuarterlySnapsToQuarter() {
	ctx := context.Background()

	// May sits in Q2, so the declaration covers April through June.
	suite.mockInvoiceRepo.On("ListItemsByPeriod", ctx, day(2024, time.April, 1), day(2024, time.June, 30)).
		Return([]domain.PeriodItem{}, nil).Once()

	decl, err := suite.service.Declare(ctx, dto.VatDeclarationParams{Period: "2024-05", Frequency: "quarterly"})

	suite.Require().NoError(err)
	suite.Equal("quarterly", decl.Frequency)
	suite.Equal(day(2024, time.April, 1), decl.Start)
	suite.Equal(day(2024, time.June, 30), decl.End)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *VatServiceTestSuite) TestDeclare_FebruaryLeapYear() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("ListItemsByPeriod", ctx, day(2024, time.February, 1), day(2024, time.February, 29)).
		Return([]domain.PeriodItem{}, nil).Once()

	_, err := suite.service.Declare(ctx, dto.VatDeclarationParams{Period: "2024-02"})

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *VatServiceTestSuite) TestDeclare_FebruaryNonLeapYear() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("ListItemsByPeriod", ctx, day(2023, time.February, 1), day(2023, time.February, 28)).
		Return([]domain.PeriodItem{}, nil).Once()

	_, err := suite.service.Declare(ctx, dto.VatDeclarationParams{Period: "2023-02"})

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *VatServiceTestSuite) TestDeclare_InvalidPeriod() {
	ctx := context.Background()

	decl, err := suite.service.Declare(ctx, dto.VatDeclarationParams{Period: "03/2024"})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(decl)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "ListItemsByPeriod")
}

func (suite *VatServiceTestSuite) TestDeclare_LineTotals() {
	ctx := context.Background()

	items := []domain.PeriodItem{
		{
			InvoiceDate:   day(2024, time.March, 5),
			InvoiceNumber: "INV-2024-0001",
			Description:   "Prestation conseil",
			Quantity:      decimal.RequireFromString("3"),
			UnitPrice:     decimal.RequireFromString("199.99"),
			Rate:          decimal.RequireFromString("0.20"),
		},
		{
			InvoiceDate:   day(2024, time.March, 12),
			InvoiceNumber: "INV-2024-0002",
			Description:   "Fournitures",
			Quantity:      decimal.RequireFromString("2"),
			UnitPrice:     decimal.RequireFromString("50.00"),
			Rate:          decimal.Zero, // untaxed item declares no TVA
		},
	}
	suite.mockInvoiceRepo.On("ListItemsByPeriod", ctx, mock.Anything, mock.Anything).Return(items, nil).Once()

	decl, err := suite.service.Declare(ctx, dto.VatDeclarationParams{Period: "2024-03"})

	suite.Require().NoError(err)
	suite.Require().Len(decl.Lines, 2)
	suite.True(decl.Lines[0].TotalHT.Equal(decimal.RequireFromString("599.97")), decl.Lines[0].TotalHT.String())
	suite.True(decl.Lines[0].TVA.Equal(decimal.RequireFromString("119.99")), decl.Lines[0].TVA.String())
	suite.True(decl.Lines[1].TotalHT.Equal(decimal.RequireFromString("100.00")), decl.Lines[1].TotalHT.String())
	suite.True(decl.Lines[1].TVA.IsZero())
	suite.True(decl.TotalHT.Equal(decimal.RequireFromString("699.97")), decl.TotalHT.String())
	suite.True(decl.TotalTVA.Equal(decimal.RequireFromString("119.99")), decl.TotalTVA.String())
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *VatServiceTestSuite) TestDeclare_SkipsQuoteItems() {
	ctx := context.Background()

	items := []domain.PeriodItem{
		{
			InvoiceDate:   day(2024, time.March, 5),
			InvoiceNumber: "INV-2024-0001",
			Description:   "Prestation conseil",
			Quantity:      decimal.RequireFromString("1"),
			UnitPrice:     decimal.RequireFromString("1000.00"),
			Rate:          decimal.RequireFromString("0.20"),
		},
		{
			InvoiceDate:   day(2024, time.March, 8),
			InvoiceNumber: "DEV-2024-0003",
			Description:   "Devis aménagement",
			IsQuote:       true,
			Quantity:      decimal.RequireFromString("4"),
			UnitPrice:     decimal.RequireFromString("250.00"),
			Rate:          decimal.RequireFromString("0.20"),
		},
	}
	suite.mockInvoiceRepo.On("ListItemsByPeriod", ctx, mock.Anything, mock.Anything).Return(items, nil).Once()

	decl, err := suite.service.Declare(ctx, dto.VatDeclarationParams{Period: "2024-03"})

	suite.Require().NoError(err)
	suite.Require().Len(decl.Lines, 1)
	suite.Equal("INV-2024-0001", decl.Lines[0].InvoiceNumber)
	suite.True(decl.TotalHT.Equal(decimal.RequireFromString("1000.00")), decl.TotalHT.String())
	suite.True(decl.TotalTVA.Equal(decimal.RequireFromString("200.00")), decl.TotalTVA.String())
}

func TestVatServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VatServiceTestSuite))
}
