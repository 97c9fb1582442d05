package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/core/services"
)

// MockReportingRepository is a mock type for the ReportingRepositoryFacade interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SumByAccount(ctx context.Context, filter domain.ActivityFilter) ([]domain.AccountActivity, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountActivity), args.Error(1)
}

func (m *MockReportingRepository) LedgerLines(ctx context.Context, accountID string, filter domain.ActivityFilter) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

func (m *MockReportingRepository) JournalExportRows(ctx context.Context, journalID string, filter domain.ActivityFilter) ([]domain.JournalExportRow, error) {
	args := m.Called(ctx, journalID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalExportRow), args.Error(1)
}

// --- Test Suite Setup ---

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo)
}

func activity(code, name string, debit, credit string) domain.AccountActivity {
	return domain.AccountActivity{
		AccountCode: code,
		AccountName: name,
		ClassCode:   code[:1],
		Debit:       decimal.RequireFromString(debit),
		Credit:      decimal.RequireFromString(credit),
	}
}

func classFilter(classes ...string) interface{} {
	return mock.MatchedBy(func(f domain.ActivityFilter) bool {
		if len(f.ClassCodes) != len(classes) {
			return false
		}
		for i, c := range classes {
			if f.ClassCodes[i] != c {
				return false
			}
		}
		return true
	})
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestTrialBalance_BalanceIsDebitMinusCredit() {
	ctx := context.Background()

	rows := []domain.AccountActivity{
		activity("5141", "Banque", "1200.00", "200.00"),
		activity("4411", "Fournisseurs", "0.00", "1000.00"),
	}
	suite.mockReportingRepo.On("SumByAccount", ctx, mock.AnythingOfType("domain.ActivityFilter")).Return(rows, nil).Once()

	balance, err := suite.service.TrialBalance(ctx, domain.ActivityFilter{})

	suite.Require().NoError(err)
	suite.Require().Len(balance, 2)
	suite.True(balance[0].Balance.Equal(decimal.RequireFromString("1000.00")), balance[0].Balance.String())
	suite.True(balance[1].Balance.Equal(decimal.RequireFromString("-1000.00")), balance[1].Balance.String())
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_SignConventions() {
	ctx := context.Background()

	// Debit-side classes net to 1500, class 4 nets to a 1500 credit balance.
	suite.mockReportingRepo.On("SumByAccount", ctx, classFilter("1", "2", "3", "5")).
		Return([]domain.AccountActivity{
			activity("2332", "Materiel", "1000.00", "0.00"),
			activity("5141", "Banque", "700.00", "200.00"),
		}, nil).Once()
	suite.mockReportingRepo.On("SumByAccount", ctx, classFilter("4")).
		Return([]domain.AccountActivity{
			activity("4411", "Fournisseurs", "0.00", "1500.00"),
		}, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, domain.ActivityFilter{})

	suite.Require().NoError(err)
	suite.True(report.Assets.Equal(decimal.RequireFromString("1500.00")), report.Assets.String())
	suite.True(report.LiabilitiesEquity.Equal(decimal.RequireFromString("1500.00")), report.LiabilitiesEquity.String())
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_ResultIsRevenueMinusExpenses() {
	ctx := context.Background()

	// Class 7 nets to a 2000 credit balance, class 6 to an 800 debit balance.
	suite.mockReportingRepo.On("SumByAccount", ctx, classFilter("7")).
		Return([]domain.AccountActivity{
			activity("7111", "Ventes de marchandises", "0.00", "2000.00"),
		}, nil).Once()
	suite.mockReportingRepo.On("SumByAccount", ctx, classFilter("6")).
		Return([]domain.AccountActivity{
			activity("6111", "Achats de marchandises", "800.00", "0.00"),
		}, nil).Once()

	report, err := suite.service.IncomeStatement(ctx, domain.ActivityFilter{})

	suite.Require().NoError(err)
	suite.True(report.Revenue.Equal(decimal.RequireFromString("2000.00")), report.Revenue.String())
	suite.True(report.Expenses.Equal(decimal.RequireFromString("-800.00")), report.Expenses.String())
	suite.True(report.Result.Equal(decimal.RequireFromString("2800.00")), report.Result.String())
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_Loss() {
	ctx := context.Background()

	suite.mockReportingRepo.On("SumByAccount", ctx, classFilter("7")).
		Return([]domain.AccountActivity{
			activity("7111", "Ventes de marchandises", "0.00", "500.00"),
		}, nil).Once()
	suite.mockReportingRepo.On("SumByAccount", ctx, classFilter("6")).
		Return([]domain.AccountActivity{
			activity("6111", "Achats de marchandises", "0.00", "900.00"),
		}, nil).Once()

	report, err := suite.service.IncomeStatement(ctx, domain.ActivityFilter{})

	suite.Require().NoError(err)
	suite.True(report.Revenue.Equal(decimal.RequireFromString("500.00")), report.Revenue.String())
	suite.True(report.Expenses.Equal(decimal.RequireFromString("900.00")), report.Expenses.String())
	suite.True(report.Result.Equal(decimal.RequireFromString("-400.00")), report.Result.String())
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
