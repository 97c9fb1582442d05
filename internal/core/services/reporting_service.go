package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
)

// Class groupings of the simplified report mapping. Classes 1, 2, 3 and 5
// net to a debit balance on the asset side; class 4 nets to a credit
// balance on the other.
var (
	assetClasses           = []string{"1", "2", "3", "5"}
	liabilityEquityClasses = []string{"4"}
	revenueClasses         = []string{"7"}
	expenseClasses         = []string{"6"}
)

// reportingService derives every financial report from the single
// per-account aggregation primitive of the reporting repository.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates the per-account debit/credit/balance rows over the
// filtered period.
func (s *reportingService) TrialBalance(ctx context.Context, filter domain.ActivityFilter) ([]domain.TrialBalanceRow, error) {
	activity, err := s.reportingRepo.SumByAccount(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.TrialBalanceRow, len(activity))
	for i, a := range activity {
		rows[i] = domain.TrialBalanceRow{
			AccountCode: a.AccountCode,
			AccountName: a.AccountName,
			Debit:       a.Debit.Round(2),
			Credit:      a.Credit.Round(2),
			Balance:     a.Debit.Sub(a.Credit).Round(2),
		}
	}
	return rows, nil
}

// Ledger returns one account's chronological postings.
func (s *reportingService) Ledger(ctx context.Context, accountID string, filter domain.ActivityFilter) ([]domain.LedgerLine, error) {
	return s.reportingRepo.LedgerLines(ctx, accountID, filter)
}

// sumClasses nets debit minus credit over the given classes.
func (s *reportingService) sumClasses(ctx context.Context, filter domain.ActivityFilter, classes []string) (decimal.Decimal, error) {
	filter.ClassCodes = classes
	activity, err := s.reportingRepo.SumByAccount(ctx, filter)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, a := range activity {
		total = total.Add(a.Debit.Sub(a.Credit))
	}
	return total.Round(2), nil
}

// BalanceSheet generates the simplified class-code balance sheet: debit-side
// classes on one side, class 4 negated on the other.
func (s *reportingService) BalanceSheet(ctx context.Context, filter domain.ActivityFilter) (*domain.BalanceSheetReport, error) {
	assets, err := s.sumClasses(ctx, filter, assetClasses)
	if err != nil {
		return nil, err
	}
	liabilities, err := s.sumClasses(ctx, filter, liabilityEquityClasses)
	if err != nil {
		return nil, err
	}
	return &domain.BalanceSheetReport{
		Assets:            assets,
		LiabilitiesEquity: liabilities.Neg(),
	}, nil
}

// IncomeStatement nets class 7 (credit positive) against class 6.
func (s *reportingService) IncomeStatement(ctx context.Context, filter domain.ActivityFilter) (*domain.IncomeStatementReport, error) {
	revenueNet, err := s.sumClasses(ctx, filter, revenueClasses)
	if err != nil {
		return nil, err
	}
	expensesNet, err := s.sumClasses(ctx, filter, expenseClasses)
	if err != nil {
		return nil, err
	}
	// Both sides are presented credit minus debit, so the stored
	// debit-minus-credit nets are flipped.
	revenue := revenueNet.Neg()
	expenses := expensesNet.Neg()
	return &domain.IncomeStatementReport{
		Revenue:  revenue,
		Expenses: expenses,
		Result:   revenue.Sub(expenses).Round(2),
	}, nil
}
