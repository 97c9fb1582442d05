package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/dto"
)

const (
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
)

// vatService builds VAT declarations from invoice items.
type vatService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewVatService creates a new VatDeclarationSvc.
func NewVatService(invoiceRepo portsrepo.InvoiceRepositoryFacade) portssvc.VatDeclarationSvc {
	return &vatService{invoiceRepo: invoiceRepo}
}

var _ portssvc.VatDeclarationSvc = (*vatService)(nil)

// Declare aggregates all invoice items dated within the declaration period.
// Quote items are skipped: a devis is not a taxable event, so only invoiced
// amounts are declared. The legacy app pulled quotes into the totals.
func (s *vatService) Declare(ctx context.Context, params dto.VatDeclarationParams) (*domain.VatDeclaration, error) {
	frequency := params.Frequency
	if frequency == "" {
		frequency = FrequencyMonthly
	}

	start, end, err := periodBounds(params.Period, frequency)
	if err != nil {
		return nil, err
	}

	items, err := s.invoiceRepo.ListItemsByPeriod(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to load declaration items", slog.String("period", params.Period))
		return nil, err
	}

	decl := &domain.VatDeclaration{
		Period:    params.Period,
		Frequency: frequency,
		Start:     start,
		End:       end,
		Lines:     make([]domain.VatDeclarationLine, 0, len(items)),
		TotalHT:   decimal.Zero,
		TotalTVA:  decimal.Zero,
	}
	for _, item := range items {
		if item.IsQuote {
			continue
		}
		totalHT := item.Quantity.Mul(item.UnitPrice)
		tva := totalHT.Mul(item.Rate).Round(2)
		decl.Lines = append(decl.Lines, domain.VatDeclarationLine{
			InvoiceDate:   item.InvoiceDate,
			InvoiceNumber: item.InvoiceNumber,
			Description:   item.Description,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			TotalHT:       totalHT,
			TVA:           tva,
		})
		decl.TotalHT = decl.TotalHT.Add(totalHT)
		decl.TotalTVA = decl.TotalTVA.Add(tva)
	}

	s.LogInfo(ctx, "VAT declaration built",
		slog.String("period", params.Period),
		slog.String("frequency", frequency),
		slog.Int("lines", len(decl.Lines)))
	return decl, nil
}

// periodBounds resolves a "YYYY-MM" period to its inclusive date range. A
// quarterly declaration snaps to the calendar quarter containing the month.
func periodBounds(period, frequency string) (time.Time, time.Time, error) {
	anchor, err := time.Parse("2006-01", period)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid period %q", apperrors.ErrValidation, period)
	}

	year, month := anchor.Year(), int(anchor.Month())
	if frequency == FrequencyQuarterly {
		month = ((month-1)/3)*3 + 1
	}

	endMonth := month
	if frequency == FrequencyQuarterly {
		endMonth = month + 2
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(endMonth), lastDayOfMonth(year, endMonth), 0, 0, 0, 0, time.UTC)
	return start, end, nil
}

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 30
	}
}
