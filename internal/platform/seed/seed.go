// Package seed bundles the default reference data the application ships
// with: the Moroccan chart of accounts, the four standard journals and the
// usual VAT rates.
package seed

import (
	_ "embed"
	"encoding/json"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

//go:embed pcm_ma.json
var pcmMA []byte

// ChartAccount is one row of the bundled chart of accounts.
type ChartAccount struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Class string `json:"class"`
	Type  string `json:"type"`
}

// Chart returns the bundled Moroccan PCM chart of accounts.
func Chart() ([]ChartAccount, error) {
	var accounts []ChartAccount
	if err := json.Unmarshal(pcmMA, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// DefaultJournals returns the four standard journals created on first run.
func DefaultJournals() []domain.Journal {
	return []domain.Journal{
		{Code: "ACH", Name: "Journal des achats", JournalType: domain.Purchases, Prefix: "ACH-"},
		{Code: "VTE", Name: "Journal des ventes", JournalType: domain.Sales, Prefix: "VTE-"},
		{Code: "TRS", Name: "Journal de trésorerie", JournalType: domain.Cash, Prefix: "TRS-"},
		{Code: "OD", Name: "Journal des opérations diverses", JournalType: domain.General, Prefix: "OD-"},
	}
}

// DefaultVatRates returns the VAT rates created on first run.
func DefaultVatRates() []domain.VatRate {
	return []domain.VatRate{
		{Code: "TVA20", Label: "TVA 20%", Rate: decimal.NewFromFloat(0.20)},
		{Code: "TVA14", Label: "TVA 14%", Rate: decimal.NewFromFloat(0.14)},
		{Code: "TVA10", Label: "TVA 10%", Rate: decimal.NewFromFloat(0.10)},
		{Code: "TVA7", Label: "TVA 7%", Rate: decimal.NewFromFloat(0.07)},
		{Code: "EXO", Label: "Exonéré", Rate: decimal.Zero},
	}
}
