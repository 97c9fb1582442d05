package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cabinet is an accounting firm managing client companies.
type Cabinet struct {
	CabinetID string `json:"cabinetID"` // Primary Key (UUID)
	Name      string `json:"name"`      // Unique
	Timestamps
}

// Societe is a client company of a cabinet.
type Societe struct {
	SocieteID     string          `json:"societeID"` // Primary Key (UUID)
	Name          string          `json:"name"`
	TypeJuridique string          `json:"typeJuridique"` // SARL, SA, ...
	Capital       decimal.Decimal `json:"capital"`
	Gerant        string          `json:"gerant"`
	RC            string          `json:"rc"` // Registre de commerce
	CabinetID     string          `json:"cabinetID"`
	Associates    []Associate     `json:"associates,omitempty"`
	Timestamps
}

// Associate is a shareholder of a societe. PartsCount is the current
// ownership snapshot, mutated by cessions; the append-only record of
// transfers is the Cession table.
type Associate struct {
	AssociateID string `json:"associateID"` // Primary Key (UUID)
	SocieteID   string `json:"societeID"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PartsCount  int64  `json:"partsCount"`
	Timestamps
}

// Cession records a transfer of parts between two named parties.
type Cession struct {
	CessionID           string          `json:"cessionID"` // Primary Key (UUID)
	SocieteID           string          `json:"societeID"`
	CessionDate         time.Time       `json:"cessionDate"`
	Cedant              string          `json:"cedant"`
	CedantAddress       string          `json:"cedantAddress"`
	Cessionnaire        string          `json:"cessionnaire"`
	CessionnaireAddress string          `json:"cessionnaireAddress"`
	PartsCount          int64           `json:"partsCount"`
	Price               decimal.Decimal `json:"price"`
	PaymentMode         string          `json:"paymentMode"`
	Conditions          string          `json:"conditions"`
	Timestamps
}

// DocTemplateType distinguishes statuts from proces-verbal templates.
type DocTemplateType string

const (
	Statuts DocTemplateType = "statuts"
	PV      DocTemplateType = "pv"
)

// DocTemplate is an editable legal document template. Content may contain
// {{placeholder}} markers substituted from a societe's fields at render time.
type DocTemplate struct {
	TemplateID string          `json:"templateID"` // Primary Key (UUID)
	Title      string          `json:"title"`
	DocType    DocTemplateType `json:"docType"`
	Content    string          `json:"content"`
	Timestamps
}

// DistributionRow is one associate's share of the societe's parts.
type DistributionRow struct {
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	PartsCount int64   `json:"partsCount"`
	Percent    float64 `json:"percent"`
}

// TypeCount is one slice of the dashboard's companies-by-type breakdown.
type TypeCount struct {
	TypeJuridique string `json:"typeJuridique"` // "N/A" when unset
	Count         int64  `json:"count"`
}

// TotalParts sums the parts held by all associates.
func (s *Societe) TotalParts() int64 {
	var total int64
	for _, a := range s.Associates {
		total += a.PartsCount
	}
	return total
}

// Distribution returns the percentage breakdown of parts per associate.
// An empty cap table divides by one so percentages stay defined.
func (s *Societe) Distribution() []DistributionRow {
	total := s.TotalParts()
	if total == 0 {
		total = 1
	}
	rows := make([]DistributionRow, len(s.Associates))
	for i, a := range s.Associates {
		rows[i] = DistributionRow{
			Name:       a.Name,
			Address:    a.Address,
			PartsCount: a.PartsCount,
			Percent:    float64(a.PartsCount) / float64(total) * 100.0,
		}
	}
	return rows
}
