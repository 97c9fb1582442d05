package dto

import (
	"time"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCabinetRequest defines the data needed to create a cabinet.
type CreateCabinetRequest struct {
	Name string `json:"name" binding:"required"`
}

// CabinetResponse defines the data returned for a cabinet.
type CabinetResponse struct {
	CabinetID string `json:"cabinetID"`
	Name      string `json:"name"`
}

// CreateSocieteRequest defines the data needed to register a client company.
type CreateSocieteRequest struct {
	Name          string          `json:"name" binding:"required"`
	TypeJuridique string          `json:"typeJuridique"`
	Capital       decimal.Decimal `json:"capital"`
	Gerant        string          `json:"gerant"`
	RC            string          `json:"rc"`
	CabinetID     string          `json:"cabinetID" binding:"required"`
}

// UpdateSocieteRequest defines the data allowed for updating a company.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateSocieteRequest struct {
	Name          *string          `json:"name"`
	TypeJuridique *string          `json:"typeJuridique"`
	Capital       *decimal.Decimal `json:"capital"`
	Gerant        *string          `json:"gerant"`
	RC            *string          `json:"rc"`
}

// CreateAssociateRequest defines the data needed to add a shareholder.
type CreateAssociateRequest struct {
	Name       string `json:"name" binding:"required"`
	Address    string `json:"address"`
	PartsCount int64  `json:"partsCount" binding:"min=0"`
}

// AssociateResponse defines the data returned for a shareholder.
type AssociateResponse struct {
	AssociateID string `json:"associateID"`
	SocieteID   string `json:"societeID"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PartsCount  int64  `json:"partsCount"`
}

// SocieteResponse defines the data returned for a company.
type SocieteResponse struct {
	SocieteID     string              `json:"societeID"`
	Name          string              `json:"name"`
	TypeJuridique string              `json:"typeJuridique"`
	Capital       decimal.Decimal     `json:"capital"`
	Gerant        string              `json:"gerant"`
	RC            string              `json:"rc"`
	CabinetID     string              `json:"cabinetID"`
	Associates    []AssociateResponse `json:"associates,omitempty"`
}

// CreateCessionRequest defines the data needed to record a share transfer.
type CreateCessionRequest struct {
	CessionDate         string          `json:"cessionDate" binding:"required,datetime=2006-01-02"`
	Cedant              string          `json:"cedant" binding:"required"`
	CedantAddress       string          `json:"cedantAddress"`
	Cessionnaire        string          `json:"cessionnaire" binding:"required"`
	CessionnaireAddress string          `json:"cessionnaireAddress"`
	PartsCount          int64           `json:"partsCount" binding:"required,min=1"`
	Price               decimal.Decimal `json:"price"`
	PaymentMode         string          `json:"paymentMode"`
	Conditions          string          `json:"conditions"`
	// Strict rejects the transfer when the cedant holds fewer parts than
	// transferred, instead of flooring the remainder at zero.
	Strict bool `json:"strict"`
}

// CessionResponse defines the data returned for a share transfer.
type CessionResponse struct {
	CessionID    string          `json:"cessionID"`
	SocieteID    string          `json:"societeID"`
	CessionDate  string          `json:"cessionDate"`
	Cedant       string          `json:"cedant"`
	Cessionnaire string          `json:"cessionnaire"`
	PartsCount   int64           `json:"partsCount"`
	Price        decimal.Decimal `json:"price"`
	PaymentMode  string          `json:"paymentMode"`
}

// DistributionRowResponse is one associate's slice of the cap table.
type DistributionRowResponse struct {
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	PartsCount int64   `json:"partsCount"`
	Percent    float64 `json:"percent"`
}

// DistributionResponse wraps a company's cap table.
type DistributionResponse struct {
	SocieteID  string                    `json:"societeID"`
	TotalParts int64                     `json:"totalParts"`
	Rows       []DistributionRowResponse `json:"rows"`
}

// DashboardResponse aggregates the cabinet's portfolio for its landing page.
type DashboardResponse struct {
	SocieteCount int64               `json:"societeCount"`
	ByType       []TypeCountResponse `json:"byType"`
	LastCessions []CessionResponse   `json:"lastCessions"`
}

// TypeCountResponse is one slice of the companies-by-type breakdown.
type TypeCountResponse struct {
	TypeJuridique string `json:"typeJuridique"`
	Count         int64  `json:"count"`
}

// CreateDocTemplateRequest defines the data needed to create a document template.
type CreateDocTemplateRequest struct {
	Title   string `json:"title" binding:"required"`
	DocType string `json:"docType" binding:"required,oneof=statuts pv"`
	Content string `json:"content" binding:"required"`
}

// UpdateDocTemplateRequest defines the data allowed for updating a template.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateDocTemplateRequest struct {
	Title   *string `json:"title"`
	DocType *string `json:"docType" binding:"omitempty,oneof=statuts pv"`
	Content *string `json:"content"`
}

// DocTemplateResponse defines the data returned for a document template.
type DocTemplateResponse struct {
	TemplateID string `json:"templateID"`
	Title      string `json:"title"`
	DocType    string `json:"docType"`
	Content    string `json:"content"`
}

// RenderedDocResponse is a template with a societe's fields substituted.
type RenderedDocResponse struct {
	TemplateID string `json:"templateID"`
	SocieteID  string `json:"societeID"`
	Title      string `json:"title"`
	Content    string `json:"content"`
}

// ToCabinetResponse converts a domain.Cabinet to CabinetResponse DTO
func ToCabinetResponse(c *domain.Cabinet) CabinetResponse {
	return CabinetResponse{CabinetID: c.CabinetID, Name: c.Name}
}

// ToAssociateResponse converts a domain.Associate to AssociateResponse DTO
func ToAssociateResponse(a *domain.Associate) AssociateResponse {
	return AssociateResponse{
		AssociateID: a.AssociateID,
		SocieteID:   a.SocieteID,
		Name:        a.Name,
		Address:     a.Address,
		PartsCount:  a.PartsCount,
	}
}

// ToSocieteResponse converts a domain.Societe to SocieteResponse DTO
func ToSocieteResponse(s *domain.Societe) SocieteResponse {
	associates := make([]AssociateResponse, len(s.Associates))
	for i := range s.Associates {
		associates[i] = ToAssociateResponse(&s.Associates[i])
	}
	return SocieteResponse{
		SocieteID:     s.SocieteID,
		Name:          s.Name,
		TypeJuridique: s.TypeJuridique,
		Capital:       s.Capital,
		Gerant:        s.Gerant,
		RC:            s.RC,
		CabinetID:     s.CabinetID,
		Associates:    associates,
	}
}

// ToCessionResponse converts a domain.Cession to CessionResponse DTO
func ToCessionResponse(c *domain.Cession) CessionResponse {
	return CessionResponse{
		CessionID:    c.CessionID,
		SocieteID:    c.SocieteID,
		CessionDate:  c.CessionDate.Format(time.DateOnly),
		Cedant:       c.Cedant,
		Cessionnaire: c.Cessionnaire,
		PartsCount:   c.PartsCount,
		Price:        c.Price,
		PaymentMode:  c.PaymentMode,
	}
}

// ToDistributionResponse converts a societe's cap table to DistributionResponse DTO
func ToDistributionResponse(s *domain.Societe) DistributionResponse {
	rows := s.Distribution()
	response := DistributionResponse{
		SocieteID:  s.SocieteID,
		TotalParts: s.TotalParts(),
		Rows:       make([]DistributionRowResponse, len(rows)),
	}
	for i, row := range rows {
		response.Rows[i] = DistributionRowResponse{
			Name:       row.Name,
			Address:    row.Address,
			PartsCount: row.PartsCount,
			Percent:    row.Percent,
		}
	}
	return response
}

// ToDocTemplateResponse converts a domain.DocTemplate to DocTemplateResponse DTO
func ToDocTemplateResponse(t *domain.DocTemplate) DocTemplateResponse {
	return DocTemplateResponse{
		TemplateID: t.TemplateID,
		Title:      t.Title,
		DocType:    string(t.DocType),
		Content:    t.Content,
	}
}
