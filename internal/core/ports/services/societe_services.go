package services

import (
	"context"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	"github.com/atlascompta/compta_backend/internal/dto"
)

// CabinetSvc defines operations for accounting firms
type CabinetSvc interface {
	CreateCabinet(ctx context.Context, req dto.CreateCabinetRequest) (*domain.Cabinet, error)
	GetCabinetByID(ctx context.Context, cabinetID string) (*domain.Cabinet, error)
	ListCabinets(ctx context.Context) ([]domain.Cabinet, error)

	// Dashboard aggregates a cabinet's portfolio: company count, the
	// breakdown per legal form and the latest share transfers.
	Dashboard(ctx context.Context, cabinetID string) (*dto.DashboardResponse, error)

	// DeleteCabinet removes the cabinet; its companies are detached, not
	// deleted.
	DeleteCabinet(ctx context.Context, cabinetID string) error
}

// SocieteReaderSvc defines read operations for client companies
type SocieteReaderSvc interface {
	// GetSocieteByID retrieves a company with its associates loaded.
	GetSocieteByID(ctx context.Context, societeID string) (*domain.Societe, error)

	// ListSocietes retrieves a cabinet's companies; empty cabinetID lists all.
	ListSocietes(ctx context.Context, cabinetID string) ([]domain.Societe, error)

	// Distribution returns the company's current cap table with percentages.
	Distribution(ctx context.Context, societeID string) (*domain.Societe, error)
}

// SocieteWriterSvc defines write operations for client companies
type SocieteWriterSvc interface {
	CreateSociete(ctx context.Context, req dto.CreateSocieteRequest) (*domain.Societe, error)
	UpdateSociete(ctx context.Context, societeID string, req dto.UpdateSocieteRequest) (*domain.Societe, error)
	AddAssociate(ctx context.Context, societeID string, req dto.CreateAssociateRequest) (*domain.Associate, error)
}

// SocieteSvcFacade combines all societe-related service interfaces
type SocieteSvcFacade interface {
	SocieteReaderSvc
	SocieteWriterSvc
}

// CessionSvc records share transfers and keeps the cap table in step.
type CessionSvc interface {
	// RecordCession persists the transfer and the associate part counts it
	// produces in one transaction. Strict mode rejects transfers exceeding
	// the cedant's holding.
	RecordCession(ctx context.Context, societeID string, req dto.CreateCessionRequest) (*domain.Cession, error)

	ListCessionsBySociete(ctx context.Context, societeID string) ([]domain.Cession, error)
}

// DocTemplateSvc manages legal document templates and their rendering.
type DocTemplateSvc interface {
	CreateDocTemplate(ctx context.Context, req dto.CreateDocTemplateRequest) (*domain.DocTemplate, error)
	UpdateDocTemplate(ctx context.Context, templateID string, req dto.UpdateDocTemplateRequest) (*domain.DocTemplate, error)
	DeleteDocTemplate(ctx context.Context, templateID string) error
	GetDocTemplateByID(ctx context.Context, templateID string) (*domain.DocTemplate, error)
	ListDocTemplates(ctx context.Context, docType string) ([]domain.DocTemplate, error)

	// Render substitutes a societe's fields into the template placeholders.
	Render(ctx context.Context, templateID, societeID string) (*dto.RenderedDocResponse, error)

	// RenderPDF renders the substituted document as a PDF file, returning
	// its bytes with a suggested filename.
	RenderPDF(ctx context.Context, templateID, societeID string) ([]byte, string, error)
}
