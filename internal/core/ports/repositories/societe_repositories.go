package repositories

import (
	"context"

	"github.com/atlascompta/compta_backend/internal/core/domain"
)

// CabinetRepositoryFacade defines persistence operations for cabinets.
type CabinetRepositoryFacade interface {
	SaveCabinet(ctx context.Context, cabinet domain.Cabinet) error
	FindCabinetByID(ctx context.Context, cabinetID string) (*domain.Cabinet, error)
	ListCabinets(ctx context.Context) ([]domain.Cabinet, error)
	// DeleteCabinet removes the cabinet and detaches its companies in the
	// same transaction; the companies themselves are kept.
	DeleteCabinet(ctx context.Context, cabinetID string) error
}

// SocieteRepositoryFacade defines persistence operations for managed
// companies and their associates.
type SocieteRepositoryFacade interface {
	SaveSociete(ctx context.Context, societe domain.Societe) error
	UpdateSociete(ctx context.Context, societe domain.Societe) error
	FindSocieteByID(ctx context.Context, societeID string) (*domain.Societe, error)
	// ListSocietes returns companies of a cabinet ordered by denomination.
	// An empty cabinetID lists across all cabinets.
	ListSocietes(ctx context.Context, cabinetID string) ([]domain.Societe, error)
	// CountByTypeJuridique aggregates companies per legal form.
	CountByTypeJuridique(ctx context.Context, cabinetID string) ([]domain.TypeCount, error)
	SaveAssociate(ctx context.Context, associate domain.Associate) error
	FindAssociatesBySociete(ctx context.Context, societeID string) ([]domain.Associate, error)
}

// CessionRepositoryFacade defines persistence for share transfers.
// SaveCessionWithDistribution records the cession and writes the updated
// associate part counts in the same transaction, so the transfer and the
// distribution it produces can never diverge.
type CessionRepositoryFacade interface {
	SaveCessionWithDistribution(ctx context.Context, cession domain.Cession, associates []domain.Associate) error
	FindCessionByID(ctx context.Context, cessionID string) (*domain.Cession, error)
	// ListCessionsBySociete returns cessions ordered by date descending.
	ListCessionsBySociete(ctx context.Context, societeID string) ([]domain.Cession, error)
	// ListRecentCessionsByCabinet returns the latest cessions recorded
	// across the cabinet's companies, newest first. An empty cabinetID
	// spans all cabinets.
	ListRecentCessionsByCabinet(ctx context.Context, cabinetID string, limit int) ([]domain.Cession, error)
}

// DocTemplateRepositoryFacade defines persistence for document templates.
type DocTemplateRepositoryFacade interface {
	SaveDocTemplate(ctx context.Context, tpl domain.DocTemplate) error
	UpdateDocTemplate(ctx context.Context, tpl domain.DocTemplate) error
	DeleteDocTemplate(ctx context.Context, templateID string) error
	FindDocTemplateByID(ctx context.Context, templateID string) (*domain.DocTemplate, error)
	ListDocTemplates(ctx context.Context, docType string) ([]domain.DocTemplate, error)
}
