package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/dto"
)

// dashboardCessionCount caps the recent-transfers panel of the dashboard.
const dashboardCessionCount = 10

// cabinetService implements firm-level operations including the dashboard.
type cabinetService struct {
	BaseService
	cabinetRepo portsrepo.CabinetRepositoryFacade
	societeRepo portsrepo.SocieteRepositoryFacade
	cessionRepo portsrepo.CessionRepositoryFacade
}

// NewCabinetService creates a new CabinetSvc.
func NewCabinetService(
	cabinetRepo portsrepo.CabinetRepositoryFacade,
	societeRepo portsrepo.SocieteRepositoryFacade,
	cessionRepo portsrepo.CessionRepositoryFacade,
) portssvc.CabinetSvc {
	return &cabinetService{cabinetRepo: cabinetRepo, societeRepo: societeRepo, cessionRepo: cessionRepo}
}

var _ portssvc.CabinetSvc = (*cabinetService)(nil)

func (s *cabinetService) CreateCabinet(ctx context.Context, req dto.CreateCabinetRequest) (*domain.Cabinet, error) {
	now := time.Now()
	cabinet := domain.Cabinet{
		CabinetID: uuid.NewString(),
		Name:      req.Name,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.cabinetRepo.SaveCabinet(ctx, cabinet); err != nil {
		s.LogError(ctx, err, "Failed to save cabinet", slog.String("name", cabinet.Name))
		return nil, err
	}
	return &cabinet, nil
}

func (s *cabinetService) GetCabinetByID(ctx context.Context, cabinetID string) (*domain.Cabinet, error) {
	return s.cabinetRepo.FindCabinetByID(ctx, cabinetID)
}

func (s *cabinetService) ListCabinets(ctx context.Context) ([]domain.Cabinet, error) {
	return s.cabinetRepo.ListCabinets(ctx)
}

// DeleteCabinet removes the cabinet; its companies stay and are detached by
// the repository in the same transaction.
func (s *cabinetService) DeleteCabinet(ctx context.Context, cabinetID string) error {
	if err := s.cabinetRepo.DeleteCabinet(ctx, cabinetID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete cabinet", slog.String("cabinet_id", cabinetID))
		}
		return err
	}
	s.LogInfo(ctx, "Cabinet deleted", slog.String("cabinet_id", cabinetID))
	return nil
}

// Dashboard aggregates the cabinet's portfolio: total company count, the
// per-legal-form breakdown and the latest share transfers.
func (s *cabinetService) Dashboard(ctx context.Context, cabinetID string) (*dto.DashboardResponse, error) {
	if _, err := s.cabinetRepo.FindCabinetByID(ctx, cabinetID); err != nil {
		return nil, err
	}

	counts, err := s.societeRepo.CountByTypeJuridique(ctx, cabinetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate dashboard", slog.String("cabinet_id", cabinetID))
		return nil, err
	}

	cessions, err := s.cessionRepo.ListRecentCessionsByCabinet(ctx, cabinetID, dashboardCessionCount)
	if err != nil {
		s.LogError(ctx, err, "Failed to load recent cessions", slog.String("cabinet_id", cabinetID))
		return nil, err
	}

	dashboard := &dto.DashboardResponse{
		ByType:       make([]dto.TypeCountResponse, len(counts)),
		LastCessions: make([]dto.CessionResponse, len(cessions)),
	}
	for i, tc := range counts {
		dashboard.ByType[i] = dto.TypeCountResponse{
			TypeJuridique: tc.TypeJuridique,
			Count:         tc.Count,
		}
		dashboard.SocieteCount += tc.Count
	}
	for i := range cessions {
		dashboard.LastCessions[i] = dto.ToCessionResponse(&cessions[i])
	}
	return dashboard, nil
}

// societeService implements company and associate management.
type societeService struct {
	BaseService
	societeRepo portsrepo.SocieteRepositoryFacade
	cabinetRepo portsrepo.CabinetRepositoryFacade
}

// NewSocieteService creates a new SocieteSvcFacade.
func NewSocieteService(societeRepo portsrepo.SocieteRepositoryFacade, cabinetRepo portsrepo.CabinetRepositoryFacade) portssvc.SocieteSvcFacade {
	return &societeService{societeRepo: societeRepo, cabinetRepo: cabinetRepo}
}

var _ portssvc.SocieteSvcFacade = (*societeService)(nil)

func (s *societeService) CreateSociete(ctx context.Context, req dto.CreateSocieteRequest) (*domain.Societe, error) {
	if _, err := s.cabinetRepo.FindCabinetByID(ctx, req.CabinetID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown cabinet %s", apperrors.ErrValidation, req.CabinetID)
		}
		return nil, err
	}

	now := time.Now()
	societe := domain.Societe{
		SocieteID:     uuid.NewString(),
		Name:          req.Name,
		TypeJuridique: req.TypeJuridique,
		Capital:       req.Capital,
		Gerant:        req.Gerant,
		RC:            req.RC,
		CabinetID:     req.CabinetID,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.societeRepo.SaveSociete(ctx, societe); err != nil {
		s.LogError(ctx, err, "Failed to save societe", slog.String("name", societe.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Societe created",
		slog.String("societe_id", societe.SocieteID),
		slog.String("cabinet_id", societe.CabinetID))
	return &societe, nil
}

// UpdateSociete applies the non-nil fields of the request onto the stored
// company.
func (s *societeService) UpdateSociete(ctx context.Context, societeID string, req dto.UpdateSocieteRequest) (*domain.Societe, error) {
	societe, err := s.societeRepo.FindSocieteByID(ctx, societeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		societe.Name = *req.Name
	}
	if req.TypeJuridique != nil {
		societe.TypeJuridique = *req.TypeJuridique
	}
	if req.Capital != nil {
		societe.Capital = *req.Capital
	}
	if req.Gerant != nil {
		societe.Gerant = *req.Gerant
	}
	if req.RC != nil {
		societe.RC = *req.RC
	}
	societe.UpdatedAt = time.Now()

	if err := s.societeRepo.UpdateSociete(ctx, *societe); err != nil {
		s.LogError(ctx, err, "Failed to update societe", slog.String("societe_id", societeID))
		return nil, err
	}
	return societe, nil
}

func (s *societeService) AddAssociate(ctx context.Context, societeID string, req dto.CreateAssociateRequest) (*domain.Associate, error) {
	if _, err := s.societeRepo.FindSocieteByID(ctx, societeID); err != nil {
		return nil, err
	}

	now := time.Now()
	associate := domain.Associate{
		AssociateID: uuid.NewString(),
		SocieteID:   societeID,
		Name:        req.Name,
		Address:     req.Address,
		PartsCount:  req.PartsCount,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.societeRepo.SaveAssociate(ctx, associate); err != nil {
		s.LogError(ctx, err, "Failed to save associate", slog.String("societe_id", societeID))
		return nil, err
	}
	return &associate, nil
}

// GetSocieteByID retrieves a company with its associates loaded.
func (s *societeService) GetSocieteByID(ctx context.Context, societeID string) (*domain.Societe, error) {
	societe, err := s.societeRepo.FindSocieteByID(ctx, societeID)
	if err != nil {
		return nil, err
	}
	associates, err := s.societeRepo.FindAssociatesBySociete(ctx, societeID)
	if err != nil {
		return nil, err
	}
	societe.Associates = associates
	return societe, nil
}

func (s *societeService) ListSocietes(ctx context.Context, cabinetID string) ([]domain.Societe, error) {
	return s.societeRepo.ListSocietes(ctx, cabinetID)
}

// Distribution is GetSocieteByID under a name that matches its use: the
// loaded associates carry the current cap table.
func (s *societeService) Distribution(ctx context.Context, societeID string) (*domain.Societe, error) {
	return s.GetSocieteByID(ctx, societeID)
}
