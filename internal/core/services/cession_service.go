package services

import (
	"context"
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

// cessionService records share transfers and the cap-table updates they
// produce.
type cessionService struct {
	BaseService
	societeRepo portsrepo.SocieteRepositoryFacade
	cessionRepo portsrepo.CessionRepositoryFacade
}

// NewCessionService creates a new CessionSvc.
func NewCessionService(societeRepo portsrepo.SocieteRepositoryFacade, cessionRepo portsrepo.CessionRepositoryFacade) portssvc.CessionSvc {
	return &cessionService{societeRepo: societeRepo, cessionRepo: cessionRepo}
}

var _ portssvc.CessionSvc = (*cessionService)(nil)

// RecordCession applies the transfer to the societe's associates and persists
// the cession together with the resulting part counts in one transaction.
func (s *cessionService) RecordCession(ctx context.Context, societeID string, req dto.CreateCessionRequest) (*domain.Cession, error) {
	if _, err := s.societeRepo.FindSocieteByID(ctx, societeID); err != nil {
		return nil, err
	}

	cessionDate, err := time.Parse(time.DateOnly, req.CessionDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cession date %q", apperrors.ErrValidation, req.CessionDate)
	}

	associates, err := s.societeRepo.FindAssociatesBySociete(ctx, societeID)
	if err != nil {
		return nil, err
	}

	associates, err = domain.ApplyCession(associates, societeID, req.Cedant, req.Cessionnaire, req.PartsCount, req.Strict)
	if err != nil {
		s.LogInfo(ctx, "Cession rejected",
			slog.String("societe_id", societeID),
			slog.String("cedant", req.Cedant),
			slog.Int64("parts", req.PartsCount))
		return nil, err
	}

	now := time.Now()
	for i := range associates {
		if associates[i].AssociateID == "" {
			associates[i].AssociateID = uuid.NewString()
			associates[i].CreatedAt = now
		}
		associates[i].UpdatedAt = now
	}

	cession := domain.Cession{
		CessionID:           uuid.NewString(),
		SocieteID:           societeID,
		CessionDate:         cessionDate,
		Cedant:              req.Cedant,
		CedantAddress:       req.CedantAddress,
		Cessionnaire:        req.Cessionnaire,
		CessionnaireAddress: req.CessionnaireAddress,
		PartsCount:          req.PartsCount,
		Price:               req.Price,
		PaymentMode:         req.PaymentMode,
		Conditions:          req.Conditions,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.cessionRepo.SaveCessionWithDistribution(ctx, cession, associates); err != nil {
		s.LogError(ctx, err, "Failed to save cession", slog.String("societe_id", societeID))
		return nil, err
	}

	s.LogInfo(ctx, "Cession recorded",
		slog.String("cession_id", cession.CessionID),
		slog.String("societe_id", societeID),
		slog.Int64("parts", cession.PartsCount))
	return &cession, nil
}

func (s *cessionService) ListCessionsBySociete(ctx context.Context, societeID string) ([]domain.Cession, error) {
	return s.cessionRepo.ListCessionsBySociete(ctx, societeID)
}
