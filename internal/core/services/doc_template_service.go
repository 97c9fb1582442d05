package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atlascompta/compta_backend/internal/core/domain"
	portsrepo "github.com/atlascompta/compta_backend/internal/core/ports/repositories"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/dto"
	"github.com/atlascompta/compta_backend/pkg/export"
)

// docTemplateService manages legal document templates and renders them
// against a societe's data.
type docTemplateService struct {
	BaseService
	templateRepo portsrepo.DocTemplateRepositoryFacade
	societeRepo  portsrepo.SocieteRepositoryFacade
}

// NewDocTemplateService creates a new DocTemplateSvc.
func NewDocTemplateService(templateRepo portsrepo.DocTemplateRepositoryFacade, societeRepo portsrepo.SocieteRepositoryFacade) portssvc.DocTemplateSvc {
	return &docTemplateService{templateRepo: templateRepo, societeRepo: societeRepo}
}

var _ portssvc.DocTemplateSvc = (*docTemplateService)(nil)

func (s *docTemplateService) CreateDocTemplate(ctx context.Context, req dto.CreateDocTemplateRequest) (*domain.DocTemplate, error) {
	now := time.Now()
	tpl := domain.DocTemplate{
		TemplateID: uuid.NewString(),
		Title:      req.Title,
		DocType:    domain.DocTemplateType(req.DocType),
		Content:    req.Content,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.templateRepo.SaveDocTemplate(ctx, tpl); err != nil {
		s.LogError(ctx, err, "Failed to save document template", slog.String("title", tpl.Title))
		return nil, err
	}
	return &tpl, nil
}

// UpdateDocTemplate applies the non-nil fields of the request onto the
// stored template.
func (s *docTemplateService) UpdateDocTemplate(ctx context.Context, templateID string, req dto.UpdateDocTemplateRequest) (*domain.DocTemplate, error) {
	tpl, err := s.templateRepo.FindDocTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		tpl.Title = *req.Title
	}
	if req.DocType != nil {
		tpl.DocType = domain.DocTemplateType(*req.DocType)
	}
	if req.Content != nil {
		tpl.Content = *req.Content
	}
	tpl.UpdatedAt = time.Now()

	if err := s.templateRepo.UpdateDocTemplate(ctx, *tpl); err != nil {
		s.LogError(ctx, err, "Failed to update document template", slog.String("template_id", templateID))
		return nil, err
	}
	return tpl, nil
}

func (s *docTemplateService) DeleteDocTemplate(ctx context.Context, templateID string) error {
	if err := s.templateRepo.DeleteDocTemplate(ctx, templateID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Document template deleted", slog.String("template_id", templateID))
	return nil
}

func (s *docTemplateService) GetDocTemplateByID(ctx context.Context, templateID string) (*domain.DocTemplate, error) {
	return s.templateRepo.FindDocTemplateByID(ctx, templateID)
}

func (s *docTemplateService) ListDocTemplates(ctx context.Context, docType string) ([]domain.DocTemplate, error) {
	return s.templateRepo.ListDocTemplates(ctx, docType)
}

// Render substitutes the societe's fields into the template's {{placeholder}}
// markers. Unknown markers are left in place so a missing field is visible in
// the output rather than silently blanked.
func (s *docTemplateService) Render(ctx context.Context, templateID, societeID string) (*dto.RenderedDocResponse, error) {
	tpl, err := s.templateRepo.FindDocTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	societe, err := s.societeRepo.FindSocieteByID(ctx, societeID)
	if err != nil {
		return nil, err
	}

	replacer := strings.NewReplacer(
		"{{denomination}}", societe.Name,
		"{{type_juridique}}", societe.TypeJuridique,
		"{{capital}}", societe.Capital.StringFixed(2),
		"{{gerant}}", societe.Gerant,
		"{{rc}}", societe.RC,
		"{{date}}", time.Now().Format(time.DateOnly),
	)

	return &dto.RenderedDocResponse{
		TemplateID: tpl.TemplateID,
		SocieteID:  societe.SocieteID,
		Title:      tpl.Title,
		Content:    replacer.Replace(tpl.Content),
	}, nil
}

// RenderPDF renders the substituted document as a PDF file. The filename
// carries the societe name so downloads of the same template stay apart.
func (s *docTemplateService) RenderPDF(ctx context.Context, templateID, societeID string) ([]byte, string, error) {
	rendered, err := s.Render(ctx, templateID, societeID)
	if err != nil {
		return nil, "", err
	}
	societe, err := s.societeRepo.FindSocieteByID(ctx, societeID)
	if err != nil {
		return nil, "", err
	}

	data, err := export.ToDocPDF(export.Doc{
		Title: rendered.Title,
		Meta:  []string{societe.Name, time.Now().Format(time.DateOnly)},
		Body:  rendered.Content,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to render document PDF", slog.String("template_id", templateID))
		return nil, "", err
	}

	name := strings.ToLower(strings.ReplaceAll(societe.Name, " ", "_"))
	return data, fmt.Sprintf("%s_%s.pdf", rendered.Title, name), nil
}
