package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/core/services"
	"github.com/atlascompta/compta_backend/internal/dto"
)

// MockDocTemplateRepository is a mock type for the DocTemplateRepositoryFacade interface
type MockDocTemplateRepository struct {
	mock.Mock
}

func (m *MockDocTemplateRepository) SaveDocTemplate(ctx context.Context, tpl domain.DocTemplate) error {
	args := m.Called(ctx, tpl)
	return args.Error(0)
}

func (m *MockDocTemplateRepository) UpdateDocTemplate(ctx context.Context, tpl domain.DocTemplate) error {
	args := m.Called(ctx, tpl)
	return args.Error(0)
}

func (m *MockDocTemplateRepository) DeleteDocTemplate(ctx context.Context, templateID string) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}

func (m *MockDocTemplateRepository) FindDocTemplateByID(ctx context.Context, templateID string) (*domain.DocTemplate, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocTemplate), args.Error(1)
}

func (m *MockDocTemplateRepository) ListDocTemplates(ctx context.Context, docType string) ([]domain.DocTemplate, error) {
	args := m.Called(ctx, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocTemplate), args.Error(1)
}

// --- Test Suite Setup ---

type DocTemplateServiceTestSuite struct {
	suite.Suite
	mockTemplateRepo *MockDocTemplateRepository
	mockSocieteRepo  *MockSocieteRepository
	service          portssvc.DocTemplateSvc
	ctx              context.Context
}

func (suite *DocTemplateServiceTestSuite) SetupTest() {
	suite.mockTemplateRepo = new(MockDocTemplateRepository)
	suite.mockSocieteRepo = new(MockSocieteRepository)
	suite.service = services.NewDocTemplateService(suite.mockTemplateRepo, suite.mockSocieteRepo)
	suite.ctx = context.Background()
}

func TestDocTemplateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocTemplateServiceTestSuite))
}

// --- Tests ---

func (suite *DocTemplateServiceTestSuite) TestRender_SubstitutesPlaceholders() {
	templateID := uuid.NewString()
	societeID := uuid.NewString()
	suite.mockTemplateRepo.On("FindDocTemplateByID", suite.ctx, templateID).
		Return(&domain.DocTemplate{
			TemplateID: templateID,
			Title:      "Statuts SARL",
			DocType:    domain.Statuts,
			Content:    "La société {{denomination}}, {{type_juridique}} au capital de {{capital}} MAD, gérée par {{gerant}}, RC {{rc}}, le {{date}}.",
		}, nil).Once()
	suite.mockSocieteRepo.On("FindSocieteByID", suite.ctx, societeID).
		Return(&domain.Societe{
			SocieteID:     societeID,
			Name:          "Atlas Conseil",
			TypeJuridique: "SARL",
			Capital:       decimal.NewFromInt(100000),
			Gerant:        "Karim Alaoui",
			RC:            "123456",
		}, nil).Once()

	rendered, err := suite.service.Render(suite.ctx, templateID, societeID)

	suite.Require().NoError(err)
	suite.Equal(templateID, rendered.TemplateID)
	suite.Equal(societeID, rendered.SocieteID)
	expected := fmt.Sprintf(
		"La société Atlas Conseil, SARL au capital de 100000.00 MAD, gérée par Karim Alaoui, RC 123456, le %s.",
		time.Now().Format(time.DateOnly))
	suite.Equal(expected, rendered.Content)
}

func (suite *DocTemplateServiceTestSuite) TestRender_LeavesUnknownMarkersInPlace() {
	templateID := uuid.NewString()
	societeID := uuid.NewString()
	suite.mockTemplateRepo.On("FindDocTemplateByID", suite.ctx, templateID).
		Return(&domain.DocTemplate{
			TemplateID: templateID,
			Title:      "PV AGE",
			Content:    "{{denomination}} — {{siege_social}}",
		}, nil).Once()
	suite.mockSocieteRepo.On("FindSocieteByID", suite.ctx, societeID).
		Return(&domain.Societe{SocieteID: societeID, Name: "Atlas Conseil"}, nil).Once()

	rendered, err := suite.service.Render(suite.ctx, templateID, societeID)

	suite.Require().NoError(err)
	suite.Contains(rendered.Content, "{{siege_social}}")
	suite.Contains(rendered.Content, "Atlas Conseil")
}

func (suite *DocTemplateServiceTestSuite) TestRender_TemplateNotFound() {
	templateID := uuid.NewString()
	suite.mockTemplateRepo.On("FindDocTemplateByID", suite.ctx, templateID).
		Return(nil, apperrors.ErrNotFound).Once()

	rendered, err := suite.service.Render(suite.ctx, templateID, uuid.NewString())

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(rendered)
	suite.mockSocieteRepo.AssertNotCalled(suite.T(), "FindSocieteByID", mock.Anything, mock.Anything)
}

func (suite *DocTemplateServiceTestSuite) TestUpdateDocTemplate_AppliesOnlyProvidedFields() {
	templateID := uuid.NewString()
	suite.mockTemplateRepo.On("FindDocTemplateByID", suite.ctx, templateID).
		Return(&domain.DocTemplate{
			TemplateID: templateID,
			Title:      "Statuts SARL",
			DocType:    domain.Statuts,
			Content:    "ancien contenu",
		}, nil).Once()
	suite.mockTemplateRepo.On("UpdateDocTemplate", suite.ctx, mock.MatchedBy(func(tpl domain.DocTemplate) bool {
		return tpl.Title == "Statuts SARL" && tpl.Content == "nouveau contenu" && tpl.DocType == domain.Statuts
	})).Return(nil).Once()

	content := "nouveau contenu"
	updated, err := suite.service.UpdateDocTemplate(suite.ctx, templateID, dto.UpdateDocTemplateRequest{Content: &content})

	suite.Require().NoError(err)
	suite.Equal("nouveau contenu", updated.Content)
	suite.Equal("Statuts SARL", updated.Title)
	suite.mockTemplateRepo.AssertExpectations(suite.T())
}

func (suite *DocTemplateServiceTestSuite) TestDeleteDocTemplate_NotFound() {
	templateID := uuid.NewString()
	suite.mockTemplateRepo.On("DeleteDocTemplate", suite.ctx, templateID).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteDocTemplate(suite.ctx, templateID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DocTemplateServiceTestSuite) TestRenderPDF_ReturnsFilenameWithSocieteName() {
	templateID := uuid.NewString()
	societeID := uuid.NewString()
	suite.mockTemplateRepo.On("FindDocTemplateByID", suite.ctx, templateID).
		Return(&domain.DocTemplate{
			TemplateID: templateID,
			Title:      "Statuts",
			Content:    "Statuts de {{denomination}}",
		}, nil).Once()
	suite.mockSocieteRepo.On("FindSocieteByID", suite.ctx, societeID).
		Return(&domain.Societe{SocieteID: societeID, Name: "Atlas Conseil"}, nil).Twice()

	data, filename, err := suite.service.RenderPDF(suite.ctx, templateID, societeID)

	suite.Require().NoError(err)
	suite.NotEmpty(data)
	suite.Equal("Statuts_atlas_conseil.pdf", filename)
	suite.True(strings.HasPrefix(string(data[:5]), "%PDF-"))
}
