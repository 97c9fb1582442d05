package services_test

import (
	"context"
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

// MockCabinetRepository is a mock type for the CabinetRepositoryFacade interface
type MockCabinetRepository struct {
	mock.Mock
}

func (m *MockCabinetRepository) SaveCabinet(ctx context.Context, cabinet domain.Cabinet) error {
	args := m.Called(ctx, cabinet)
	return args.Error(0)
}

func (m *MockCabinetRepository) FindCabinetByID(ctx context.Context, cabinetID string) (*domain.Cabinet, error) {
	args := m.Called(ctx, cabinetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cabinet), args.Error(1)
}

func (m *MockCabinetRepository) ListCabinets(ctx context.Context) ([]domain.Cabinet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cabinet), args.Error(1)
}

func (m *MockCabinetRepository) DeleteCabinet(ctx context.Context, cabinetID string) error {
	args := m.Called(ctx, cabinetID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type CabinetServiceTestSuite struct {
	suite.Suite
	mockCabinetRepo *MockCabinetRepository
	mockSocieteRepo *MockSocieteRepository
	mockCessionRepo *MockCessionRepository
	service         portssvc.CabinetSvc
	ctx             context.Context
}

func (suite *CabinetServiceTestSuite) SetupTest() {
	suite.mockCabinetRepo = new(MockCabinetRepository)
	suite.mockSocieteRepo = new(MockSocieteRepository)
	suite.mockCessionRepo = new(MockCessionRepository)
	suite.service = services.NewCabinetService(suite.mockCabinetRepo, suite.mockSocieteRepo, suite.mockCessionRepo)
	suite.ctx = context.Background()
}

func TestCabinetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CabinetServiceTestSuite))
}

// --- Tests ---

func (suite *CabinetServiceTestSuite) TestDashboard_AggregatesCountsAndRecentCessions() {
	cabinetID := uuid.NewString()
	suite.mockCabinetRepo.On("FindCabinetByID", suite.ctx, cabinetID).
		Return(&domain.Cabinet{CabinetID: cabinetID, Name: "Cabinet Atlas"}, nil).Once()
	suite.mockSocieteRepo.On("CountByTypeJuridique", suite.ctx, cabinetID).
		Return([]domain.TypeCount{
			{TypeJuridique: "SARL", Count: 7},
			{TypeJuridique: "SA", Count: 2},
		}, nil).Once()
	suite.mockCessionRepo.On("ListRecentCessionsByCabinet", suite.ctx, cabinetID, 10).
		Return([]domain.Cession{
			{
				CessionID:    uuid.NewString(),
				CessionDate:  time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
				Cedant:       "Karim",
				Cessionnaire: "Sara",
				PartsCount:   100,
				Price:        decimal.NewFromInt(50000),
			},
		}, nil).Once()

	dashboard, err := suite.service.Dashboard(suite.ctx, cabinetID)

	suite.Require().NoError(err)
	suite.Equal(int64(9), dashboard.SocieteCount)
	suite.Len(dashboard.ByType, 2)
	suite.Equal("SARL", dashboard.ByType[0].TypeJuridique)
	suite.Require().Len(dashboard.LastCessions, 1)
	suite.Equal("Karim", dashboard.LastCessions[0].Cedant)
	suite.Equal("2024-06-03", dashboard.LastCessions[0].CessionDate)
	suite.mockCessionRepo.AssertExpectations(suite.T())
}

func (suite *CabinetServiceTestSuite) TestDashboard_CabinetNotFound() {
	cabinetID := uuid.NewString()
	suite.mockCabinetRepo.On("FindCabinetByID", suite.ctx, cabinetID).
		Return(nil, apperrors.ErrNotFound).Once()

	dashboard, err := suite.service.Dashboard(suite.ctx, cabinetID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(dashboard)
	suite.mockSocieteRepo.AssertNotCalled(suite.T(), "CountByTypeJuridique", mock.Anything, mock.Anything)
}

func (suite *CabinetServiceTestSuite) TestDeleteCabinet_Success() {
	cabinetID := uuid.NewString()
	suite.mockCabinetRepo.On("DeleteCabinet", suite.ctx, cabinetID).Return(nil).Once()

	err := suite.service.DeleteCabinet(suite.ctx, cabinetID)

	suite.Require().NoError(err)
	suite.mockCabinetRepo.AssertExpectations(suite.T())
}

func (suite *CabinetServiceTestSuite) TestDeleteCabinet_NotFound() {
	cabinetID := uuid.NewString()
	suite.mockCabinetRepo.On("DeleteCabinet", suite.ctx, cabinetID).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCabinet(suite.ctx, cabinetID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

// --- Societe service tests ---

type SocieteServiceTestSuite struct {
	suite.Suite
	mockSocieteRepo *MockSocieteRepository
	mockCabinetRepo *MockCabinetRepository
	service         portssvc.SocieteSvcFacade
	ctx             context.Context
}

func (suite *SocieteServiceTestSuite) SetupTest() {
	suite.mockSocieteRepo = new(MockSocieteRepository)
	suite.mockCabinetRepo = new(MockCabinetRepository)
	suite.service = services.NewSocieteService(suite.mockSocieteRepo, suite.mockCabinetRepo)
	suite.ctx = context.Background()
}

func TestSocieteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SocieteServiceTestSuite))
}

func (suite *SocieteServiceTestSuite) TestCreateSociete_UnknownCabinet() {
	cabinetID := uuid.NewString()
	suite.mockCabinetRepo.On("FindCabinetByID", suite.ctx, cabinetID).
		Return(nil, apperrors.ErrNotFound).Once()

	societe, err := suite.service.CreateSociete(suite.ctx, dto.CreateSocieteRequest{
		Name:      "Atlas Conseil",
		CabinetID: cabinetID,
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(societe)
	suite.mockSocieteRepo.AssertNotCalled(suite.T(), "SaveSociete", mock.Anything, mock.Anything)
}

func (suite *SocieteServiceTestSuite) TestUpdateSociete_AppliesOnlyProvidedFields() {
	societeID := uuid.NewString()
	stored := &domain.Societe{
		SocieteID:     societeID,
		Name:          "Atlas Conseil",
		TypeJuridique: "SARL",
		Capital:       decimal.NewFromInt(100000),
		Gerant:        "Karim",
	}
	suite.mockSocieteRepo.On("FindSocieteByID", suite.ctx, societeID).Return(stored, nil).Once()
	suite.mockSocieteRepo.On("UpdateSociete", suite.ctx, mock.MatchedBy(func(s domain.Societe) bool {
		return s.Name == "Atlas Conseil" && s.Gerant == "Sara" && s.TypeJuridique == "SARL"
	})).Return(nil).Once()

	gerant := "Sara"
	updated, err := suite.service.UpdateSociete(suite.ctx, societeID, dto.UpdateSocieteRequest{Gerant: &gerant})

	suite.Require().NoError(err)
	suite.Equal("Sara", updated.Gerant)
	suite.Equal("Atlas Conseil", updated.Name)
	suite.mockSocieteRepo.AssertExpectations(suite.T())
}

func (suite *SocieteServiceTestSuite) TestGetSocieteByID_LoadsAssociates() {
	societeID := uuid.NewString()
	suite.mockSocieteRepo.On("FindSocieteByID", suite.ctx, societeID).
		Return(&domain.Societe{SocieteID: societeID, Name: "Atlas Conseil"}, nil).Once()
	suite.mockSocieteRepo.On("FindAssociatesBySociete", suite.ctx, societeID).
		Return([]domain.Associate{
			{AssociateID: uuid.NewString(), Name: "Karim", PartsCount: 600},
			{AssociateID: uuid.NewString(), Name: "Sara", PartsCount: 400},
		}, nil).Once()

	societe, err := suite.service.GetSocieteByID(suite.ctx, societeID)

	suite.Require().NoError(err)
	suite.Len(societe.Associates, 2)
}
