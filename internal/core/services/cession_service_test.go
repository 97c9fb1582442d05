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

// MockSocieteRepository is a mock type for the SocieteRepositoryFacade interface
type MockSocieteRepository struct {
	mock.Mock
}

func (m *MockSocieteRepository) SaveSociete(ctx context.Context, societe domain.Societe) error {
	args := m.Called(ctx, societe)
	return args.Error(0)
}

func (m *MockSocieteRepository) UpdateSociete(ctx context.Context, societe domain.Societe) error {
	args := m.Called(ctx, societe)
	return args.Error(0)
}

func (m *MockSocieteRepository) FindSocieteByID(ctx context.Context, societeID string) (*domain.Societe, error) {
	args := m.Called(ctx, societeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Societe), args.Error(1)
}

func (m *MockSocieteRepository) ListSocietes(ctx context.Context, cabinetID string) ([]domain.Societe, error) {
	args := m.Called(ctx, cabinetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Societe), args.Error(1)
}

func (m *MockSocieteRepository) CountByTypeJuridique(ctx context.Context, cabinetID string) ([]domain.TypeCount, error) {
	args := m.Called(ctx, cabinetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TypeCount), args.Error(1)
}

func (m *MockSocieteRepository) SaveAssociate(ctx context.Context, associate domain.Associate) error {
	args := m.Called(ctx, associate)
	return args.Error(0)
}

func (m *MockSocieteRepository) FindAssociatesBySociete(ctx context.Context, societeID string) ([]domain.Associate, error) {
	args := m.Called(ctx, societeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Associate), args.Error(1)
}

// MockCessionRepository is a mock type for the CessionRepositoryFacade interface
type MockCessionRepository struct {
	mock.Mock
}

func (m *MockCessionRepository) SaveCessionWithDistribution(ctx context.Context, cession domain.Cession, associates []domain.Associate) error {
	args := m.Called(ctx, cession, associates)
	return args.Error(0)
}

func (m *MockCessionRepository) FindCessionByID(ctx context.Context, cessionID string) (*domain.Cession, error) {
	args := m.Called(ctx, cessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cession), args.Error(1)
}

func (m *MockCessionRepository) ListCessionsBySociete(ctx context.Context, societeID string) ([]domain.Cession, error) {
	args := m.Called(ctx, societeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cession), args.Error(1)
}

func (m *MockCessionRepository) ListRecentCessionsByCabinet(ctx context.Context, cabinetID string, limit int) ([]domain.Cession, error) {
	args := m.Called(ctx, cabinetID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cession), args.Error(1)
}

// --- Test Suite Setup ---

type CessionServiceTestSuite struct {
	suite.Suite
	mockSocieteRepo *MockSocieteRepository
	mockCessionRepo *MockCessionRepository
	service         portssvc.CessionSvc
}

func (suite *CessionServiceTestSuite) SetupTest() {
	suite.mockSocieteRepo = new(MockSocieteRepository)
	suite.mockCessionRepo = new(MockCessionRepository)
	suite.service = services.NewCessionService(suite.mockSocieteRepo, suite.mockCessionRepo)
}

// --- Test Cases ---

func (suite *CessionServiceTestSuite) TestRecordCession_Success() {
	ctx := context.Background()
	societeID := uuid.NewString()
	societe := &domain.Societe{SocieteID: societeID, Name: "Atlas Conseil"}
	associates := []domain.Associate{
		{AssociateID: uuid.NewString(), SocieteID: societeID, Name: "Karim Alaoui", PartsCount: 600},
		{AssociateID: uuid.NewString(), SocieteID: societeID, Name: "Sara Bennis", PartsCount: 400},
	}

	req := dto.CreateCessionRequest{
		CessionDate:  "2024-06-01",
		Cedant:       "Karim Alaoui",
		Cessionnaire: "Sara Bennis",
		PartsCount:   100,
		Price:        decimal.RequireFromString("50000.00"),
		PaymentMode:  "virement",
	}

	suite.mockSocieteRepo.On("FindSocieteByID", ctx, societeID).Return(societe, nil).Once()
	suite.mockSocieteRepo.On("FindAssociatesBySociete", ctx, societeID).Return(associates, nil).Once()
	suite.mockCessionRepo.On("SaveCessionWithDistribution", ctx, mock.AnythingOfType("domain.Cession"), mock.MatchedBy(func(out []domain.Associate) bool {
		counts := map[string]int64{}
		for _, a := range out {
			counts[a.Name] = a.PartsCount
		}
		return counts["Karim Alaoui"] == 500 && counts["Sara Bennis"] == 500
	})).Return(nil).Once()

	cession, err := suite.service.RecordCession(ctx, societeID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(cession)
	suite.NotEmpty(cession.CessionID)
	suite.Equal(societeID, cession.SocieteID)
	suite.Equal(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), cession.CessionDate)
	suite.EqualValues(100, cession.PartsCount)
	suite.mockSocieteRepo.AssertExpectations(suite.T())
	suite.mockCessionRepo.AssertExpectations(suite.T())
}

func (suite *CessionServiceTestSuite) TestRecordCession_AssignsIDToNewParty() {
	ctx := context.Background()
	societeID := uuid.NewString()
	societe := &domain.Societe{SocieteID: societeID}
	associates := []domain.Associate{
		{AssociateID: uuid.NewString(), SocieteID: societeID, Name: "Karim Alaoui", PartsCount: 1000},
	}

	req := dto.CreateCessionRequest{
		CessionDate:  "2024-06-01",
		Cedant:       "Karim Alaoui",
		Cessionnaire: "Nouveau Associe",
		PartsCount:   250,
	}

	suite.mockSocieteRepo.On("FindSocieteByID", ctx, societeID).Return(societe, nil).Once()
	suite.mockSocieteRepo.On("FindAssociatesBySociete", ctx, societeID).Return(associates, nil).Once()
	suite.mockCessionRepo.On("SaveCessionWithDistribution", ctx, mock.AnythingOfType("domain.Cession"), mock.MatchedBy(func(out []domain.Associate) bool {
		for _, a := range out {
			if a.Name == "Nouveau Associe" {
				return a.AssociateID != "" && a.SocieteID == societeID && a.PartsCount == 250
			}
		}
		return false
	})).Return(nil).Once()

	_, err := suite.service.RecordCession(ctx, societeID, req)

	suite.Require().NoError(err)
	suite.mockCessionRepo.AssertExpectations(suite.T())
}

func (suite *CessionServiceTestSuite) TestRecordCession_StrictInsufficientParts() {
	ctx := context.Background()
	societeID := uuid.NewString()
	societe := &domain.Societe{SocieteID: societeID}
	associates := []domain.Associate{
		{AssociateID: uuid.NewString(), SocieteID: societeID, Name: "Karim Alaoui", PartsCount: 50},
	}

	req := dto.CreateCessionRequest{
		CessionDate:  "2024-06-01",
		Cedant:       "Karim Alaoui",
		Cessionnaire: "Sara Bennis",
		PartsCount:   100,
		Strict:       true,
	}

	suite.mockSocieteRepo.On("FindSocieteByID", ctx, societeID).Return(societe, nil).Once()
	suite.mockSocieteRepo.On("FindAssociatesBySociete", ctx, societeID).Return(associates, nil).Once()

	cession, err := suite.service.RecordCession(ctx, societeID, req)

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientParts)
	suite.Nil(cession)
	suite.mockCessionRepo.AssertNotCalled(suite.T(), "SaveCessionWithDistribution")
}

func (suite *CessionServiceTestSuite) TestRecordCession_InvalidDate() {
	ctx := context.Background()
	societeID := uuid.NewString()

	suite.mockSocieteRepo.On("FindSocieteByID", ctx, societeID).Return(&domain.Societe{SocieteID: societeID}, nil).Once()

	cession, err := suite.service.RecordCession(ctx, societeID, dto.CreateCessionRequest{
		CessionDate:  "01/06/2024",
		Cedant:       "Karim Alaoui",
		Cessionnaire: "Sara Bennis",
		PartsCount:   10,
	})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(cession)
}

func (suite *CessionServiceTestSuite) TestRecordCession_SocieteNotFound() {
	ctx := context.Background()
	societeID := uuid.NewString()

	suite.mockSocieteRepo.On("FindSocieteByID", ctx, societeID).Return(nil, apperrors.ErrNotFound).Once()

	cession, err := suite.service.RecordCession(ctx, societeID, dto.CreateCessionRequest{
		CessionDate:  "2024-06-01",
		Cedant:       "Karim Alaoui",
		Cessionnaire: "Sara Bennis",
		PartsCount:   10,
	})

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(cession)
	suite.mockSocieteRepo.AssertNotCalled(suite.T(), "FindAssociatesBySociete")
}

func (suite *CessionServiceTestSuite) TestListCessionsBySociete() {
	ctx := context.Background()
	societeID := uuid.NewString()
	cessions := []domain.Cession{{CessionID: uuid.NewString(), SocieteID: societeID}}

	suite.mockCessionRepo.On("ListCessionsBySociete", ctx, societeID).Return(cessions, nil).Once()

	got, err := suite.service.ListCessionsBySociete(ctx, societeID)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockCessionRepo.AssertExpectations(suite.T())
}

func TestCessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CessionServiceTestSuite))
}
