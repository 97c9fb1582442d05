package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/core/services"
	"github.com/atlascompta/compta_backend/internal/dto"
	"github.com/atlascompta/compta_backend/internal/platform/config"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	cfg          *config.Config
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "compta-backend-test",
	}
	suite.service = services.NewUserService(suite.mockUserRepo, suite.cfg)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegisterUser_HashesAndLowercases() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Email: " Expert@Cabinet.MA ", Password: "motdepasse"}

	var saved domain.User
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("expert@cabinet.ma", user.Email)
	suite.NotEmpty(user.UserID)
	suite.Equal("user", user.Role)
	suite.NotEqual("motdepasse", saved.PasswordHash)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("motdepasse")))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Email: "expert@cabinet.ma", Password: "motdepasse"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.MinCost)
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "expert@cabinet.ma",
		PasswordHash: string(hash),
		Role:         "admin",
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "expert@cabinet.ma").Return(stored, nil).Once()

	user, token, err := suite.service.AuthenticateUser(ctx, dto.LoginRequest{Email: "Expert@Cabinet.MA", Password: "motdepasse"})

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(token)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(suite.cfg.JWTSecret), nil
	})
	suite.Require().NoError(err)
	suite.True(parsed.Valid)
	suite.Equal(stored.UserID, claims.Subject)
	suite.Equal(suite.cfg.JWTIssuer, claims.Issuer)
	suite.WithinDuration(time.Now().Add(suite.cfg.JWTExpiryDuration), claims.ExpiresAt.Time, 5*time.Second)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.MinCost)
	suite.Require().NoError(err)

	stored := &domain.User{UserID: uuid.NewString(), Email: "expert@cabinet.ma", PasswordHash: string(hash)}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "expert@cabinet.ma").Return(stored, nil).Once()

	user, token, err := suite.service.AuthenticateUser(ctx, dto.LoginRequest{Email: "expert@cabinet.ma", Password: "autre"})

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
	suite.Empty(token)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "inconnu@cabinet.ma").Return(nil, apperrors.ErrNotFound).Once()

	user, token, err := suite.service.AuthenticateUser(ctx, dto.LoginRequest{Email: "inconnu@cabinet.ma", Password: "motdepasse"})

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
	suite.Empty(token)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
