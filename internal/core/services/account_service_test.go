package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/atlascompta/compta_backend/internal/apperrors"
	"github.com/atlascompta/compta_backend/internal/core/domain"
	portssvc "github.com/atlascompta/compta_backend/internal/core/ports/services"
	"github.com/atlascompta/compta_backend/internal/core/services"
	"github.com/atlascompta/compta_backend/internal/dto"
)

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_DerivesClassFromCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "5141", Name: "Banque", AccountType: domain.Asset}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal("5141", account.Code)
	suite.Equal("5", account.ClassCode)
	suite.Equal(domain.Asset, account.AccountType)
	suite.WithinDuration(time.Now(), account.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RejectsCodeOutsideClasses() {
	ctx := context.Background()

	for _, code := range []string{"", "0141", "9141", "X141"} {
		account, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Code: code, Name: "Divers", AccountType: domain.Asset})
		suite.Require().ErrorIs(err, apperrors.ErrValidation, code)
		suite.Nil(account)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	account, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Code: "5141", Name: "Banque", AccountType: domain.Asset})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestSeedChart_NoOpWhenAccountsExist() {
	ctx := context.Background()

	suite.mockRepo.On("CountAccounts", ctx).Return(int64(42), nil).Once()

	err := suite.service.SeedChart(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccounts")
}

func (suite *AccountServiceTestSuite) TestSeedChart_LoadsBundledChart() {
	ctx := context.Background()

	suite.mockRepo.On("CountAccounts", ctx).Return(int64(0), nil).Once()
	suite.mockRepo.On("SaveAccounts", ctx, mock.MatchedBy(func(accounts []domain.Account) bool {
		if len(accounts) == 0 {
			return false
		}
		for _, a := range accounts {
			if a.AccountID == "" || a.Code == "" || a.ClassCode != a.Code[:1] {
				return false
			}
		}
		return true
	})).Return(10, nil).Once()

	err := suite.service.SeedChart(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestImportCSV_Success() {
	ctx := context.Background()
	csvData := strings.Join([]string{
		"code,name,class,type",
		"6111,Achats de marchandises,6,EXPENSE",
		"7111,Ventes de marchandises,7,INCOME",
		"5141,Banque,5,ASSET",
	}, "\n")

	suite.mockRepo.On("SaveAccounts", ctx, mock.MatchedBy(func(accounts []domain.Account) bool {
		return len(accounts) == 3 && accounts[0].Code == "6111" && accounts[0].AccountType == domain.Expense
	})).Return(2, nil).Once()

	created, skipped, err := suite.service.ImportCSV(ctx, strings.NewReader(csvData))

	suite.Require().NoError(err)
	suite.Equal(2, created)
	suite.Equal(1, skipped)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestImportCSV_MissingColumn() {
	ctx := context.Background()
	csvData := "code,name\n6111,Achats"

	created, skipped, err := suite.service.ImportCSV(ctx, strings.NewReader(csvData))

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Zero(created)
	suite.Zero(skipped)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccounts")
}

func (suite *AccountServiceTestSuite) TestImportCSV_EmptyStream() {
	ctx := context.Background()

	_, _, err := suite.service.ImportCSV(ctx, strings.NewReader(""))

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, accountID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(account)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
