package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
	"github.com/imovelhub/imovel_finance/internal/core/domain"
	portssvc "github.com/imovelhub/imovel_finance/internal/core/ports/services"
	"github.com/imovelhub/imovel_finance/internal/core/services"
	"github.com/imovelhub/imovel_finance/internal/dto"
)

type BankAccountServiceTestSuite struct {
	suite.Suite
	mockBankAccountRepo *MockBankAccountRepository
	mockPersonRepo      *MockPersonRepository
	service             portssvc.BankAccountSvcFacade
}

func (suite *BankAccountServiceTestSuite) SetupTest() {
	suite.mockBankAccountRepo = new(MockBankAccountRepository)
	suite.mockPersonRepo = new(MockPersonRepository)
	suite.service = services.NewBankAccountService(suite.mockBankAccountRepo, suite.mockPersonRepo)
}

func ownedAccount(bankAccountID, personID string, isDefault bool) *domain.BankAccount {
	now := time.Now().UTC()
	return &domain.BankAccount{
		BankAccountID: bankAccountID,
		BankID:        uuid.NewString(),
		PersonID:      &personID,
		Branch:        "0001",
		Account:       "12345-6",
		AccountType:   domain.AccountCorrente,
		IsDefault:     isDefault,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
}

func (suite *BankAccountServiceTestSuite) TestCreateBankAccount_Success() {
	ctx := context.Background()
	personID := uuid.NewString()
	req := dto.CreateBankAccountRequest{
		BankID:      uuid.NewString(),
		PersonID:    &personID,
		Branch:      "0001",
		Account:     "12345-6",
		AccountType: domain.AccountCorrente,
		IsDefault:   true,
	}

	suite.mockPersonRepo.On("FindPersonByID", ctx, personID).Return(agentPerson(personID), nil).Once()
	suite.mockBankAccountRepo.On("SaveBankAccount", ctx, mock.MatchedBy(func(a domain.BankAccount) bool {
		return a.IsDefault && a.PersonID != nil && *a.PersonID == personID
	})).Return(nil).Once()
	suite.mockBankAccountRepo.On("FindBankAccountByID", ctx, mock.AnythingOfType("string")).
		Return(ownedAccount(uuid.NewString(), personID, true), nil).Once()

	created, err := suite.service.CreateBankAccount(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.True(created.IsDefault)
	suite.mockBankAccountRepo.AssertExpectations(suite.T())
}

func (suite *BankAccountServiceTestSuite) TestCreateBankAccount_DefaultWithoutOwnerFails() {
	ctx := context.Background()
	req := dto.CreateBankAccountRequest{
		BankID:      uuid.NewString(),
		Branch:      "0001",
		Account:     "12345-6",
		AccountType: domain.AccountPoupanca,
		IsDefault:   true,
	}

	created, err := suite.service.CreateBankAccount(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(created)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Fields, "isDefault")
	suite.mockBankAccountRepo.AssertNotCalled(suite.T(), "SaveBankAccount", mock.Anything, mock.Anything)
}

func (suite *BankAccountServiceTestSuite) TestCreateBankAccount_UnknownTypeFails() {
	ctx := context.Background()
	req := dto.CreateBankAccountRequest{
		BankID:      uuid.NewString(),
		Branch:      "0001",
		Account:     "12345-6",
		AccountType: domain.BankAccountType("CHECKING"),
	}

	_, err := suite.service.CreateBankAccount(ctx, req, "user-1")

	suite.Require().Error(err)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Fields, "accountType")
}

func (suite *BankAccountServiceTestSuite) TestSetDefaultBankAccount_SwitchesDefault() {
	ctx := context.Background()
	personID := uuid.NewString()
	bankAccountID := uuid.NewString()

	suite.mockBankAccountRepo.On("FindBankAccountByID", ctx, bankAccountID).
		Return(ownedAccount(bankAccountID, personID, false), nil).Once()
	suite.mockBankAccountRepo.On("SetDefaultBankAccount", ctx, bankAccountID, personID, "user-1", mock.AnythingOfType("time.Time")).
		Return(ownedAccount(bankAccountID, personID, true), nil).Once()

	updated, err := suite.service.SetDefaultBankAccount(ctx, bankAccountID, "user-1")

	suite.Require().NoError(err)
	suite.True(updated.IsDefault)
	suite.mockBankAccountRepo.AssertExpectations(suite.T())
}

func (suite *BankAccountServiceTestSuite) TestSetDefaultBankAccount_NoOwnerFails() {
	ctx := context.Background()
	bankAccountID := uuid.NewString()
	account := ownedAccount(bankAccountID, "", false)
	account.PersonID = nil

	suite.mockBankAccountRepo.On("FindBankAccountByID", ctx, bankAccountID).Return(account, nil).Once()

	_, err := suite.service.SetDefaultBankAccount(ctx, bankAccountID, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBankAccountRepo.AssertNotCalled(suite.T(), "SetDefaultBankAccount",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BankAccountServiceTestSuite) TestDeleteBankAccount_ReferencedFails() {
	ctx := context.Background()
	personID := uuid.NewString()
	bankAccountID := uuid.NewString()

	conflictErr := fmt.Errorf("%w: bank account %s is referenced by 3 transaction(s)", apperrors.ErrConflict, bankAccountID)

	suite.mockBankAccountRepo.On("FindBankAccountByID", ctx, bankAccountID).
		Return(ownedAccount(bankAccountID, personID, false), nil).Once()
	suite.mockBankAccountRepo.On("DeleteBankAccount", ctx, bankAccountID).Return(conflictErr).Once()

	err := suite.service.DeleteBankAccount(ctx, bankAccountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockBankAccountRepo.AssertExpectations(suite.T())
}

func TestBankAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankAccountServiceTestSuite))
}
