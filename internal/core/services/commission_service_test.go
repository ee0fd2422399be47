package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
	"github.com/imovelhub/imovel_finance/internal/core/domain"
	portssvc "github.com/imovelhub/imovel_finance/internal/core/ports/services"
	"github.com/imovelhub/imovel_finance/internal/core/services"
	"github.com/imovelhub/imovel_finance/internal/dto"
)

type CommissionServiceTestSuite struct {
	suite.Suite
	mockCommissionRepo *MockCommissionRepository
	mockPersonRepo     *MockPersonRepository
	service            portssvc.CommissionSvcFacade
}

func (suite *CommissionServiceTestSuite) SetupTest() {
	suite.mockCommissionRepo = new(MockCommissionRepository)
	suite.mockPersonRepo = new(MockPersonRepository)
	suite.service = services.NewCommissionService(suite.mockCommissionRepo, suite.mockPersonRepo)
}

func agentPerson(personID string) *domain.Person {
	return &domain.Person{PersonID: personID, Name: "Ana Souza", Role: domain.RoleAgent}
}

func commissionInStatus(commissionID string, status domain.CommissionStatus) *domain.Commission {
	now := time.Now().UTC()
	c := &domain.Commission{
		CommissionID:     commissionID,
		PersonID:         uuid.NewString(),
		ContractID:       uuid.NewString(),
		CommissionTypeID: uuid.NewString(),
		Amount:           decimal.NewFromInt(500),
		Status:           status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
	if status == domain.CommissionPaid {
		paidAt := now
		c.PaidAt = &paidAt
	}
	return c
}

func (suite *CommissionServiceTestSuite) TestCreateCommission_Success() {
	ctx := context.Background()
	personID := uuid.NewString()
	req := dto.CreateCommissionRequest{
		PersonID:         personID,
		ContractID:       uuid.NewString(),
		CommissionTypeID: uuid.NewString(),
		Amount:           decimal.NewFromInt(500),
	}

	suite.mockPersonRepo.On("FindPersonByID", ctx, personID).Return(agentPerson(personID), nil).Once()
	suite.mockCommissionRepo.On("SaveCommission", ctx, mock.MatchedBy(func(c domain.Commission) bool {
		return c.Status == domain.CommissionPending && c.PersonID == personID && c.PaidAt == nil
	})).Return(nil).Once()
	suite.mockCommissionRepo.On("FindCommissionByID", ctx, mock.AnythingOfType("string")).
		Return(commissionInStatus(uuid.NewString(), domain.CommissionPending), nil).Once()

	created, err := suite.service.CreateCommission(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.CommissionPending, created.Status)
	suite.mockCommissionRepo.AssertExpectations(suite.T())
	suite.mockPersonRepo.AssertExpectations(suite.T())
}

func (suite *CommissionServiceTestSuite) TestCreateCommission_NonAgentFails() {
	ctx := context.Background()
	personID := uuid.NewString()
	req := dto.CreateCommissionRequest{
		PersonID:         personID,
		ContractID:       uuid.NewString(),
		CommissionTypeID: uuid.NewString(),
		Amount:           decimal.NewFromInt(500),
	}

	owner := &domain.Person{PersonID: personID, Name: "Carlos Lima", Role: domain.RoleOwner}
	suite.mockPersonRepo.On("FindPersonByID", ctx, personID).Return(owner, nil).Once()

	created, err := suite.service.CreateCommission(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.Nil(created)
	var counterpartyErr *apperrors.InvalidCounterpartyError
	suite.Require().ErrorAs(err, &counterpartyErr)
	suite.Equal(personID, counterpartyErr.PersonID)
	suite.Equal("OWNER", counterpartyErr.Role)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCommissionRepo.AssertNotCalled(suite.T(), "SaveCommission", mock.Anything, mock.Anything)
}

func (suite *CommissionServiceTestSuite) TestCreateCommission_PercentageOutOfRangeFails() {
	ctx := context.Background()
	over := decimal.NewFromInt(120)
	req := dto.CreateCommissionRequest{
		PersonID:         uuid.NewString(),
		ContractID:       uuid.NewString(),
		CommissionTypeID: uuid.NewString(),
		Amount:           decimal.NewFromInt(500),
		Percentage:       &over,
	}

	_, err := suite.service.CreateCommission(ctx, req, "user-1")

	suite.Require().Error(err)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Fields, "percentage")
	suite.mockPersonRepo.AssertNotCalled(suite.T(), "FindPersonByID", mock.Anything, mock.Anything)
}

func (suite *CommissionServiceTestSuite) TestApproveCommission_FromPending() {
	ctx := context.Background()
	commissionID := uuid.NewString()

	suite.mockCommissionRepo.On("FindCommissionByID", ctx, commissionID).
		Return(commissionInStatus(commissionID, domain.CommissionPending), nil).Once()
	suite.mockCommissionRepo.On("ApproveCommission", ctx, commissionID, "user-1", mock.AnythingOfType("time.Time")).
		Return(commissionInStatus(commissionID, domain.CommissionApproved), nil).Once()

	approved, err := suite.service.ApproveCommission(ctx, commissionID, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.CommissionApproved, approved.Status)
	suite.mockCommissionRepo.AssertExpectations(suite.T())
}

func (suite *CommissionServiceTestSuite) TestPayCommission_FromApproved() {
	ctx := context.Background()
	commissionID := uuid.NewString()

	suite.mockCommissionRepo.On("FindCommissionByID", ctx, commissionID).
		Return(commissionInStatus(commissionID, domain.CommissionApproved), nil).Once()
	suite.mockCommissionRepo.On("PayCommission", ctx, commissionID,
		mock.MatchedBy(func(paidAt time.Time) bool {
			return time.Since(paidAt) < time.Second
		}), "user-1", mock.AnythingOfType("time.Time")).
		Return(commissionInStatus(commissionID, domain.CommissionPaid), nil).Once()

	paid, err := suite.service.PayCommission(ctx, commissionID, dto.PayCommissionRequest{}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.CommissionPaid, paid.Status)
	suite.Require().NotNil(paid.PaidAt)
	suite.mockCommissionRepo.AssertExpectations(suite.T())
}

func (suite *CommissionServiceTestSuite) TestPayCommission_FromPendingFails() {
	ctx := context.Background()
	commissionID := uuid.NewString()

	suite.mockCommissionRepo.On("FindCommissionByID", ctx, commissionID).
		Return(commissionInStatus(commissionID, domain.CommissionPending), nil).Once()

	_, err := suite.service.PayCommission(ctx, commissionID, dto.PayCommissionRequest{}, "user-1")

	suite.Require().Error(err)
	var transitionErr *apperrors.InvalidTransitionError
	suite.Require().ErrorAs(err, &transitionErr)
	suite.Equal("PENDING", transitionErr.From)
	suite.Equal("PAY", transitionErr.Action)
	suite.mockCommissionRepo.AssertNotCalled(suite.T(), "PayCommission",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CommissionServiceTestSuite) TestCancelCommission_PaidFails() {
	ctx := context.Background()
	commissionID := uuid.NewString()

	suite.mockCommissionRepo.On("FindCommissionByID", ctx, commissionID).
		Return(commissionInStatus(commissionID, domain.CommissionPaid), nil).Once()

	_, err := suite.service.CancelCommission(ctx, commissionID, dto.CancelCommissionRequest{Reason: "duplicate"}, "user-1")

	suite.Require().Error(err)
	var immutableErr *apperrors.ImmutableStateError
	suite.Require().ErrorAs(err, &immutableErr)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *CommissionServiceTestSuite) TestUpdateCommission_PaidFails() {
	ctx := context.Background()
	commissionID := uuid.NewString()
	newAmount := decimal.NewFromInt(750)

	suite.mockCommissionRepo.On("FindCommissionByID", ctx, commissionID).
		Return(commissionInStatus(commissionID, domain.CommissionPaid), nil).Once()

	_, err := suite.service.UpdateCommission(ctx, commissionID, dto.UpdateCommissionRequest{Amount: &newAmount}, "user-1")

	suite.Require().Error(err)
	var immutableErr *apperrors.ImmutableStateError
	suite.Require().ErrorAs(err, &immutableErr)
	suite.mockCommissionRepo.AssertNotCalled(suite.T(), "UpdateCommission", mock.Anything, mock.Anything)
}

func (suite *CommissionServiceTestSuite) TestDeleteCommission_PaidFails() {
	ctx := context.Background()
	commissionID := uuid.NewString()

	suite.mockCommissionRepo.On("FindCommissionByID", ctx, commissionID).
		Return(commissionInStatus(commissionID, domain.CommissionPaid), nil).Once()

	err := suite.service.DeleteCommission(ctx, commissionID)

	suite.Require().Error(err)
	var immutableErr *apperrors.ImmutableStateError
	suite.Require().ErrorAs(err, &immutableErr)
	suite.mockCommissionRepo.AssertNotCalled(suite.T(), "DeleteCommission", mock.Anything, mock.Anything)
}

func TestCommissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommissionServiceTestSuite))
}
