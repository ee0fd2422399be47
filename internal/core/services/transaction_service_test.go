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
	"github.com/imovelhub/imovel_finance/internal/core/services"
	portssvc "github.com/imovelhub/imovel_finance/internal/core/ports/services"
	"github.com/imovelhub/imovel_finance/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo         *MockTransactionRepository
	mockPersonRepo      *MockPersonRepository
	mockBankAccountRepo *MockBankAccountRepository
	service             portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockPersonRepo = new(MockPersonRepository)
	suite.mockBankAccountRepo = new(MockBankAccountRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockPersonRepo, suite.mockBankAccountRepo)
}

func pendingTransaction(transactionID string) *domain.Transaction {
	now := time.Now().UTC()
	return &domain.Transaction{
		TransactionID: transactionID,
		Type:          domain.Receivable,
		Status:        domain.TransactionPending,
		Amount:        decimal.NewFromInt(1500),
		Category:      "rent",
		DueDate:       now.AddDate(0, 0, 7),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Type:     domain.Receivable,
		Amount:   decimal.NewFromInt(1500),
		Category: "rent",
		DueDate:  time.Now().UTC().AddDate(0, 0, 7),
	}

	var savedID string
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			saved := args.Get(1).(domain.Transaction)
			savedID = saved.TransactionID
			suite.Equal(domain.TransactionPending, saved.Status)
			suite.Nil(saved.PaidAt)
			suite.Equal(creatorUserID, saved.CreatedBy)
		}).Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, mock.AnythingOfType("string")).
		Return(pendingTransaction(uuid.NewString()), nil).Once()

	created, err := suite.service.CreateTransaction(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(savedID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_PaidDefaultsPaidAt() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:     domain.Payable,
		Status:   domain.TransactionPaid,
		Amount:   decimal.NewFromInt(300),
		Category: "maintenance",
		DueDate:  time.Now().UTC(),
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			saved := args.Get(1).(domain.Transaction)
			suite.Equal(domain.TransactionPaid, saved.Status)
			suite.Require().NotNil(saved.PaidAt)
			suite.WithinDuration(time.Now().UTC(), *saved.PaidAt, time.Second)
		}).Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, mock.AnythingOfType("string")).
		Return(pendingTransaction(uuid.NewString()), nil).Once()

	_, err := suite.service.CreateTransaction(ctx, req, "system")

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_PendingWithPaidAtFails() {
	ctx := context.Background()
	paidAt := time.Now().UTC()
	req := dto.CreateTransactionRequest{
		Type:     domain.Receivable,
		Status:   domain.TransactionPending,
		Amount:   decimal.NewFromInt(100),
		Category: "rent",
		DueDate:  time.Now().UTC(),
		PaidAt:   &paidAt,
	}

	created, err := suite.service.CreateTransaction(ctx, req, "system")

	suite.Require().Error(err)
	suite.Nil(created)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Fields, "paidAt")
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmountFails() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:     domain.Receivable,
		Amount:   decimal.Zero,
		Category: "rent",
		DueDate:  time.Now().UTC(),
	}

	_, err := suite.service.CreateTransaction(ctx, req, "system")

	suite.Require().Error(err)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Fields, "amount")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestMarkTransactionPaid_DefaultsPaidAtToNow() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	txn := pendingTransaction(transactionID)

	paidTxn := pendingTransaction(transactionID)
	paidTxn.Status = domain.TransactionPaid

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("MarkTransactionPaid", ctx, transactionID,
		mock.MatchedBy(func(paidAt time.Time) bool {
			return time.Since(paidAt) < time.Second
		}),
		(*string)(nil), (*string)(nil), "", "user-1", mock.AnythingOfType("time.Time")).
		Return(paidTxn, nil).Once()

	result, err := suite.service.MarkTransactionPaid(ctx, transactionID, dto.MarkTransactionPaidRequest{}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionPaid, result.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestMarkTransactionPaid_BackdatedPaidAt() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	txn := pendingTransaction(transactionID)
	backdated := time.Now().UTC().AddDate(0, 0, -10)

	paidTxn := pendingTransaction(transactionID)
	paidTxn.Status = domain.TransactionPaid
	paidTxn.PaidAt = &backdated

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("MarkTransactionPaid", ctx, transactionID, backdated,
		(*string)(nil), (*string)(nil), "", "user-1", mock.AnythingOfType("time.Time")).
		Return(paidTxn, nil).Once()

	result, err := suite.service.MarkTransactionPaid(ctx, transactionID, dto.MarkTransactionPaidRequest{PaidAt: &backdated}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(&backdated, result.PaidAt)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestMarkTransactionPaid_AlreadyPaidFails() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	txn := pendingTransaction(transactionID)
	txn.Status = domain.TransactionPaid

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(txn, nil).Once()

	_, err := suite.service.MarkTransactionPaid(ctx, transactionID, dto.MarkTransactionPaidRequest{}, "user-1")

	suite.Require().Error(err)
	var transitionErr *apperrors.InvalidTransitionError
	suite.Require().ErrorAs(err, &transitionErr)
	suite.Equal("PAID", transitionErr.From)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "MarkTransactionPaid",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCancelTransaction_CancelledFails() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	txn := pendingTransaction(transactionID)
	txn.Status = domain.TransactionCancelled

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(txn, nil).Once()

	_, err := suite.service.CancelTransaction(ctx, transactionID, dto.CancelTransactionRequest{}, "user-1")

	suite.Require().Error(err)
	var transitionErr *apperrors.InvalidTransitionError
	suite.Require().ErrorAs(err, &transitionErr)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_TerminalFinancialEditFails() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	txn := pendingTransaction(transactionID)
	txn.Status = domain.TransactionPaid

	newAmount := decimal.NewFromInt(999)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(txn, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, transactionID, dto.UpdateTransactionRequest{Amount: &newAmount}, "user-1")

	suite.Require().Error(err)
	var immutableErr *apperrors.ImmutableStateError
	suite.Require().ErrorAs(err, &immutableErr)
	suite.Equal("PAID", immutableErr.Status)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_TerminalNotesAppendAllowed() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	txn := pendingTransaction(transactionID)
	txn.Status = domain.TransactionPaid
	txn.Notes = "settled by bank"

	notes := "reconciled against statement"

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(txn, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(updated domain.Transaction) bool {
		return updated.Notes == "settled by bank | reconciled against statement"
	})).Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(txn, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, transactionID, dto.UpdateTransactionRequest{Notes: &notes}, "user-1")

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_PaidFails() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	txn := pendingTransaction(transactionID)
	txn.Status = domain.TransactionPaid

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(txn, nil).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID)

	suite.Require().Error(err)
	var immutableErr *apperrors.ImmutableStateError
	suite.Require().ErrorAs(err, &immutableErr)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvalidStatusFails() {
	ctx := context.Background()
	bad := "SETTLED"

	_, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Status: &bad})

	suite.Require().Error(err)
	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Fields, "status")
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
