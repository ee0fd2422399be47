package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/imovelhub/imovel_finance/internal/core/domain"
	portsrepo "github.com/imovelhub/imovel_finance/internal/core/ports/repositories"
)

// MockTransactionRepository is a mock type for the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionPaid(ctx context.Context, transactionID string, paidAt time.Time, bankAccountID, paymentTypeID *string, notes string, userID string, now time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, paidAt, bankAccountID, paymentTypeID, notes, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CancelTransaction(ctx context.Context, transactionID string, notes string, userID string, now time.Time) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, notes, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// MockCommissionRepository is a mock type for the CommissionRepository interface
type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) SaveCommission(ctx context.Context, commission domain.Commission) error {
	args := m.Called(ctx, commission)
	return args.Error(0)
}

func (m *MockCommissionRepository) FindCommissionByID(ctx context.Context, commissionID string) (*domain.Commission, error) {
	args := m.Called(ctx, commissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commission), args.Error(1)
}

func (m *MockCommissionRepository) ListCommissions(ctx context.Context, filter portsrepo.CommissionFilter, limit int, nextToken *string) ([]domain.Commission, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var commissions []domain.Commission
	if args.Get(0) != nil {
		commissions = args.Get(0).([]domain.Commission)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return commissions, token, args.Error(2)
}

func (m *MockCommissionRepository) UpdateCommission(ctx context.Context, commission domain.Commission) error {
	args := m.Called(ctx, commission)
	return args.Error(0)
}

func (m *MockCommissionRepository) ApproveCommission(ctx context.Context, commissionID string, userID string, now time.Time) (*domain.Commission, error) {
	args := m.Called(ctx, commissionID, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commission), args.Error(1)
}

func (m *MockCommissionRepository) PayCommission(ctx context.Context, commissionID string, paidAt time.Time, userID string, now time.Time) (*domain.Commission, error) {
	args := m.Called(ctx, commissionID, paidAt, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commission), args.Error(1)
}

func (m *MockCommissionRepository) CancelCommission(ctx context.Context, commissionID string, reason string, userID string, now time.Time) (*domain.Commission, error) {
	args := m.Called(ctx, commissionID, reason, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commission), args.Error(1)
}

func (m *MockCommissionRepository) DeleteCommission(ctx context.Context, commissionID string) error {
	args := m.Called(ctx, commissionID)
	return args.Error(0)
}

// MockBankAccountRepository is a mock type for the BankAccountRepository interface
type MockBankAccountRepository struct {
	mock.Mock
}

func (m *MockBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) ListBankAccounts(ctx context.Context, filter portsrepo.BankAccountFilter, limit, offset int) ([]domain.BankAccount, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) SetDefaultBankAccount(ctx context.Context, bankAccountID, personID, userID string, now time.Time) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID, personID, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) DeleteBankAccount(ctx context.Context, bankAccountID string) error {
	args := m.Called(ctx, bankAccountID)
	return args.Error(0)
}

// MockPersonRepository is a mock type for the PersonRepository interface
type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SumPaidSignedBefore(ctx context.Context, before time.Time, bankAccountID *string) (decimal.Decimal, error) {
	args := m.Called(ctx, before, bankAccountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) ListPaidTransactionsInRange(ctx context.Context, startDate, endDate time.Time, bankAccountID *string) ([]domain.Transaction, error) {
	args := m.Called(ctx, startDate, endDate, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockReportingRepository) GetTransactionSummary(ctx context.Context, dimension domain.ReportDimension, from, to time.Time, filter portsrepo.SummaryFilter) ([]domain.ReportGroup, error) {
	args := m.Called(ctx, dimension, from, to, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReportGroup), args.Error(1)
}

func (m *MockReportingRepository) GetCashflowTotals(ctx context.Context, from, to time.Time) (*portsrepo.CashflowTotals, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.CashflowTotals), args.Error(1)
}
