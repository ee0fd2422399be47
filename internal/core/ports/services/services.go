package services

import (
	"context"

	"github.com/imovelhub/imovel_finance/internal/core/domain"
	"github.com/imovelhub/imovel_finance/internal/dto"
)

// TransactionSvcFacade exposes the transaction ledger operations.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)
	MarkTransactionPaid(ctx context.Context, transactionID string, req dto.MarkTransactionPaidRequest, userID string) (*domain.Transaction, error)
	CancelTransaction(ctx context.Context, transactionID string, req dto.CancelTransactionRequest, userID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// CommissionSvcFacade exposes the commission ledger operations.
type CommissionSvcFacade interface {
	CreateCommission(ctx context.Context, req dto.CreateCommissionRequest, creatorUserID string) (*domain.Commission, error)
	GetCommissionByID(ctx context.Context, commissionID string) (*domain.Commission, error)
	ListCommissions(ctx context.Context, params dto.ListCommissionsParams) (*dto.ListCommissionsResponse, error)
	UpdateCommission(ctx context.Context, commissionID string, req dto.UpdateCommissionRequest, userID string) (*domain.Commission, error)
	ApproveCommission(ctx context.Context, commissionID string, userID string) (*domain.Commission, error)
	PayCommission(ctx context.Context, commissionID string, req dto.PayCommissionRequest, userID string) (*domain.Commission, error)
	CancelCommission(ctx context.Context, commissionID string, req dto.CancelCommissionRequest, userID string) (*domain.Commission, error)
	DeleteCommission(ctx context.Context, commissionID string) error
}

// BankAccountSvcFacade exposes the bank account registry operations.
type BankAccountSvcFacade interface {
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, creatorUserID string) (*domain.BankAccount, error)
	GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, params dto.ListBankAccountsParams) ([]domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, bankAccountID string, req dto.UpdateBankAccountRequest, userID string) (*domain.BankAccount, error)
	SetDefaultBankAccount(ctx context.Context, bankAccountID string, userID string) (*domain.BankAccount, error)
	DeleteBankAccount(ctx context.Context, bankAccountID string) error
}

// StatementSvcFacade exposes the statement reconciliation engine.
type StatementSvcFacade interface {
	Statement(ctx context.Context, params dto.StatementParams) (*domain.Statement, error)
}

// ReportingSvcFacade exposes the aggregation engine.
type ReportingSvcFacade interface {
	TransactionSummary(ctx context.Context, params dto.SummaryParams) (*domain.SummaryReport, error)
	CashflowSummary(ctx context.Context, params dto.CashflowParams) (*domain.CashflowSummary, error)
}

// ServiceContainer bundles every service facade for handler registration.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Commission  CommissionSvcFacade
	BankAccount BankAccountSvcFacade
	Statement   StatementSvcFacade
	Reporting   ReportingSvcFacade
}
