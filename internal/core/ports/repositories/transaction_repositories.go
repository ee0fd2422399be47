package repositories

import (
	"context"
	"time"

	"github.com/imovelhub/imovel_finance/internal/core/domain"
)

// TransactionFilter narrows transaction listings. Nil fields are ignored.
type TransactionFilter struct {
	Status        *domain.TransactionStatus
	Type          *domain.TransactionType
	Category      *string
	PersonID      *string
	ContractID    *string
	BankAccountID *string
	DueFrom       *time.Time
	DueTo         *time.Time
}

// TransactionRepository owns the transactions table. Status transitions run
// as a locked read-check-write inside a single database transaction.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	// FindTransactionByID returns the transaction with related person,
	// contract, bank account and payment type embedded when present.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, filter TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
	// UpdateTransaction persists edits to a non-terminal transaction. The
	// terminal check is re-applied under a row lock.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	// MarkTransactionPaid applies PENDING -> PAID under SELECT ... FOR UPDATE,
	// setting paid_at and optionally attaching bank account and payment type.
	// Notes are appended, never overwritten.
	MarkTransactionPaid(ctx context.Context, transactionID string, paidAt time.Time, bankAccountID, paymentTypeID *string, notes string, userID string, now time.Time) (*domain.Transaction, error)
	// CancelTransaction applies PENDING -> CANCELLED under a row lock.
	CancelTransaction(ctx context.Context, transactionID string, notes string, userID string, now time.Time) (*domain.Transaction, error)
	// DeleteTransaction removes the row unless its status is PAID.
	DeleteTransaction(ctx context.Context, transactionID string) error
}
