package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

const (
	Receivable TransactionType = "RECEIVABLE"
	Payable    TransactionType = "PAYABLE"
)

// TransactionStatus mirrors domain.TransactionStatus at the storage layer.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionPaid      TransactionStatus = "PAID"
	TransactionCancelled TransactionStatus = "CANCELLED"
)

// Transaction is the transactions table row. Foreign keys to people,
// contracts, bank accounts and payment types are consumed, not owned.
type Transaction struct {
	TransactionID string            `db:"transaction_id"`
	Type          TransactionType   `db:"type"`
	Status        TransactionStatus `db:"status"`
	Amount        decimal.Decimal   `db:"amount"`
	Category      string            `db:"category"`
	Description   string            `db:"description"`
	Reference     string            `db:"reference"`
	DueDate       time.Time         `db:"due_date"`
	PaidAt        *time.Time        `db:"paid_at"`
	Notes         string            `db:"notes"`
	PersonID      *string           `db:"person_id"`
	ContractID    *string           `db:"contract_id"`
	BankAccountID *string           `db:"bank_account_id"`
	PaymentTypeID *string           `db:"payment_type_id"`
	AuditFields
}
