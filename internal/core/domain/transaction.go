package domain

import (
	"time"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money owed to the business (receivable,
// credit) from money the business owes (payable, debit).
type TransactionType string

const (
	Receivable TransactionType = "RECEIVABLE"
	Payable    TransactionType = "PAYABLE"
)

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t TransactionType) bool {
	return t == Receivable || t == Payable
}

// TransactionStatus is the lifecycle state of a ledger transaction.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionPaid      TransactionStatus = "PAID"
	TransactionCancelled TransactionStatus = "CANCELLED"
)

// ValidTransactionStatus reports whether s is a known transaction status.
func ValidTransactionStatus(s TransactionStatus) bool {
	return s == TransactionPending || s == TransactionPaid || s == TransactionCancelled
}

// IsTerminal reports whether no further transition is permitted from s.
// Financial fields are frozen once a transaction reaches a terminal status.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionPaid || s == TransactionCancelled
}

// TransactionAction is an operation attempted against a transaction's status.
type TransactionAction string

const (
	TxnActionMarkPaid TransactionAction = "MARK_PAID"
	TxnActionCancel   TransactionAction = "CANCEL"
)

// transactionTransitions is the authoritative state machine for transactions:
// current status x action -> next status. Missing entries are invalid.
var transactionTransitions = map[TransactionStatus]map[TransactionAction]TransactionStatus{
	TransactionPending: {
		TxnActionMarkPaid: TransactionPaid,
		TxnActionCancel:   TransactionCancelled,
	},
}

// NextTransactionStatus resolves the status reached by applying action to the
// current status, or an InvalidTransitionError when the table has no entry.
func NextTransactionStatus(transactionID string, current TransactionStatus, action TransactionAction) (TransactionStatus, error) {
	if next, ok := transactionTransitions[current][action]; ok {
		return next, nil
	}
	return current, &apperrors.InvalidTransitionError{
		Entity: "transaction",
		ID:     transactionID,
		From:   string(current),
		Action: string(action),
	}
}

// Transaction is a single receivable or payable entry in the ledger.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Amount        decimal.Decimal   `json:"amount"` // always positive; sign comes from Type
	Category      string            `json:"category"`
	Description   string            `json:"description"`
	Reference     string            `json:"reference"`
	DueDate       time.Time         `json:"dueDate"`
	PaidAt        *time.Time        `json:"paidAt"` // set iff Status == PAID
	Notes         string            `json:"notes"`
	PersonID      *string           `json:"personID"`
	ContractID    *string           `json:"contractID"`
	BankAccountID *string           `json:"bankAccountID"`
	PaymentTypeID *string           `json:"paymentTypeID"`
	AuditFields

	// Related entities, populated on detail reads for display.
	Person      *Person      `json:"person,omitempty"`
	Contract    *Contract    `json:"contract,omitempty"`
	BankAccount *BankAccount `json:"bankAccount,omitempty"`
	PaymentType *PaymentType `json:"paymentType,omitempty"`
}

// SignedAmount applies the cash-trail sign convention: receivable = credit
// (+), payable = debit (-).
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Payable {
		return t.Amount.Neg()
	}
	return t.Amount
}
