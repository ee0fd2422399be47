package dto

import (
	"time"

	"github.com/imovelhub/imovel_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a transaction.
// Unknown extra fields in the payload are ignored by binding. The validate
// tags repeat the binding rules so callers that bypass gin get the same
// checks from the service layer.
type CreateTransactionRequest struct {
	Type          domain.TransactionType   `json:"type" binding:"required,oneof=RECEIVABLE PAYABLE" validate:"required,oneof=RECEIVABLE PAYABLE"`
	Status        domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING PAID" validate:"omitempty,oneof=PENDING PAID"`
	Amount        decimal.Decimal          `json:"amount" binding:"required" validate:"required"`
	Category      string                   `json:"category" binding:"required" validate:"required"`
	Description   string                   `json:"description"`
	Reference     string                   `json:"reference"`
	DueDate       time.Time                `json:"dueDate" binding:"required" validate:"required"`
	PaidAt        *time.Time               `json:"paidAt"`
	Notes         string                   `json:"notes"`
	PersonID      *string                  `json:"personID"`
	ContractID    *string                  `json:"contractID"`
	BankAccountID *string                  `json:"bankAccountID"`
	PaymentTypeID *string                  `json:"paymentTypeID"`
}

// UpdateTransactionRequest defines the fields allowed when editing a pending
// transaction. Pointers distinguish omitted fields from zero values.
// Notes are appended, never replaced.
type UpdateTransactionRequest struct {
	Type          *domain.TransactionType `json:"type" binding:"omitempty,oneof=RECEIVABLE PAYABLE"`
	Amount        *decimal.Decimal        `json:"amount"`
	Category      *string                 `json:"category"`
	Description   *string                 `json:"description"`
	Reference     *string                 `json:"reference"`
	DueDate       *time.Time              `json:"dueDate"`
	Notes         *string                 `json:"notes"`
	PersonID      *string                 `json:"personID"`
	ContractID    *string                 `json:"contractID"`
	BankAccountID *string                 `json:"bankAccountID"`
	PaymentTypeID *string                 `json:"paymentTypeID"`
}

// MarkTransactionPaidRequest settles a pending transaction. PaidAt defaults
// to the call time when omitted.
type MarkTransactionPaidRequest struct {
	PaidAt        *time.Time `json:"paidAt"`
	BankAccountID *string    `json:"bankAccountID"`
	PaymentTypeID *string    `json:"paymentTypeID"`
	Notes         string     `json:"notes"`
}

// CancelTransactionRequest cancels a pending transaction.
type CancelTransactionRequest struct {
	Notes string `json:"notes"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit         int        `form:"limit,default=20"`
	NextToken     *string    `form:"nextToken"`
	Status        *string    `form:"status"`
	Type          *string    `form:"type"`
	Category      *string    `form:"category"`
	PersonID      *string    `form:"personID"`
	ContractID    *string    `form:"contractID"`
	BankAccountID *string    `form:"bankAccountID"`
	DueFrom       *time.Time `form:"dueFrom" time_format:"2006-01-02"`
	DueTo         *time.Time `form:"dueTo" time_format:"2006-01-02"`
}

// TransactionResponse mirrors domain.Transaction for API consumers, with
// related entities denormalized for display.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Reference     string          `json:"reference"`
	DueDate       time.Time       `json:"dueDate"`
	PaidAt        *time.Time      `json:"paidAt"`
	Notes         string          `json:"notes"`
	PersonID      *string         `json:"personID"`
	ContractID    *string         `json:"contractID"`
	BankAccountID *string         `json:"bankAccountID"`
	PaymentTypeID *string         `json:"paymentTypeID"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`

	Person      *PersonResponse      `json:"person,omitempty"`
	Contract    *ContractResponse    `json:"contract,omitempty"`
	BankAccount *BankAccountResponse `json:"bankAccount,omitempty"`
	PaymentType *PaymentTypeResponse `json:"paymentType,omitempty"`
}

// ListTransactionsResponse is a page of transactions plus the next token.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID: t.TransactionID,
		Type:          string(t.Type),
		Status:        string(t.Status),
		Amount:        t.Amount,
		Category:      t.Category,
		Description:   t.Description,
		Reference:     t.Reference,
		DueDate:       t.DueDate,
		PaidAt:        t.PaidAt,
		Notes:         t.Notes,
		PersonID:      t.PersonID,
		ContractID:    t.ContractID,
		BankAccountID: t.BankAccountID,
		PaymentTypeID: t.PaymentTypeID,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
		Person:        toPersonResponse(t.Person),
		Contract:      toContractResponse(t.Contract),
		PaymentType:   toPaymentTypeResponse(t.PaymentType),
	}
	if t.BankAccount != nil {
		ba := ToBankAccountResponse(t.BankAccount)
		resp.BankAccount = &ba
	}
	return resp
}

// ToTransactionResponses converts a slice of domain Transactions.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(ts))
	for i := range ts {
		res[i] = ToTransactionResponse(&ts[i])
	}
	return res
}
