package dto

import (
	"time"

	"github.com/imovelhub/imovel_finance/internal/core/domain"
)

// CreateBankAccountRequest defines the data needed to register an account.
// The validate tags repeat the binding rules for callers that bypass gin.
type CreateBankAccountRequest struct {
	BankID      string                 `json:"bankID" binding:"required" validate:"required"`
	PersonID    *string                `json:"personID"`
	Branch      string                 `json:"branch" binding:"required" validate:"required"`
	Account     string                 `json:"account" binding:"required" validate:"required"`
	AccountType domain.BankAccountType `json:"accountType" binding:"required,oneof=CORRENTE POUPANCA SALARIO INVESTIMENTO" validate:"required,oneof=CORRENTE POUPANCA SALARIO INVESTIMENTO"`
	IsDefault   bool                   `json:"isDefault"`
}

// UpdateBankAccountRequest defines the fields allowed when editing an
// account. Turning IsDefault on clears the person's previous default.
type UpdateBankAccountRequest struct {
	BankID      *string                 `json:"bankID"`
	Branch      *string                 `json:"branch"`
	Account     *string                 `json:"account"`
	AccountType *domain.BankAccountType `json:"accountType" binding:"omitempty,oneof=CORRENTE POUPANCA SALARIO INVESTIMENTO"`
	IsDefault   *bool                   `json:"isDefault"`
}

// ListBankAccountsParams defines query parameters for listing accounts.
type ListBankAccountsParams struct {
	Limit    int     `form:"limit,default=20"`
	Offset   int     `form:"offset,default=0"`
	PersonID *string `form:"personID"`
	BankID   *string `form:"bankID"`
}

// BankAccountResponse mirrors domain.BankAccount for API consumers.
type BankAccountResponse struct {
	BankAccountID string     `json:"bankAccountID"`
	BankID        string     `json:"bankID"`
	PersonID      *string    `json:"personID"`
	Branch        string     `json:"branch"`
	Account       string     `json:"account"`
	AccountType   string     `json:"accountType"`
	IsDefault     bool       `json:"isDefault"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastUpdatedAt time.Time  `json:"lastUpdatedAt"`

	Bank   *BankResponse   `json:"bank,omitempty"`
	Person *PersonResponse `json:"person,omitempty"`
}

// ToBankAccountResponse converts a domain BankAccount to its response DTO.
func ToBankAccountResponse(a *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID: a.BankAccountID,
		BankID:        a.BankID,
		PersonID:      a.PersonID,
		Branch:        a.Branch,
		Account:       a.Account,
		AccountType:   string(a.AccountType),
		IsDefault:     a.IsDefault,
		CreatedAt:     a.CreatedAt,
		LastUpdatedAt: a.LastUpdatedAt,
		Bank:          toBankResponse(a.Bank),
		Person:        toPersonResponse(a.Person),
	}
}

// ToBankAccountResponses converts a slice of domain BankAccounts.
func ToBankAccountResponses(as []domain.BankAccount) []BankAccountResponse {
	res := make([]BankAccountResponse, len(as))
	for i := range as {
		res[i] = ToBankAccountResponse(&as[i])
	}
	return res
}
