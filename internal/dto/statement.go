package dto

import (
	"time"

	"github.com/imovelhub/imovel_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementParams defines the query window for a bank statement.
type StatementParams struct {
	StartDate     time.Time `form:"startDate" binding:"required" time_format:"2006-01-02"`
	EndDate       time.Time `form:"endDate" binding:"required" time_format:"2006-01-02"`
	BankAccountID *string   `form:"bankAccountID"`
}

// StatementLineResponse is a paid transaction with its running balance.
type StatementLineResponse struct {
	TransactionResponse
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// StatementResponse is the reconciled cash trail for the requested window.
type StatementResponse struct {
	StartDate      time.Time               `json:"startDate"`
	EndDate        time.Time               `json:"endDate"`
	BankAccountID  *string                 `json:"bankAccountID,omitempty"`
	OpeningBalance decimal.Decimal         `json:"openingBalance"`
	ClosingBalance decimal.Decimal         `json:"closingBalance"`
	TotalIncome    decimal.Decimal         `json:"totalIncome"`
	TotalExpense   decimal.Decimal         `json:"totalExpense"`
	Transactions   []StatementLineResponse `json:"transactions"`
}

// ToStatementResponse converts a domain Statement to its response DTO.
func ToStatementResponse(s *domain.Statement) StatementResponse {
	lines := make([]StatementLineResponse, len(s.Lines))
	for i := range s.Lines {
		lines[i] = StatementLineResponse{
			TransactionResponse: ToTransactionResponse(&s.Lines[i].Transaction),
			RunningBalance:      s.Lines[i].RunningBalance,
		}
	}
	return StatementResponse{
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		BankAccountID:  s.BankAccountID,
		OpeningBalance: s.OpeningBalance,
		ClosingBalance: s.ClosingBalance,
		TotalIncome:    s.TotalIncome,
		TotalExpense:   s.TotalExpense,
		Transactions:   lines,
	}
}
