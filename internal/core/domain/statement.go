package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is a paid transaction annotated with the cumulative balance
// after applying it. The running balance is derived, never persisted.
type StatementLine struct {
	Transaction
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// Statement is the reconciled cash trail for a bank account (or the whole
// ledger) over a date window.
type Statement struct {
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	BankAccountID  *string         `json:"bankAccountID,omitempty"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	Lines          []StatementLine `json:"transactions"`
}
