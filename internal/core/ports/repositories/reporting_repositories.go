package repositories

import (
	"context"
	"time"

	"github.com/imovelhub/imovel_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryFilter holds pass-through predicates applied before aggregation.
type SummaryFilter struct {
	Status        *domain.TransactionStatus
	Type          *domain.TransactionType
	Category      *string
	PersonID      *string
	ContractID    *string
	BankAccountID *string
}

// CashflowTotals are the paid/pending sums per transaction type for a range.
type CashflowTotals struct {
	ReceivablePaid    decimal.Decimal
	ReceivablePending decimal.Decimal
	PayablePaid       decimal.Decimal
	PayablePending    decimal.Decimal
}

// ReportingRepository is a read-only consumer of the transaction store used
// by the statement and aggregation engines.
type ReportingRepository interface {
	// SumPaidSignedBefore returns the signed sum (+receivable, -payable) of
	// all paid transactions with due_date strictly before the given date,
	// optionally filtered by bank account.
	SumPaidSignedBefore(ctx context.Context, before time.Time, bankAccountID *string) (decimal.Decimal, error)
	// ListPaidTransactionsInRange returns paid transactions with
	// startDate <= due_date <= endDate ordered by (due_date, created_at,
	// transaction_id) for deterministic running balances.
	ListPaidTransactionsInRange(ctx context.Context, startDate, endDate time.Time, bankAccountID *string) ([]domain.Transaction, error)
	// GetTransactionSummary returns grouped counts and sums for the given
	// dimension, ordered by group key.
	GetTransactionSummary(ctx context.Context, dimension domain.ReportDimension, from, to time.Time, filter SummaryFilter) ([]domain.ReportGroup, error)
	// GetCashflowTotals returns paid vs pending subtotals per type.
	GetCashflowTotals(ctx context.Context, from, to time.Time) (*CashflowTotals, error)
}
