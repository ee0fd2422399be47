package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
	"github.com/imovelhub/imovel_finance/internal/core/domain"
	portsrepo "github.com/imovelhub/imovel_finance/internal/core/ports/repositories"
	portssvc "github.com/imovelhub/imovel_finance/internal/core/ports/services"
	"github.com/imovelhub/imovel_finance/internal/dto"
)

// statementService computes the reconciled cash trail for a bank account or
// the whole ledger over a date window.
type statementService struct {
	BaseService
	reportingRepo   portsrepo.ReportingRepository
	bankAccountRepo portsrepo.BankAccountRepository
}

// NewStatementService creates a new StatementService.
func NewStatementService(reportingRepo portsrepo.ReportingRepository, bankAccountRepo portsrepo.BankAccountRepository) portssvc.StatementSvcFacade {
	return &statementService{
		reportingRepo:   reportingRepo,
		bankAccountRepo: bankAccountRepo,
	}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// Statement reconciles paid transactions into a date-ordered cash trail.
// The opening balance sums everything paid before the window; each in-range
// row carries the cumulative balance after applying it.
func (s *statementService) Statement(ctx context.Context, params dto.StatementParams) (*domain.Statement, error) {
	if params.EndDate.Before(params.StartDate) {
		return nil, &apperrors.InvalidRangeError{
			Start: params.StartDate.Format("2006-01-02"),
			End:   params.EndDate.Format("2006-01-02"),
		}
	}

	if params.BankAccountID != nil {
		if _, err := s.bankAccountRepo.FindBankAccountByID(ctx, *params.BankAccountID); err != nil {
			return nil, fmt.Errorf("bank account %s: %w", *params.BankAccountID, err)
		}
	}

	openingBalance, err := s.reportingRepo.SumPaidSignedBefore(ctx, params.StartDate, params.BankAccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute opening balance")
		return nil, fmt.Errorf("failed to compute opening balance: %w", err)
	}

	txns, err := s.reportingRepo.ListPaidTransactionsInRange(ctx, params.StartDate, params.EndDate, params.BankAccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list statement transactions")
		return nil, fmt.Errorf("failed to list statement transactions: %w", err)
	}

	runningBalance := openingBalance
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	lines := make([]domain.StatementLine, len(txns))
	for i, txn := range txns {
		if txn.Type == domain.Receivable {
			totalIncome = totalIncome.Add(txn.Amount)
		} else {
			totalExpense = totalExpense.Add(txn.Amount)
		}
		runningBalance = runningBalance.Add(txn.SignedAmount())
		lines[i] = domain.StatementLine{
			Transaction:    txn,
			RunningBalance: runningBalance,
		}
	}

	statement := &domain.Statement{
		StartDate:      params.StartDate,
		EndDate:        params.EndDate,
		BankAccountID:  params.BankAccountID,
		OpeningBalance: openingBalance,
		ClosingBalance: runningBalance,
		TotalIncome:    totalIncome,
		TotalExpense:   totalExpense,
		Lines:          lines,
	}

	s.LogInfo(ctx, "Statement generated",
		slog.String("start", params.StartDate.Format(time.DateOnly)),
		slog.String("end", params.EndDate.Format(time.DateOnly)),
		slog.Int("line_count", len(lines)),
		slog.String("closing_balance", statement.ClosingBalance.String()))
	return statement, nil
}
