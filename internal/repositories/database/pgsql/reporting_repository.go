package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
	"github.com/imovelhub/imovel_finance/internal/core/domain"
	portsrepo "github.com/imovelhub/imovel_finance/internal/core/ports/repositories"
	"github.com/imovelhub/imovel_finance/internal/models"
	"github.com/imovelhub/imovel_finance/internal/utils/mapping"
)

// PgxReportingRepository serves the read-only statement and aggregation
// queries. All signed sums use CASE over the type column so receivables add
// and payables subtract.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// SumPaidSignedBefore returns the signed sum of all paid transactions with
// due_date strictly before the given date.
func (r *PgxReportingRepository) SumPaidSignedBefore(ctx context.Context, before time.Time, bankAccountID *string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'RECEIVABLE' THEN amount ELSE -amount END), 0)
		FROM transactions
		WHERE status = 'PAID' AND due_date < $1
	`
	args := []any{before}
	if bankAccountID != nil {
		args = append(args, *bankAccountID)
		query += " AND bank_account_id = $2"
	}
	query += ";"

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to sum paid transactions before %s: %v", apperrors.ErrInternal, before.Format(time.DateOnly), err)
	}
	return sum, nil
}

// ListPaidTransactionsInRange returns paid transactions inside the window in
// the deterministic statement order.
func (r *PgxReportingRepository) ListPaidTransactionsInRange(ctx context.Context, startDate, endDate time.Time, bankAccountID *string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE status = 'PAID' AND due_date >= $1 AND due_date <= $2
	`
	args := []any{startDate, endDate}
	if bankAccountID != nil {
		args = append(args, *bankAccountID)
		query += " AND bank_account_id = $3"
	}
	query += " ORDER BY due_date ASC, created_at ASC, transaction_id ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list paid transactions: %v", apperrors.ErrInternal, err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID, &m.Type, &m.Status, &m.Amount, &m.Category, &m.Description, &m.Reference,
			&m.DueDate, &m.PaidAt, &m.Notes, &m.PersonID, &m.ContractID, &m.BankAccountID, &m.PaymentTypeID,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan transaction row: %v", apperrors.ErrInternal, err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate transaction rows: %v", apperrors.ErrInternal, err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}

// groupKeyExpr maps a report dimension to its SQL grouping expression.
// property_type lives on the contract, so that dimension joins through;
// rows without the attribute fall into an empty-string bucket.
func groupKeyExpr(dimension domain.ReportDimension) (expr string, joinContracts bool) {
	switch dimension {
	case domain.DimensionCategory:
		return "COALESCE(t.category, '')", false
	case domain.DimensionPerson:
		return "COALESCE(t.person_id, '')", false
	case domain.DimensionPropertyType:
		return "COALESCE(c.property_type, '')", true
	case domain.DimensionStatus:
		return "t.status", false
	case domain.DimensionMonth:
		return "to_char(t.due_date, 'YYYY-MM')", false
	default:
		return "", false
	}
}

// GetTransactionSummary returns grouped counts and sums for the dimension,
// ordered by group key.
func (r *PgxReportingRepository) GetTransactionSummary(ctx context.Context, dimension domain.ReportDimension, from, to time.Time, filter portsrepo.SummaryFilter) ([]domain.ReportGroup, error) {
	keyExpr, joinContracts := groupKeyExpr(dimension)
	if keyExpr == "" {
		return nil, fmt.Errorf("%w: unknown report dimension %q", apperrors.ErrValidation, dimension)
	}

	args := []any{from, to}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	query := "SELECT " + keyExpr + " AS group_key, COUNT(*), COALESCE(SUM(t.amount), 0) FROM transactions t"
	if joinContracts {
		query += " LEFT JOIN contracts c ON c.contract_id = t.contract_id"
	}
	query += " WHERE t.due_date >= $1 AND t.due_date <= $2"

	if filter.Status != nil {
		query += " AND t.status = " + arg(string(*filter.Status))
	}
	if filter.Type != nil {
		query += " AND t.type = " + arg(string(*filter.Type))
	}
	if filter.Category != nil {
		query += " AND t.category = " + arg(*filter.Category)
	}
	if filter.PersonID != nil {
		query += " AND t.person_id = " + arg(*filter.PersonID)
	}
	if filter.ContractID != nil {
		query += " AND t.contract_id = " + arg(*filter.ContractID)
	}
	if filter.BankAccountID != nil {
		query += " AND t.bank_account_id = " + arg(*filter.BankAccountID)
	}

	query += " GROUP BY group_key ORDER BY group_key;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to run summary query: %v", apperrors.ErrInternal, err)
	}
	defer rows.Close()

	var groups []domain.ReportGroup
	for rows.Next() {
		var g domain.ReportGroup
		if err := rows.Scan(&g.Key, &g.Count, &g.TotalAmount); err != nil {
			return nil, fmt.Errorf("%w: failed to scan summary row: %v", apperrors.ErrInternal, err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate summary rows: %v", apperrors.ErrInternal, err)
	}

	return groups, nil
}

// GetCashflowTotals returns paid vs pending subtotals per transaction type
// for the window, computed in one pass.
func (r *PgxReportingRepository) GetCashflowTotals(ctx context.Context, from, to time.Time) (*portsrepo.CashflowTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'RECEIVABLE' AND status = 'PAID'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'RECEIVABLE' AND status = 'PENDING'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'PAYABLE' AND status = 'PAID'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'PAYABLE' AND status = 'PENDING'), 0)
		FROM transactions
		WHERE due_date >= $1 AND due_date <= $2;
	`

	var totals portsrepo.CashflowTotals
	err := r.Pool.QueryRow(ctx, query, from, to).Scan(
		&totals.ReceivablePaid, &totals.ReceivablePending,
		&totals.PayablePaid, &totals.PayablePending,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute cashflow totals: %v", apperrors.ErrInternal, err)
	}
	return &totals, nil
}
