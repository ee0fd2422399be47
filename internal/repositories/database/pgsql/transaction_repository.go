package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
	"github.com/imovelhub/imovel_finance/internal/core/domain"
	portsrepo "github.com/imovelhub/imovel_finance/internal/core/ports/repositories"
	"github.com/imovelhub/imovel_finance/internal/models"
	"github.com/imovelhub/imovel_finance/internal/utils/mapping"
	"github.com/imovelhub/imovel_finance/internal/utils/pagination"
)

const transactionColumns = `transaction_id, type, status, amount, category, description, reference,
	due_date, paid_at, notes, person_id, contract_id, bank_account_id, payment_type_id,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxTransactionRepository persists transactions in PostgreSQL.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a new transaction row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.Type, m.Status, m.Amount, m.Category, m.Description, m.Reference,
		m.DueDate, m.PaidAt, m.Notes, m.PersonID, m.ContractID, m.BankAccountID, m.PaymentTypeID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert transaction %s: %v", apperrors.ErrInternal, m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID returns the transaction with related person, contract,
// bank account and payment type embedded when present.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT t.transaction_id, t.type, t.status, t.amount, t.category, t.description, t.reference,
		       t.due_date, t.paid_at, t.notes, t.person_id, t.contract_id, t.bank_account_id, t.payment_type_id,
		       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by,
		       p.name, p.role,
		       c.reference, c.property_type,
		       ba.bank_id, ba.branch, ba.account, ba.account_type, ba.is_default,
		       pt.name
		FROM transactions t
		LEFT JOIN people p ON p.person_id = t.person_id
		LEFT JOIN contracts c ON c.contract_id = t.contract_id
		LEFT JOIN bank_accounts ba ON ba.bank_account_id = t.bank_account_id
		LEFT JOIN payment_types pt ON pt.payment_type_id = t.payment_type_id
		WHERE t.transaction_id = $1;
	`

	var m models.Transaction
	var personName, personRole sql.NullString
	var contractRef, contractPropertyType sql.NullString
	var baBankID, baBranch, baAccount, baAccountType sql.NullString
	var baIsDefault sql.NullBool
	var paymentTypeName sql.NullString

	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID, &m.Type, &m.Status, &m.Amount, &m.Category, &m.Description, &m.Reference,
		&m.DueDate, &m.PaidAt, &m.Notes, &m.PersonID, &m.ContractID, &m.BankAccountID, &m.PaymentTypeID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&personName, &personRole,
		&contractRef, &contractPropertyType,
		&baBankID, &baBranch, &baAccount, &baAccountType, &baIsDefault,
		&paymentTypeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to find transaction %s: %v", apperrors.ErrInternal, transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	if txn.PersonID != nil && personName.Valid {
		txn.Person = &domain.Person{
			PersonID: *txn.PersonID,
			Name:     personName.String,
			Role:     domain.PersonRole(personRole.String),
		}
	}
	if txn.ContractID != nil && contractRef.Valid {
		txn.Contract = &domain.Contract{
			ContractID:   *txn.ContractID,
			Reference:    contractRef.String,
			PropertyType: contractPropertyType.String,
		}
	}
	if txn.BankAccountID != nil && baBankID.Valid {
		txn.BankAccount = &domain.BankAccount{
			BankAccountID: *txn.BankAccountID,
			BankID:        baBankID.String,
			Branch:        baBranch.String,
			Account:       baAccount.String,
			AccountType:   domain.BankAccountType(baAccountType.String),
			IsDefault:     baIsDefault.Bool,
		}
	}
	if txn.PaymentTypeID != nil && paymentTypeName.Valid {
		txn.PaymentType = &domain.PaymentType{
			PaymentTypeID: *txn.PaymentTypeID,
			Name:          paymentTypeName.String,
		}
	}
	return &txn, nil
}

// buildTransactionWhere appends filter predicates and returns the clause and
// its arguments, starting numbering from the given placeholder index.
func buildTransactionWhere(filter portsrepo.TransactionFilter, startArg int) (string, []any) {
	var clauses []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(startArg+len(args)-1)
	}

	if filter.Status != nil {
		clauses = append(clauses, "status = "+arg(string(*filter.Status)))
	}
	if filter.Type != nil {
		clauses = append(clauses, "type = "+arg(string(*filter.Type)))
	}
	if filter.Category != nil {
		clauses = append(clauses, "category = "+arg(*filter.Category))
	}
	if filter.PersonID != nil {
		clauses = append(clauses, "person_id = "+arg(*filter.PersonID))
	}
	if filter.ContractID != nil {
		clauses = append(clauses, "contract_id = "+arg(*filter.ContractID))
	}
	if filter.BankAccountID != nil {
		clauses = append(clauses, "bank_account_id = "+arg(*filter.BankAccountID))
	}
	if filter.DueFrom != nil {
		clauses = append(clauses, "due_date >= "+arg(*filter.DueFrom))
	}
	if filter.DueTo != nil {
		clauses = append(clauses, "due_date <= "+arg(*filter.DueTo))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return strings.Join(clauses, " AND "), args
}

// ListTransactions returns a filtered page ordered by due date descending,
// with an opaque token carrying the cursor position.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	where, args := buildTransactionWhere(filter, 1)

	query := "SELECT " + transactionColumns + " FROM transactions"
	var conditions []string
	if where != "" {
		conditions = append(conditions, where)
	}

	if nextToken != nil && *nextToken != "" {
		dueDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		args = append(args, dueDate, createdAt)
		conditions = append(conditions, fmt.Sprintf("(due_date, created_at) < ($%d, $%d)", len(args)-1, len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	// Fetch one extra row to know whether another page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY due_date DESC, created_at DESC, transaction_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to list transactions: %v", apperrors.ErrInternal, err)
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
			return nil, nil, fmt.Errorf("%w: failed to scan transaction row: %v", apperrors.ErrInternal, err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to iterate transaction rows: %v", apperrors.ErrInternal, err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeToken(last.DueDate, last.CreatedAt)
		token = &t
	}
	return mapping.ToDomainTransactionSlice(ms), token, nil
}

// UpdateTransaction persists edits under a row lock. Terminal rows only
// accept note and audit changes; financial columns keep their stored values.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var currentStatus models.TransactionStatus
	err = tx.QueryRow(ctx, `SELECT status FROM transactions WHERE transaction_id = $1 FOR UPDATE;`, txn.TransactionID).Scan(&currentStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("transaction %s: %w", txn.TransactionID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("%w: failed to lock transaction %s: %v", apperrors.ErrInternal, txn.TransactionID, err)
	}

	m := mapping.ToModelTransaction(txn)
	if domain.TransactionStatus(currentStatus).IsTerminal() {
		_, err = tx.Exec(ctx, `
			UPDATE transactions
			SET notes = $2, last_updated_at = $3, last_updated_by = $4
			WHERE transaction_id = $1;
		`, m.TransactionID, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy)
	} else {
		_, err = tx.Exec(ctx, `
			UPDATE transactions
			SET type = $2, amount = $3, category = $4, description = $5, reference = $6,
			    due_date = $7, notes = $8, person_id = $9, contract_id = $10,
			    bank_account_id = $11, payment_type_id = $12,
			    last_updated_at = $13, last_updated_by = $14
			WHERE transaction_id = $1;
		`, m.TransactionID, m.Type, m.Amount, m.Category, m.Description, m.Reference,
			m.DueDate, m.Notes, m.PersonID, m.ContractID,
			m.BankAccountID, m.PaymentTypeID,
			m.LastUpdatedAt, m.LastUpdatedBy)
	}
	if err != nil {
		return fmt.Errorf("%w: failed to update transaction %s: %v", apperrors.ErrInternal, m.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// lockTransaction loads the full row under FOR UPDATE.
func (r *PgxTransactionRepository) lockTransaction(ctx context.Context, tx pgx.Tx, transactionID string) (*models.Transaction, error) {
	var m models.Transaction
	err := tx.QueryRow(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE transaction_id = $1
		FOR UPDATE;
	`, transactionID).Scan(
		&m.TransactionID, &m.Type, &m.Status, &m.Amount, &m.Category, &m.Description, &m.Reference,
		&m.DueDate, &m.PaidAt, &m.Notes, &m.PersonID, &m.ContractID, &m.BankAccountID, &m.PaymentTypeID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to lock transaction %s: %v", apperrors.ErrInternal, transactionID, err)
	}
	return &m, nil
}

// MarkTransactionPaid applies PENDING -> PAID under a row lock. Two
// concurrent callers cannot both observe PENDING: the second blocks on the
// lock and fails the transition re-check.
func (r *PgxTransactionRepository) MarkTransactionPaid(ctx context.Context, transactionID string, paidAt time.Time, bankAccountID, paymentTypeID *string, notes string, userID string, now time.Time) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m, err := r.lockTransaction(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}

	nextStatus, err := domain.NextTransactionStatus(transactionID, domain.TransactionStatus(m.Status), domain.TxnActionMarkPaid)
	if err != nil {
		return nil, err
	}

	if bankAccountID == nil {
		bankAccountID = m.BankAccountID
	}
	if paymentTypeID == nil {
		paymentTypeID = m.PaymentTypeID
	}
	newNotes := domain.AppendNotes(m.Notes, notes)

	_, err = tx.Exec(ctx, `
		UPDATE transactions
		SET status = $2, paid_at = $3, bank_account_id = $4, payment_type_id = $5,
		    notes = $6, last_updated_at = $7, last_updated_by = $8
		WHERE transaction_id = $1;
	`, transactionID, string(nextStatus), paidAt, bankAccountID, paymentTypeID, newNotes, now, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to mark transaction %s paid: %v", apperrors.ErrInternal, transactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return r.FindTransactionByID(ctx, transactionID)
}

// CancelTransaction applies PENDING -> CANCELLED under a row lock.
func (r *PgxTransactionRepository) CancelTransaction(ctx context.Context, transactionID string, notes string, userID string, now time.Time) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m, err := r.lockTransaction(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}

	nextStatus, err := domain.NextTransactionStatus(transactionID, domain.TransactionStatus(m.Status), domain.TxnActionCancel)
	if err != nil {
		return nil, err
	}

	newNotes := domain.AppendNotes(m.Notes, notes)
	_, err = tx.Exec(ctx, `
		UPDATE transactions
		SET status = $2, notes = $3, last_updated_at = $4, last_updated_by = $5
		WHERE transaction_id = $1;
	`, transactionID, string(nextStatus), newNotes, now, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to cancel transaction %s: %v", apperrors.ErrInternal, transactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return r.FindTransactionByID(ctx, transactionID)
}

// DeleteTransaction removes the row unless it has been paid.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var status models.TransactionStatus
	err = tx.QueryRow(ctx, `SELECT status FROM transactions WHERE transaction_id = $1 FOR UPDATE;`, transactionID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("%w: failed to lock transaction %s: %v", apperrors.ErrInternal, transactionID, err)
	}

	if status == models.TransactionPaid {
		return &apperrors.ImmutableStateError{
			Entity: "transaction",
			ID:     transactionID,
			Status: string(status),
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID); err != nil {
		return fmt.Errorf("%w: failed to delete transaction %s: %v", apperrors.ErrInternal, transactionID, err)
	}

	return r.Commit(ctx, tx)
}
