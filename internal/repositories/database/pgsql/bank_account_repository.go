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
)

const bankAccountColumns = `bank_account_id, bank_id, person_id, branch, account, account_type, is_default,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxBankAccountRepository persists bank accounts in PostgreSQL. The
// single-default invariant is enforced here with clear-then-set writes in
// one transaction, backed by a partial unique index on (person_id) WHERE
// is_default.
type PgxBankAccountRepository struct {
	BaseRepository
}

func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepository {
	return &PgxBankAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BankAccountRepository = (*PgxBankAccountRepository)(nil)

// clearDefaults unsets is_default on every other account of the person.
func (r *PgxBankAccountRepository) clearDefaults(ctx context.Context, tx pgx.Tx, personID, exceptID, userID string, now time.Time) error {
	_, err := tx.Exec(ctx, `
		UPDATE bank_accounts
		SET is_default = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE person_id = $1 AND bank_account_id <> $2 AND is_default;
	`, personID, exceptID, now, userID)
	if err != nil {
		return fmt.Errorf("%w: failed to clear default accounts for person %s: %v", apperrors.ErrInternal, personID, err)
	}
	return nil
}

// SaveBankAccount inserts the account, clearing any prior default of the
// same person in the same transaction when IsDefault is set.
func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if m.IsDefault && m.PersonID != nil {
		if err := r.clearDefaults(ctx, tx, *m.PersonID, m.BankAccountID, m.LastUpdatedBy, m.LastUpdatedAt); err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bank_accounts (`+bankAccountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`, m.BankAccountID, m.BankID, m.PersonID, m.Branch, m.Account, m.AccountType, m.IsDefault,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("%w: failed to insert bank account %s: %v", apperrors.ErrInternal, m.BankAccountID, err)
	}

	return r.Commit(ctx, tx)
}

// FindBankAccountByID returns the account with bank and owner embedded.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `
		SELECT ba.bank_account_id, ba.bank_id, ba.person_id, ba.branch, ba.account, ba.account_type, ba.is_default,
		       ba.created_at, ba.created_by, ba.last_updated_at, ba.last_updated_by,
		       b.name, b.code,
		       p.name, p.role
		FROM bank_accounts ba
		LEFT JOIN banks b ON b.bank_id = ba.bank_id
		LEFT JOIN people p ON p.person_id = ba.person_id
		WHERE ba.bank_account_id = $1;
	`

	var m models.BankAccount
	var bankName, bankCode sql.NullString
	var personName, personRole sql.NullString

	err := r.Pool.QueryRow(ctx, query, bankAccountID).Scan(
		&m.BankAccountID, &m.BankID, &m.PersonID, &m.Branch, &m.Account, &m.AccountType, &m.IsDefault,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&bankName, &bankCode,
		&personName, &personRole,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bank account %s: %w", bankAccountID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to find bank account %s: %v", apperrors.ErrInternal, bankAccountID, err)
	}

	account := mapping.ToDomainBankAccount(m)
	if bankName.Valid {
		account.Bank = &domain.Bank{
			BankID: account.BankID,
			Name:   bankName.String,
			Code:   bankCode.String,
		}
	}
	if account.PersonID != nil && personName.Valid {
		account.Person = &domain.Person{
			PersonID: *account.PersonID,
			Name:     personName.String,
			Role:     domain.PersonRole(personRole.String),
		}
	}
	return &account, nil
}

// ListBankAccounts returns a filtered page using plain limit/offset; the
// registry is small enough that cursor pagination buys nothing here.
func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context, filter portsrepo.BankAccountFilter, limit, offset int) ([]domain.BankAccount, error) {
	var clauses []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.PersonID != nil {
		clauses = append(clauses, "person_id = "+arg(*filter.PersonID))
	}
	if filter.BankID != nil {
		clauses = append(clauses, "bank_id = "+arg(*filter.BankID))
	}

	query := "SELECT " + bankAccountColumns + " FROM bank_accounts"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY is_default DESC, created_at DESC LIMIT " + arg(limit) + " OFFSET " + arg(offset) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list bank accounts: %v", apperrors.ErrInternal, err)
	}
	defer rows.Close()

	var ms []models.BankAccount
	for rows.Next() {
		var m models.BankAccount
		if err := rows.Scan(
			&m.BankAccountID, &m.BankID, &m.PersonID, &m.Branch, &m.Account, &m.AccountType, &m.IsDefault,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan bank account row: %v", apperrors.ErrInternal, err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate bank account rows: %v", apperrors.ErrInternal, err)
	}

	return mapping.ToDomainBankAccountSlice(ms), nil
}

// UpdateBankAccount persists edits, clearing other defaults of the person
// in the same transaction when IsDefault is being turned on.
func (r *PgxBankAccountRepository) UpdateBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT TRUE FROM bank_accounts WHERE bank_account_id = $1 FOR UPDATE;`, m.BankAccountID).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("bank account %s: %w", m.BankAccountID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("%w: failed to lock bank account %s: %v", apperrors.ErrInternal, m.BankAccountID, err)
	}

	if m.IsDefault && m.PersonID != nil {
		if err := r.clearDefaults(ctx, tx, *m.PersonID, m.BankAccountID, m.LastUpdatedBy, m.LastUpdatedAt); err != nil {
			return err
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE bank_accounts
		SET bank_id = $2, person_id = $3, branch = $4, account = $5, account_type = $6,
		    is_default = $7, last_updated_at = $8, last_updated_by = $9
		WHERE bank_account_id = $1;
	`, m.BankAccountID, m.BankID, m.PersonID, m.Branch, m.Account, m.AccountType,
		m.IsDefault, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("%w: failed to update bank account %s: %v", apperrors.ErrInternal, m.BankAccountID, err)
	}

	return r.Commit(ctx, tx)
}

// SetDefaultBankAccount atomically clears is_default on every other account
// of the person and sets it on the given account. The clear and the set
// commit together, so no interleaving can observe two defaults.
func (r *PgxBankAccountRepository) SetDefaultBankAccount(ctx context.Context, bankAccountID, personID, userID string, now time.Time) (*domain.BankAccount, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var ownerID *string
	err = tx.QueryRow(ctx, `SELECT person_id FROM bank_accounts WHERE bank_account_id = $1 FOR UPDATE;`, bankAccountID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bank account %s: %w", bankAccountID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to lock bank account %s: %v", apperrors.ErrInternal, bankAccountID, err)
	}
	if ownerID == nil || *ownerID != personID {
		return nil, fmt.Errorf("%w: bank account %s does not belong to person %s", apperrors.ErrConflict, bankAccountID, personID)
	}

	if err := r.clearDefaults(ctx, tx, personID, bankAccountID, userID, now); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE bank_accounts
		SET is_default = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE bank_account_id = $1;
	`, bankAccountID, now, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to set default bank account %s: %v", apperrors.ErrInternal, bankAccountID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return r.FindBankAccountByID(ctx, bankAccountID)
}

// DeleteBankAccount removes the account unless transactions reference it.
func (r *PgxBankAccountRepository) DeleteBankAccount(ctx context.Context, bankAccountID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT TRUE FROM bank_accounts WHERE bank_account_id = $1 FOR UPDATE;`, bankAccountID).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("bank account %s: %w", bankAccountID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("%w: failed to lock bank account %s: %v", apperrors.ErrInternal, bankAccountID, err)
	}

	var refs int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE bank_account_id = $1;`, bankAccountID).Scan(&refs)
	if err != nil {
		return fmt.Errorf("%w: failed to count references to bank account %s: %v", apperrors.ErrInternal, bankAccountID, err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: bank account %s is referenced by %d transaction(s)", apperrors.ErrConflict, bankAccountID, refs)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM bank_accounts WHERE bank_account_id = $1;`, bankAccountID); err != nil {
		return fmt.Errorf("%w: failed to delete bank account %s: %v", apperrors.ErrInternal, bankAccountID, err)
	}

	return r.Commit(ctx, tx)
}
