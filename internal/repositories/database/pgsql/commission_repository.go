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

const commissionColumns = `commission_id, person_id, contract_id, commission_type_id, amount, percentage,
	status, paid_at, description, created_at, created_by, last_updated_at, last_updated_by`

// PgxCommissionRepository persists commissions in PostgreSQL.
type PgxCommissionRepository struct {
	BaseRepository
}

func newPgxCommissionRepository(pool *pgxpool.Pool) portsrepo.CommissionRepository {
	return &PgxCommissionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CommissionRepository = (*PgxCommissionRepository)(nil)

// SaveCommission inserts a new commission row.
func (r *PgxCommissionRepository) SaveCommission(ctx context.Context, commission domain.Commission) error {
	m := mapping.ToModelCommission(commission)
	query := `
		INSERT INTO commissions (` + commissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CommissionID, m.PersonID, m.ContractID, m.CommissionTypeID, m.Amount, m.Percentage,
		m.Status, m.PaidAt, m.Description, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert commission %s: %v", apperrors.ErrInternal, m.CommissionID, err)
	}
	return nil
}

// FindCommissionByID returns the commission with its agent, contract and
// commission type embedded.
func (r *PgxCommissionRepository) FindCommissionByID(ctx context.Context, commissionID string) (*domain.Commission, error) {
	query := `
		SELECT c.commission_id, c.person_id, c.contract_id, c.commission_type_id, c.amount, c.percentage,
		       c.status, c.paid_at, c.description, c.created_at, c.created_by, c.last_updated_at, c.last_updated_by,
		       p.name, p.role,
		       ct.reference, ct.property_type,
		       cmt.name
		FROM commissions c
		LEFT JOIN people p ON p.person_id = c.person_id
		LEFT JOIN contracts ct ON ct.contract_id = c.contract_id
		LEFT JOIN commission_types cmt ON cmt.commission_type_id = c.commission_type_id
		WHERE c.commission_id = $1;
	`

	var m models.Commission
	var personName, personRole sql.NullString
	var contractRef, contractPropertyType sql.NullString
	var commissionTypeName sql.NullString

	err := r.Pool.QueryRow(ctx, query, commissionID).Scan(
		&m.CommissionID, &m.PersonID, &m.ContractID, &m.CommissionTypeID, &m.Amount, &m.Percentage,
		&m.Status, &m.PaidAt, &m.Description, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		&personName, &personRole,
		&contractRef, &contractPropertyType,
		&commissionTypeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("commission %s: %w", commissionID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to find commission %s: %v", apperrors.ErrInternal, commissionID, err)
	}

	commission := mapping.ToDomainCommission(m)
	if personName.Valid {
		commission.Person = &domain.Person{
			PersonID: commission.PersonID,
			Name:     personName.String,
			Role:     domain.PersonRole(personRole.String),
		}
	}
	if contractRef.Valid {
		commission.Contract = &domain.Contract{
			ContractID:   commission.ContractID,
			Reference:    contractRef.String,
			PropertyType: contractPropertyType.String,
		}
	}
	if commissionTypeName.Valid {
		commission.CommissionType = &domain.CommissionType{
			CommissionTypeID: commission.CommissionTypeID,
			Name:             commissionTypeName.String,
		}
	}
	return &commission, nil
}

// ListCommissions returns a filtered page ordered by creation time
// descending, with a date-based pagination token.
func (r *PgxCommissionRepository) ListCommissions(ctx context.Context, filter portsrepo.CommissionFilter, limit int, nextToken *string) ([]domain.Commission, *string, error) {
	var clauses []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Status != nil {
		clauses = append(clauses, "status = "+arg(string(*filter.Status)))
	}
	if filter.PersonID != nil {
		clauses = append(clauses, "person_id = "+arg(*filter.PersonID))
	}
	if filter.ContractID != nil {
		clauses = append(clauses, "contract_id = "+arg(*filter.ContractID))
	}

	if nextToken != nil && *nextToken != "" {
		createdAt, err := pagination.DecodeDateBasedToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		clauses = append(clauses, "created_at < "+arg(createdAt))
	}

	query := "SELECT " + commissionColumns + " FROM commissions"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	// Fetch one extra row to know whether another page exists.
	query += " ORDER BY created_at DESC, commission_id DESC LIMIT " + arg(limit+1) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to list commissions: %v", apperrors.ErrInternal, err)
	}
	defer rows.Close()

	var ms []models.Commission
	for rows.Next() {
		var m models.Commission
		if err := rows.Scan(
			&m.CommissionID, &m.PersonID, &m.ContractID, &m.CommissionTypeID, &m.Amount, &m.Percentage,
			&m.Status, &m.PaidAt, &m.Description, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, nil, fmt.Errorf("%w: failed to scan commission row: %v", apperrors.ErrInternal, err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to iterate commission rows: %v", apperrors.ErrInternal, err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		t := pagination.EncodeDateBasedToken(ms[len(ms)-1].CreatedAt)
		token = &t
	}
	return mapping.ToDomainCommissionSlice(ms), token, nil
}

// lockCommission loads the full row under FOR UPDATE.
func (r *PgxCommissionRepository) lockCommission(ctx context.Context, tx pgx.Tx, commissionID string) (*models.Commission, error) {
	var m models.Commission
	err := tx.QueryRow(ctx, `
		SELECT `+commissionColumns+`
		FROM commissions
		WHERE commission_id = $1
		FOR UPDATE;
	`, commissionID).Scan(
		&m.CommissionID, &m.PersonID, &m.ContractID, &m.CommissionTypeID, &m.Amount, &m.Percentage,
		&m.Status, &m.PaidAt, &m.Description, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("commission %s: %w", commissionID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to lock commission %s: %v", apperrors.ErrInternal, commissionID, err)
	}
	return &m, nil
}

// UpdateCommission persists edits under a row lock. Paid commissions are
// immutable; the check is re-applied here because the service's read is
// not serialized with concurrent payers.
func (r *PgxCommissionRepository) UpdateCommission(ctx context.Context, commission domain.Commission) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	current, err := r.lockCommission(ctx, tx, commission.CommissionID)
	if err != nil {
		return err
	}
	if current.Status == models.CommissionPaid {
		return &apperrors.ImmutableStateError{
			Entity: "commission",
			ID:     commission.CommissionID,
			Status: string(current.Status),
		}
	}

	m := mapping.ToModelCommission(commission)
	_, err = tx.Exec(ctx, `
		UPDATE commissions
		SET person_id = $2, contract_id = $3, commission_type_id = $4, amount = $5,
		    percentage = $6, description = $7, last_updated_at = $8, last_updated_by = $9
		WHERE commission_id = $1;
	`, m.CommissionID, m.PersonID, m.ContractID, m.CommissionTypeID, m.Amount,
		m.Percentage, m.Description, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("%w: failed to update commission %s: %v", apperrors.ErrInternal, m.CommissionID, err)
	}

	return r.Commit(ctx, tx)
}

// transition resolves one state machine action under a row lock, runs the
// caller's update, and reloads the row with its related entities.
func (r *PgxCommissionRepository) transition(ctx context.Context, commissionID string, action domain.CommissionAction, apply func(tx pgx.Tx, m *models.Commission, next domain.CommissionStatus) error) (*domain.Commission, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m, err := r.lockCommission(ctx, tx, commissionID)
	if err != nil {
		return nil, err
	}

	next, err := domain.NextCommissionStatus(commissionID, domain.CommissionStatus(m.Status), action)
	if err != nil {
		return nil, err
	}

	if err := apply(tx, m, next); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return r.FindCommissionByID(ctx, commissionID)
}

// ApproveCommission applies PENDING -> APPROVED under a row lock.
func (r *PgxCommissionRepository) ApproveCommission(ctx context.Context, commissionID string, userID string, now time.Time) (*domain.Commission, error) {
	return r.transition(ctx, commissionID, domain.CommActionApprove, func(tx pgx.Tx, m *models.Commission, next domain.CommissionStatus) error {
		_, err := tx.Exec(ctx, `
			UPDATE commissions
			SET status = $2, last_updated_at = $3, last_updated_by = $4
			WHERE commission_id = $1;
		`, commissionID, string(next), now, userID)
		if err != nil {
			return fmt.Errorf("%w: failed to approve commission %s: %v", apperrors.ErrInternal, commissionID, err)
		}
		return nil
	})
}

// PayCommission applies APPROVED -> PAID under a row lock, setting paid_at.
func (r *PgxCommissionRepository) PayCommission(ctx context.Context, commissionID string, paidAt time.Time, userID string, now time.Time) (*domain.Commission, error) {
	return r.transition(ctx, commissionID, domain.CommActionPay, func(tx pgx.Tx, m *models.Commission, next domain.CommissionStatus) error {
		_, err := tx.Exec(ctx, `
			UPDATE commissions
			SET status = $2, paid_at = $3, last_updated_at = $4, last_updated_by = $5
			WHERE commission_id = $1;
		`, commissionID, string(next), paidAt, now, userID)
		if err != nil {
			return fmt.Errorf("%w: failed to pay commission %s: %v", apperrors.ErrInternal, commissionID, err)
		}
		return nil
	})
}

// CancelCommission cancels from PENDING or APPROVED, appending the reason to
// the description.
func (r *PgxCommissionRepository) CancelCommission(ctx context.Context, commissionID string, reason string, userID string, now time.Time) (*domain.Commission, error) {
	return r.transition(ctx, commissionID, domain.CommActionCancel, func(tx pgx.Tx, m *models.Commission, next domain.CommissionStatus) error {
		description := domain.AppendNotes(m.Description, reason)
		_, err := tx.Exec(ctx, `
			UPDATE commissions
			SET status = $2, description = $3, last_updated_at = $4, last_updated_by = $5
			WHERE commission_id = $1;
		`, commissionID, string(next), description, now, userID)
		if err != nil {
			return fmt.Errorf("%w: failed to cancel commission %s: %v", apperrors.ErrInternal, commissionID, err)
		}
		return nil
	})
}

// DeleteCommission removes the row unless it has been paid.
func (r *PgxCommissionRepository) DeleteCommission(ctx context.Context, commissionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var status models.CommissionStatus
	err = tx.QueryRow(ctx, `SELECT status FROM commissions WHERE commission_id = $1 FOR UPDATE;`, commissionID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("commission %s: %w", commissionID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("%w: failed to lock commission %s: %v", apperrors.ErrInternal, commissionID, err)
	}

	if status == models.CommissionPaid {
		return &apperrors.ImmutableStateError{
			Entity: "commission",
			ID:     commissionID,
			Status: string(status),
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM commissions WHERE commission_id = $1;`, commissionID); err != nil {
		return fmt.Errorf("%w: failed to delete commission %s: %v", apperrors.ErrInternal, commissionID, err)
	}

	return r.Commit(ctx, tx)
}
