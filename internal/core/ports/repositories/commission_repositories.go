package repositories

import (
	"context"
	"time"

	"github.com/imovelhub/imovel_finance/internal/core/domain"
)

// CommissionFilter narrows commission listings. Nil fields are ignored.
type CommissionFilter struct {
	Status     *domain.CommissionStatus
	PersonID   *string
	ContractID *string
}

// CommissionRepository owns the commissions table. All status transitions
// run as a locked read-check-write inside a single database transaction.
type CommissionRepository interface {
	SaveCommission(ctx context.Context, commission domain.Commission) error
	// FindCommissionByID returns the commission with related person, contract
	// and commission type embedded when present.
	FindCommissionByID(ctx context.Context, commissionID string) (*domain.Commission, error)
	ListCommissions(ctx context.Context, filter CommissionFilter, limit int, nextToken *string) ([]domain.Commission, *string, error)
	// UpdateCommission persists edits to a non-paid commission.
	UpdateCommission(ctx context.Context, commission domain.Commission) error
	// ApproveCommission applies PENDING -> APPROVED under a row lock.
	ApproveCommission(ctx context.Context, commissionID string, userID string, now time.Time) (*domain.Commission, error)
	// PayCommission applies APPROVED -> PAID under a row lock, setting paid_at.
	PayCommission(ctx context.Context, commissionID string, paidAt time.Time, userID string, now time.Time) (*domain.Commission, error)
	// CancelCommission cancels from PENDING or APPROVED, appending the reason
	// to the description.
	CancelCommission(ctx context.Context, commissionID string, reason string, userID string, now time.Time) (*domain.Commission, error)
	// DeleteCommission removes the row unless its status is PAID.
	DeleteCommission(ctx context.Context, commissionID string) error
}
