package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionStatus mirrors domain.CommissionStatus at the storage layer.
type CommissionStatus string

const (
	CommissionPending   CommissionStatus = "PENDING"
	CommissionApproved  CommissionStatus = "APPROVED"
	CommissionPaid      CommissionStatus = "PAID"
	CommissionCancelled CommissionStatus = "CANCELLED"
)

// Commission is the commissions table row.
type Commission struct {
	CommissionID     string           `db:"commission_id"`
	PersonID         string           `db:"person_id"`
	ContractID       string           `db:"contract_id"`
	CommissionTypeID string           `db:"commission_type_id"`
	Amount           decimal.Decimal  `db:"amount"`
	Percentage       *decimal.Decimal `db:"percentage"`
	Status           CommissionStatus `db:"status"`
	PaidAt           *time.Time       `db:"paid_at"`
	Description      string           `db:"description"`
	AuditFields
}
