package domain

import (
	"time"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CommissionStatus is the lifecycle state of an agent commission.
type CommissionStatus string

const (
	CommissionPending   CommissionStatus = "PENDING"
	CommissionApproved  CommissionStatus = "APPROVED"
	CommissionPaid      CommissionStatus = "PAID"
	CommissionCancelled CommissionStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is permitted from s.
func (s CommissionStatus) IsTerminal() bool {
	return s == CommissionPaid || s == CommissionCancelled
}

// CommissionAction is an operation attempted against a commission's status.
type CommissionAction string

const (
	CommActionApprove CommissionAction = "APPROVE"
	CommActionPay     CommissionAction = "PAY"
	CommActionCancel  CommissionAction = "CANCEL"
)

// commissionTransitions is the authoritative state machine for commissions.
// Approval is monotonic: PENDING -> APPROVED -> PAID, with cancellation
// permitted from PENDING or APPROVED only. Missing entries are invalid.
var commissionTransitions = map[CommissionStatus]map[CommissionAction]CommissionStatus{
	CommissionPending: {
		CommActionApprove: CommissionApproved,
		CommActionCancel:  CommissionCancelled,
	},
	CommissionApproved: {
		CommActionPay:    CommissionPaid,
		CommActionCancel: CommissionCancelled,
	},
}

// NextCommissionStatus resolves the status reached by applying action to the
// current status, or an InvalidTransitionError when the table has no entry.
func NextCommissionStatus(commissionID string, current CommissionStatus, action CommissionAction) (CommissionStatus, error) {
	if next, ok := commissionTransitions[current][action]; ok {
		return next, nil
	}
	return current, &apperrors.InvalidTransitionError{
		Entity: "commission",
		ID:     commissionID,
		From:   string(current),
		Action: string(action),
	}
}

// Commission is an agent commission derived from a contract.
type Commission struct {
	CommissionID     string           `json:"commissionID"`
	PersonID         string           `json:"personID"` // must reference a person with role AGENT
	ContractID       string           `json:"contractID"`
	CommissionTypeID string           `json:"commissionTypeID"`
	Amount           decimal.Decimal  `json:"amount"`     // >= 0
	Percentage       *decimal.Decimal `json:"percentage"` // nullable, in [0,100]
	Status           CommissionStatus `json:"status"`
	PaidAt           *time.Time       `json:"paidAt"` // set iff Status == PAID
	Description      string           `json:"description"`
	AuditFields

	// Related entities, populated on detail reads for display.
	Person         *Person         `json:"person,omitempty"`
	Contract       *Contract       `json:"contract,omitempty"`
	CommissionType *CommissionType `json:"commissionType,omitempty"`
}
