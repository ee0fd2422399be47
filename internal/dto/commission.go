package dto

import (
	"time"

	"github.com/imovelhub/imovel_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCommissionRequest defines the data needed to create a commission.
// The referenced person must have the AGENT role. The validate tags repeat
// the binding rules for callers that bypass gin.
type CreateCommissionRequest struct {
	PersonID         string           `json:"personID" binding:"required" validate:"required"`
	ContractID       string           `json:"contractID" binding:"required" validate:"required"`
	CommissionTypeID string           `json:"commissionTypeID" binding:"required" validate:"required"`
	Amount           decimal.Decimal  `json:"amount"`
	Percentage       *decimal.Decimal `json:"percentage"`
	Description      string           `json:"description"`
}

// UpdateCommissionRequest defines the fields allowed when editing a non-paid
// commission. Pointers distinguish omitted fields from zero values.
type UpdateCommissionRequest struct {
	CommissionTypeID *string          `json:"commissionTypeID"`
	Amount           *decimal.Decimal `json:"amount"`
	Percentage       *decimal.Decimal `json:"percentage"`
	Description      *string          `json:"description"`
}

// PayCommissionRequest settles an approved commission. PaidAt defaults to
// the call time when omitted.
type PayCommissionRequest struct {
	PaidAt *time.Time `json:"paidAt"`
}

// CancelCommissionRequest cancels a pending or approved commission. The
// reason is appended to the description.
type CancelCommissionRequest struct {
	Reason string `json:"reason"`
}

// ListCommissionsParams defines query parameters for listing commissions.
type ListCommissionsParams struct {
	Limit      int     `form:"limit,default=20"`
	NextToken  *string `form:"nextToken"`
	Status     *string `form:"status"`
	PersonID   *string `form:"personID"`
	ContractID *string `form:"contractID"`
}

// CommissionResponse mirrors domain.Commission for API consumers.
type CommissionResponse struct {
	CommissionID     string           `json:"commissionID"`
	PersonID         string           `json:"personID"`
	ContractID       string           `json:"contractID"`
	CommissionTypeID string           `json:"commissionTypeID"`
	Amount           decimal.Decimal  `json:"amount"`
	Percentage       *decimal.Decimal `json:"percentage"`
	Status           string           `json:"status"`
	PaidAt           *time.Time       `json:"paidAt"`
	Description      string           `json:"description"`
	CreatedAt        time.Time        `json:"createdAt"`
	LastUpdatedAt    time.Time        `json:"lastUpdatedAt"`

	Person         *PersonResponse         `json:"person,omitempty"`
	Contract       *ContractResponse       `json:"contract,omitempty"`
	CommissionType *CommissionTypeResponse `json:"commissionType,omitempty"`
}

// ListCommissionsResponse is a page of commissions plus the next token.
type ListCommissionsResponse struct {
	Commissions []CommissionResponse `json:"commissions"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// ToCommissionResponse converts a domain Commission to its response DTO.
func ToCommissionResponse(c *domain.Commission) CommissionResponse {
	return CommissionResponse{
		CommissionID:     c.CommissionID,
		PersonID:         c.PersonID,
		ContractID:       c.ContractID,
		CommissionTypeID: c.CommissionTypeID,
		Amount:           c.Amount,
		Percentage:       c.Percentage,
		Status:           string(c.Status),
		PaidAt:           c.PaidAt,
		Description:      c.Description,
		CreatedAt:        c.CreatedAt,
		LastUpdatedAt:    c.LastUpdatedAt,
		Person:           toPersonResponse(c.Person),
		Contract:         toContractResponse(c.Contract),
		CommissionType:   toCommissionTypeResponse(c.CommissionType),
	}
}

// ToCommissionResponses converts a slice of domain Commissions.
func ToCommissionResponses(cs []domain.Commission) []CommissionResponse {
	res := make([]CommissionResponse, len(cs))
	for i := range cs {
		res[i] = ToCommissionResponse(&cs[i])
	}
	return res
}
