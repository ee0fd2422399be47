package dto

import (
	"time"

	"github.com/imovelhub/imovel_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryParams defines a grouped-sum query over transactions.
type SummaryParams struct {
	Dimension     string    `form:"dimension" binding:"required,oneof=category person property_type status month"`
	From          time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To            time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
	Status        *string   `form:"status"`
	Type          *string   `form:"type"`
	Category      *string   `form:"category"`
	PersonID      *string   `form:"personID"`
	ContractID    *string   `form:"contractID"`
	BankAccountID *string   `form:"bankAccountID"`
}

// CashflowParams defines the window for the cashflow summary.
type CashflowParams struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// ReportGroupResponse is one grouped-sum row.
type ReportGroupResponse struct {
	Key         string          `json:"key"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// SummaryResponse is the grouped-sum report plus convenience totals.
type SummaryResponse struct {
	Dimension   string                `json:"dimension"`
	From        time.Time             `json:"from"`
	To          time.Time             `json:"to"`
	Groups      []ReportGroupResponse `json:"groups"`
	TotalCount  int64                 `json:"totalCount"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
}

// CashflowResponse breaks totals down by type and settlement state.
type CashflowResponse struct {
	From              time.Time       `json:"from"`
	To                time.Time       `json:"to"`
	ReceivablePaid    decimal.Decimal `json:"receivablePaid"`
	ReceivablePending decimal.Decimal `json:"receivablePending"`
	PayablePaid       decimal.Decimal `json:"payablePaid"`
	PayablePending    decimal.Decimal `json:"payablePending"`
	NetPaid           decimal.Decimal `json:"netPaid"`
	NetForecast       decimal.Decimal `json:"netForecast"`
}

// ToSummaryResponse converts a domain SummaryReport to its response DTO.
func ToSummaryResponse(r *domain.SummaryReport) SummaryResponse {
	groups := make([]ReportGroupResponse, len(r.Groups))
	for i, g := range r.Groups {
		groups[i] = ReportGroupResponse{Key: g.Key, Count: g.Count, TotalAmount: g.TotalAmount}
	}
	return SummaryResponse{
		Dimension:   string(r.Dimension),
		From:        r.From,
		To:          r.To,
		Groups:      groups,
		TotalCount:  r.TotalCount,
		TotalAmount: r.TotalAmount,
	}
}

// ToCashflowResponse converts a domain CashflowSummary to its response DTO.
func ToCashflowResponse(c *domain.CashflowSummary) CashflowResponse {
	return CashflowResponse{
		From:              c.From,
		To:                c.To,
		ReceivablePaid:    c.ReceivablePaid,
		ReceivablePending: c.ReceivablePending,
		PayablePaid:       c.PayablePaid,
		PayablePending:    c.PayablePending,
		NetPaid:           c.NetPaid,
		NetForecast:       c.NetForecast,
	}
}
