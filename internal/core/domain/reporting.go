package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportDimension selects the grouping key for a summary query.
type ReportDimension string

const (
	DimensionCategory     ReportDimension = "category"
	DimensionPerson       ReportDimension = "person"
	DimensionPropertyType ReportDimension = "property_type"
	DimensionStatus       ReportDimension = "status"
	DimensionMonth        ReportDimension = "month"
)

// ValidReportDimension reports whether d is a known summary dimension.
func ValidReportDimension(d ReportDimension) bool {
	switch d {
	case DimensionCategory, DimensionPerson, DimensionPropertyType, DimensionStatus, DimensionMonth:
		return true
	}
	return false
}

// ReportGroup is one grouped-sum row of a summary report.
type ReportGroup struct {
	Key         string          `json:"key"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// SummaryReport is a grouped-sum view over transactions for a date range.
// Empty result sets yield zero totals and an empty group slice.
type SummaryReport struct {
	Dimension   ReportDimension `json:"dimension"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	Groups      []ReportGroup   `json:"groups"`
	TotalCount  int64           `json:"totalCount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// CashflowSummary breaks totals down by transaction type and settlement.
type CashflowSummary struct {
	From              time.Time       `json:"from"`
	To                time.Time       `json:"to"`
	ReceivablePaid    decimal.Decimal `json:"receivablePaid"`
	ReceivablePending decimal.Decimal `json:"receivablePending"`
	PayablePaid       decimal.Decimal `json:"payablePaid"`
	PayablePending    decimal.Decimal `json:"payablePending"`
	NetPaid           decimal.Decimal `json:"netPaid"`    // receivablePaid - payablePaid
	NetForecast       decimal.Decimal `json:"netForecast"` // includes pending entries
}
