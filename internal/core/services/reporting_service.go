package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
	"github.com/imovelhub/imovel_finance/internal/core/domain"
	portsrepo "github.com/imovelhub/imovel_finance/internal/core/ports/repositories"
	portssvc "github.com/imovelhub/imovel_finance/internal/core/ports/services"
	"github.com/imovelhub/imovel_finance/internal/dto"
)

// reportingService provides grouped-sum views over the transaction store.
// It never mutates; empty result sets return zero totals.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TransactionSummary returns counts and sums grouped by the requested
// dimension, plus convenience totals over all groups.
func (s *reportingService) TransactionSummary(ctx context.Context, params dto.SummaryParams) (*domain.SummaryReport, error) {
	if params.To.Before(params.From) {
		return nil, &apperrors.InvalidRangeError{
			Start: params.From.Format(time.DateOnly),
			End:   params.To.Format(time.DateOnly),
		}
	}
	dimension := domain.ReportDimension(params.Dimension)
	if !domain.ValidReportDimension(dimension) {
		return nil, apperrors.NewValidationError().Add("dimension", "must be one of [category person property_type status month]")
	}

	filter := portsrepo.SummaryFilter{
		Category:      params.Category,
		PersonID:      params.PersonID,
		ContractID:    params.ContractID,
		BankAccountID: params.BankAccountID,
	}
	if params.Status != nil {
		status := domain.TransactionStatus(*params.Status)
		if !domain.ValidTransactionStatus(status) {
			return nil, apperrors.NewValidationError().Add("status", "must be one of [PENDING PAID CANCELLED]")
		}
		filter.Status = &status
	}
	if params.Type != nil {
		txnType := domain.TransactionType(*params.Type)
		if !domain.ValidTransactionType(txnType) {
			return nil, apperrors.NewValidationError().Add("type", "must be one of [RECEIVABLE PAYABLE]")
		}
		filter.Type = &txnType
	}

	groups, err := s.reportingRepo.GetTransactionSummary(ctx, dimension, params.From, params.To, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute transaction summary", slog.String("dimension", params.Dimension))
		return nil, fmt.Errorf("failed to compute transaction summary: %w", err)
	}

	report := &domain.SummaryReport{
		Dimension: dimension,
		From:      params.From,
		To:        params.To,
		Groups:    groups,
	}
	for _, g := range groups {
		report.TotalCount += g.Count
		report.TotalAmount = report.TotalAmount.Add(g.TotalAmount)
	}

	s.LogInfo(ctx, "Transaction summary generated", slog.String("dimension", params.Dimension), slog.Int("group_count", len(groups)))
	return report, nil
}

// CashflowSummary returns paid vs pending subtotals per transaction type.
func (s *reportingService) CashflowSummary(ctx context.Context, params dto.CashflowParams) (*domain.CashflowSummary, error) {
	if params.To.Before(params.From) {
		return nil, &apperrors.InvalidRangeError{
			Start: params.From.Format(time.DateOnly),
			End:   params.To.Format(time.DateOnly),
		}
	}

	totals, err := s.reportingRepo.GetCashflowTotals(ctx, params.From, params.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute cashflow totals")
		return nil, fmt.Errorf("failed to compute cashflow totals: %w", err)
	}

	summary := &domain.CashflowSummary{
		From:              params.From,
		To:                params.To,
		ReceivablePaid:    totals.ReceivablePaid,
		ReceivablePending: totals.ReceivablePending,
		PayablePaid:       totals.PayablePaid,
		PayablePending:    totals.PayablePending,
	}
	summary.NetPaid = totals.ReceivablePaid.Sub(totals.PayablePaid)
	summary.NetForecast = totals.ReceivablePaid.Add(totals.ReceivablePending).
		Sub(totals.PayablePaid).Sub(totals.PayablePending)

	s.LogInfo(ctx, "Cashflow summary generated",
		slog.String("from", params.From.Format(time.DateOnly)),
		slog.String("to", params.To.Format(time.DateOnly)))
	return summary, nil
}
