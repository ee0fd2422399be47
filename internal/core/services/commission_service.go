package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
	"github.com/imovelhub/imovel_finance/internal/core/domain"
	portsrepo "github.com/imovelhub/imovel_finance/internal/core/ports/repositories"
	portssvc "github.com/imovelhub/imovel_finance/internal/core/ports/services"
	"github.com/imovelhub/imovel_finance/internal/dto"
	"github.com/imovelhub/imovel_finance/internal/validation"
)

var percentageMax = decimal.NewFromInt(100)

// commissionService provides the agent commission ledger operations.
type commissionService struct {
	BaseService
	commissionRepo portsrepo.CommissionRepository
	personRepo     portsrepo.PersonRepository
}

// NewCommissionService creates a new CommissionService.
func NewCommissionService(commissionRepo portsrepo.CommissionRepository, personRepo portsrepo.PersonRepository) portssvc.CommissionSvcFacade {
	return &commissionService{
		commissionRepo: commissionRepo,
		personRepo:     personRepo,
	}
}

var _ portssvc.CommissionSvcFacade = (*commissionService)(nil)

// CreateCommission validates the counterparty role and persists a pending
// commission.
func (s *commissionService) CreateCommission(ctx context.Context, req dto.CreateCommissionRequest, creatorUserID string) (*domain.Commission, error) {
	if verr := validation.Struct(&req); verr != nil {
		return nil, verr
	}
	verr := apperrors.NewValidationError()
	validation.NonNegative(verr, "amount", req.Amount)
	if req.Percentage != nil {
		validation.InRange(verr, "percentage", *req.Percentage, decimal.Zero, percentageMax)
	}
	if err := validation.Finish(verr); err != nil {
		return nil, err
	}

	person, err := s.personRepo.FindPersonByID(ctx, req.PersonID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("person %s: %w", req.PersonID, err)
		}
		s.LogError(ctx, err, "Failed to look up commission counterparty", slog.String("person_id", req.PersonID))
		return nil, fmt.Errorf("failed to look up person %s: %w", req.PersonID, err)
	}
	if person.Role != domain.RoleAgent {
		s.LogWarn(ctx, "Rejected commission for non-agent", slog.String("person_id", req.PersonID), slog.String("role", string(person.Role)))
		return nil, &apperrors.InvalidCounterpartyError{PersonID: req.PersonID, Role: string(person.Role)}
	}

	now := time.Now().UTC()
	commission := domain.Commission{
		CommissionID:     uuid.NewString(),
		PersonID:         req.PersonID,
		ContractID:       req.ContractID,
		CommissionTypeID: req.CommissionTypeID,
		Amount:           req.Amount,
		Percentage:       req.Percentage,
		Status:           domain.CommissionPending,
		Description:      req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.commissionRepo.SaveCommission(ctx, commission); err != nil {
		s.LogError(ctx, err, "Failed to save commission", slog.String("commission_id", commission.CommissionID))
		return nil, fmt.Errorf("failed to save commission: %w", err)
	}

	s.LogInfo(ctx, "Commission created", slog.String("commission_id", commission.CommissionID), slog.String("person_id", req.PersonID))
	return s.commissionRepo.FindCommissionByID(ctx, commission.CommissionID)
}

// GetCommissionByID retrieves one commission with embedded relations.
func (s *commissionService) GetCommissionByID(ctx context.Context, commissionID string) (*domain.Commission, error) {
	commission, err := s.commissionRepo.FindCommissionByID(ctx, commissionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find commission", slog.String("commission_id", commissionID))
		}
		return nil, err
	}
	return commission, nil
}

// ListCommissions retrieves a filtered, token-paginated page of commissions.
func (s *commissionService) ListCommissions(ctx context.Context, params dto.ListCommissionsParams) (*dto.ListCommissionsResponse, error) {
	filter := portsrepo.CommissionFilter{
		PersonID:   params.PersonID,
		ContractID: params.ContractID,
	}
	if params.Status != nil {
		status := domain.CommissionStatus(*params.Status)
		switch status {
		case domain.CommissionPending, domain.CommissionApproved, domain.CommissionPaid, domain.CommissionCancelled:
			filter.Status = &status
		default:
			return nil, apperrors.NewValidationError().Add("status", "must be one of [PENDING APPROVED PAID CANCELLED]")
		}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	commissions, nextToken, err := s.commissionRepo.ListCommissions(ctx, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list commissions")
		return nil, fmt.Errorf("failed to retrieve commissions: %w", err)
	}

	return &dto.ListCommissionsResponse{
		Commissions: dto.ToCommissionResponses(commissions),
		NextToken:   nextToken,
	}, nil
}

// UpdateCommission edits a commission that has not been paid.
func (s *commissionService) UpdateCommission(ctx context.Context, commissionID string, req dto.UpdateCommissionRequest, userID string) (*domain.Commission, error) {
	commission, err := s.commissionRepo.FindCommissionByID(ctx, commissionID)
	if err != nil {
		return nil, err
	}
	if commission.Status == domain.CommissionPaid {
		return nil, &apperrors.ImmutableStateError{
			Entity: "commission",
			ID:     commissionID,
			Status: string(commission.Status),
		}
	}

	verr := apperrors.NewValidationError()
	if req.Amount != nil {
		validation.NonNegative(verr, "amount", *req.Amount)
	}
	if req.Percentage != nil {
		validation.InRange(verr, "percentage", *req.Percentage, decimal.Zero, percentageMax)
	}
	if err := validation.Finish(verr); err != nil {
		return nil, err
	}

	updated := false
	if req.CommissionTypeID != nil {
		commission.CommissionTypeID = *req.CommissionTypeID
		updated = true
	}
	if req.Amount != nil {
		commission.Amount = *req.Amount
		updated = true
	}
	if req.Percentage != nil {
		commission.Percentage = req.Percentage
		updated = true
	}
	if req.Description != nil {
		commission.Description = *req.Description
		updated = true
	}

	if !updated {
		return commission, nil
	}

	commission.LastUpdatedAt = time.Now().UTC()
	commission.LastUpdatedBy = userID

	if err := s.commissionRepo.UpdateCommission(ctx, *commission); err != nil {
		s.LogError(ctx, err, "Failed to update commission", slog.String("commission_id", commissionID))
		return nil, err
	}

	s.LogInfo(ctx, "Commission updated", slog.String("commission_id", commissionID))
	return s.commissionRepo.FindCommissionByID(ctx, commissionID)
}

// ApproveCommission moves a pending commission to approved.
func (s *commissionService) ApproveCommission(ctx context.Context, commissionID string, userID string) (*domain.Commission, error) {
	commission, err := s.commissionRepo.FindCommissionByID(ctx, commissionID)
	if err != nil {
		return nil, err
	}
	if _, err := domain.NextCommissionStatus(commissionID, commission.Status, domain.CommActionApprove); err != nil {
		s.LogWarn(ctx, "Rejected approve on commission", slog.String("commission_id", commissionID), slog.String("status", string(commission.Status)))
		return nil, err
	}

	approved, err := s.commissionRepo.ApproveCommission(ctx, commissionID, userID, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to approve commission", slog.String("commission_id", commissionID))
		return nil, err
	}

	s.LogInfo(ctx, "Commission approved", slog.String("commission_id", commissionID))
	return approved, nil
}

// PayCommission settles an approved commission. The paid-at timestamp may be
// supplied by the caller and defaults to the call time.
func (s *commissionService) PayCommission(ctx context.Context, commissionID string, req dto.PayCommissionRequest, userID string) (*domain.Commission, error) {
	commission, err := s.commissionRepo.FindCommissionByID(ctx, commissionID)
	if err != nil {
		return nil, err
	}
	if _, err := domain.NextCommissionStatus(commissionID, commission.Status, domain.CommActionPay); err != nil {
		s.LogWarn(ctx, "Rejected pay on commission", slog.String("commission_id", commissionID), slog.String("status", string(commission.Status)))
		return nil, err
	}

	now := time.Now().UTC()
	paidAt := now
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	paid, err := s.commissionRepo.PayCommission(ctx, commissionID, paidAt, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to pay commission", slog.String("commission_id", commissionID))
		return nil, err
	}

	s.LogInfo(ctx, "Commission paid", slog.String("commission_id", commissionID), slog.String("paid_at", paidAt.Format(time.RFC3339)))
	return paid, nil
}

// CancelCommission cancels a pending or approved commission, appending the
// reason to its description.
func (s *commissionService) CancelCommission(ctx context.Context, commissionID string, req dto.CancelCommissionRequest, userID string) (*domain.Commission, error) {
	commission, err := s.commissionRepo.FindCommissionByID(ctx, commissionID)
	if err != nil {
		return nil, err
	}
	if commission.Status == domain.CommissionPaid {
		return nil, &apperrors.ImmutableStateError{
			Entity: "commission",
			ID:     commissionID,
			Status: string(commission.Status),
		}
	}
	if _, err := domain.NextCommissionStatus(commissionID, commission.Status, domain.CommActionCancel); err != nil {
		s.LogWarn(ctx, "Rejected cancel on commission", slog.String("commission_id", commissionID), slog.String("status", string(commission.Status)))
		return nil, err
	}

	cancelled, err := s.commissionRepo.CancelCommission(ctx, commissionID, req.Reason, userID, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to cancel commission", slog.String("commission_id", commissionID))
		return nil, err
	}

	s.LogInfo(ctx, "Commission cancelled", slog.String("commission_id", commissionID))
	return cancelled, nil
}

// DeleteCommission removes a commission unless it has been paid.
func (s *commissionService) DeleteCommission(ctx context.Context, commissionID string) error {
	commission, err := s.commissionRepo.FindCommissionByID(ctx, commissionID)
	if err != nil {
		return err
	}
	if commission.Status == domain.CommissionPaid {
		return &apperrors.ImmutableStateError{
			Entity: "commission",
			ID:     commissionID,
			Status: string(commission.Status),
		}
	}

	if err := s.commissionRepo.DeleteCommission(ctx, commissionID); err != nil {
		s.LogError(ctx, err, "Failed to delete commission", slog.String("commission_id", commissionID))
		return err
	}

	s.LogInfo(ctx, "Commission deleted", slog.String("commission_id", commissionID))
	return nil
}
