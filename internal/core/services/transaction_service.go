package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/imovelhub/imovel_finance/internal/apperrors"
	"github.com/imovelhub/imovel_finance/internal/core/domain"
	portsrepo "github.com/imovelhub/imovel_finance/internal/core/ports/repositories"
	portssvc "github.com/imovelhub/imovel_finance/internal/core/ports/services"
	"github.com/imovelhub/imovel_finance/internal/dto"
	"github.com/imovelhub/imovel_finance/internal/validation"
)

// transactionService provides the receivable/payable ledger operations.
type transactionService struct {
	BaseService
	txnRepo         portsrepo.TransactionRepository
	personRepo      portsrepo.PersonRepository
	bankAccountRepo portsrepo.BankAccountRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepository, personRepo portsrepo.PersonRepository, bankAccountRepo portsrepo.BankAccountRepository) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:         txnRepo,
		personRepo:      personRepo,
		bankAccountRepo: bankAccountRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateCreate applies the transaction field rules and normalizes status
// and paid_at so that paid_at is set exactly when status is PAID.
func (s *transactionService) validateCreate(req *dto.CreateTransactionRequest, now time.Time) error {
	if verr := validation.Struct(req); verr != nil {
		return verr
	}

	verr := apperrors.NewValidationError()
	validation.Positive(verr, "amount", req.Amount)

	if req.Status == "" {
		req.Status = domain.TransactionPending
	}
	if req.Status == domain.TransactionPaid {
		if req.PaidAt == nil {
			paidAt := now
			req.PaidAt = &paidAt
		}
	} else if req.PaidAt != nil {
		verr.Add("paidAt", "must be empty unless status is PAID")
	}

	return validation.Finish(verr)
}

// CreateTransaction validates and persists a new ledger entry, returning it
// with related entities embedded.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	now := time.Now().UTC()
	if err := s.validateCreate(&req, now); err != nil {
		return nil, err
	}

	if req.PersonID != nil {
		if _, err := s.personRepo.FindPersonByID(ctx, *req.PersonID); err != nil {
			return nil, fmt.Errorf("counterparty %s: %w", *req.PersonID, err)
		}
	}
	if req.BankAccountID != nil {
		if _, err := s.bankAccountRepo.FindBankAccountByID(ctx, *req.BankAccountID); err != nil {
			return nil, fmt.Errorf("bank account %s: %w", *req.BankAccountID, err)
		}
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          req.Type,
		Status:        req.Status,
		Amount:        req.Amount,
		Category:      req.Category,
		Description:   req.Description,
		Reference:     req.Reference,
		DueDate:       req.DueDate,
		PaidAt:        req.PaidAt,
		Notes:         req.Notes,
		PersonID:      req.PersonID,
		ContractID:    req.ContractID,
		BankAccountID: req.BankAccountID,
		PaymentTypeID: req.PaymentTypeID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("type", string(txn.Type)), slog.String("status", string(txn.Status)))
	return s.txnRepo.FindTransactionByID(ctx, txn.TransactionID)
}

// GetTransactionByID retrieves one transaction with embedded relations.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves a filtered, token-paginated page of entries.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter, err := toTransactionFilter(params)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, *filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

func toTransactionFilter(params dto.ListTransactionsParams) (*portsrepo.TransactionFilter, error) {
	verr := apperrors.NewValidationError()
	filter := portsrepo.TransactionFilter{
		Category:      params.Category,
		PersonID:      params.PersonID,
		ContractID:    params.ContractID,
		BankAccountID: params.BankAccountID,
		DueFrom:       params.DueFrom,
		DueTo:         params.DueTo,
	}
	if params.Status != nil {
		validation.OneOf(verr, "status", *params.Status, "PENDING", "PAID", "CANCELLED")
		status := domain.TransactionStatus(*params.Status)
		filter.Status = &status
	}
	if params.Type != nil {
		validation.OneOf(verr, "type", *params.Type, "RECEIVABLE", "PAYABLE")
		txnType := domain.TransactionType(*params.Type)
		filter.Type = &txnType
	}
	if err := validation.Finish(verr); err != nil {
		return nil, err
	}
	return &filter, nil
}

// UpdateTransaction edits a pending entry. Settled entries only accept note
// appends; any touched financial field fails with ImmutableStateError.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	touchesFinancials := req.Type != nil || req.Amount != nil || req.Category != nil ||
		req.Description != nil || req.Reference != nil || req.DueDate != nil ||
		req.PersonID != nil || req.ContractID != nil || req.BankAccountID != nil ||
		req.PaymentTypeID != nil

	if txn.Status.IsTerminal() && touchesFinancials {
		return nil, &apperrors.ImmutableStateError{
			Entity: "transaction",
			ID:     transactionID,
			Status: string(txn.Status),
		}
	}

	verr := apperrors.NewValidationError()
	if req.Amount != nil {
		validation.Positive(verr, "amount", *req.Amount)
	}
	if req.Type != nil && !domain.ValidTransactionType(*req.Type) {
		verr.Add("type", "must be one of [RECEIVABLE PAYABLE]")
	}
	if req.DueDate != nil && req.DueDate.IsZero() {
		verr.Add("dueDate", "must not be empty")
	}
	if err := validation.Finish(verr); err != nil {
		return nil, err
	}

	updated := false
	if req.Type != nil {
		txn.Type = *req.Type
		updated = true
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
		updated = true
	}
	if req.Category != nil {
		txn.Category = *req.Category
		updated = true
	}
	if req.Description != nil {
		txn.Description = *req.Description
		updated = true
	}
	if req.Reference != nil {
		txn.Reference = *req.Reference
		updated = true
	}
	if req.DueDate != nil {
		txn.DueDate = *req.DueDate
		updated = true
	}
	if req.PersonID != nil {
		txn.PersonID = req.PersonID
		updated = true
	}
	if req.ContractID != nil {
		txn.ContractID = req.ContractID
		updated = true
	}
	if req.BankAccountID != nil {
		txn.BankAccountID = req.BankAccountID
		updated = true
	}
	if req.PaymentTypeID != nil {
		txn.PaymentTypeID = req.PaymentTypeID
		updated = true
	}
	if req.Notes != nil {
		txn.Notes = domain.AppendNotes(txn.Notes, *req.Notes)
		updated = true
	}

	if !updated {
		return txn, nil
	}

	txn.LastUpdatedAt = time.Now().UTC()
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

// MarkTransactionPaid settles a pending transaction. The paid-at timestamp
// may be supplied by the caller (bank-confirmed settlement dates can precede
// or follow the due date); it defaults to the call time.
func (s *transactionService) MarkTransactionPaid(ctx context.Context, transactionID string, req dto.MarkTransactionPaidRequest, userID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	// Fast-fail here for a precise error; the repository re-checks the
	// transition under a row lock before writing.
	if _, err := domain.NextTransactionStatus(transactionID, txn.Status, domain.TxnActionMarkPaid); err != nil {
		s.LogWarn(ctx, "Rejected mark-paid on non-pending transaction", slog.String("transaction_id", transactionID), slog.String("status", string(txn.Status)))
		return nil, err
	}

	if req.BankAccountID != nil {
		if _, err := s.bankAccountRepo.FindBankAccountByID(ctx, *req.BankAccountID); err != nil {
			return nil, fmt.Errorf("bank account %s: %w", *req.BankAccountID, err)
		}
	}

	now := time.Now().UTC()
	paidAt := now
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	paid, err := s.txnRepo.MarkTransactionPaid(ctx, transactionID, paidAt, req.BankAccountID, req.PaymentTypeID, req.Notes, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to mark transaction paid", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction marked paid", slog.String("transaction_id", transactionID), slog.String("paid_at", paidAt.Format(time.RFC3339)))
	return paid, nil
}

// CancelTransaction cancels a pending transaction, appending notes.
func (s *transactionService) CancelTransaction(ctx context.Context, transactionID string, req dto.CancelTransactionRequest, userID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if _, err := domain.NextTransactionStatus(transactionID, txn.Status, domain.TxnActionCancel); err != nil {
		s.LogWarn(ctx, "Rejected cancel on transaction", slog.String("transaction_id", transactionID), slog.String("status", string(txn.Status)))
		return nil, err
	}

	now := time.Now().UTC()
	cancelled, err := s.txnRepo.CancelTransaction(ctx, transactionID, req.Notes, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to cancel transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction cancelled", slog.String("transaction_id", transactionID))
	return cancelled, nil
}

// DeleteTransaction removes an entry unless it has been paid.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if txn.Status == domain.TransactionPaid {
		return &apperrors.ImmutableStateError{
			Entity: "transaction",
			ID:     transactionID,
			Status: string(txn.Status),
		}
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
