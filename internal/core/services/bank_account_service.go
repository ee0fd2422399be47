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

// bankAccountService owns the one-default-account-per-person invariant.
type bankAccountService struct {
	BaseService
	bankAccountRepo portsrepo.BankAccountRepository
	personRepo      portsrepo.PersonRepository
}

// NewBankAccountService creates a new BankAccountService.
func NewBankAccountService(bankAccountRepo portsrepo.BankAccountRepository, personRepo portsrepo.PersonRepository) portssvc.BankAccountSvcFacade {
	return &bankAccountService{
		bankAccountRepo: bankAccountRepo,
		personRepo:      personRepo,
	}
}

var _ portssvc.BankAccountSvcFacade = (*bankAccountService)(nil)

// CreateBankAccount registers an account. Requesting is_default clears the
// person's previous default inside the same database transaction.
func (s *bankAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, creatorUserID string) (*domain.BankAccount, error) {
	if verr := validation.Struct(&req); verr != nil {
		return nil, verr
	}
	if req.IsDefault && req.PersonID == nil {
		return nil, apperrors.NewValidationError().Add("isDefault", "requires a personID")
	}
	if req.PersonID != nil {
		if _, err := s.personRepo.FindPersonByID(ctx, *req.PersonID); err != nil {
			return nil, fmt.Errorf("person %s: %w", *req.PersonID, err)
		}
	}

	now := time.Now().UTC()
	account := domain.BankAccount{
		BankAccountID: uuid.NewString(),
		BankID:        req.BankID,
		PersonID:      req.PersonID,
		Branch:        req.Branch,
		Account:       req.Account,
		AccountType:   req.AccountType,
		IsDefault:     req.IsDefault,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.bankAccountRepo.SaveBankAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save bank account", slog.String("bank_account_id", account.BankAccountID))
		return nil, fmt.Errorf("failed to save bank account: %w", err)
	}

	s.LogInfo(ctx, "Bank account created", slog.String("bank_account_id", account.BankAccountID), slog.Bool("is_default", account.IsDefault))
	return s.bankAccountRepo.FindBankAccountByID(ctx, account.BankAccountID)
}

// GetBankAccountByID retrieves one account with embedded relations.
func (s *bankAccountService) GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	account, err := s.bankAccountRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bank account", slog.String("bank_account_id", bankAccountID))
		}
		return nil, err
	}
	return account, nil
}

// ListBankAccounts retrieves a filtered page of accounts.
func (s *bankAccountService) ListBankAccounts(ctx context.Context, params dto.ListBankAccountsParams) ([]domain.BankAccount, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	accounts, err := s.bankAccountRepo.ListBankAccounts(ctx, portsrepo.BankAccountFilter{
		PersonID: params.PersonID,
		BankID:   params.BankID,
	}, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank accounts")
		return nil, fmt.Errorf("failed to retrieve bank accounts: %w", err)
	}
	return accounts, nil
}

// UpdateBankAccount edits an account, applying default handling when
// is_default is being turned on.
func (s *bankAccountService) UpdateBankAccount(ctx context.Context, bankAccountID string, req dto.UpdateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	account, err := s.bankAccountRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.BankID != nil {
		account.BankID = *req.BankID
		updated = true
	}
	if req.Branch != nil {
		account.Branch = *req.Branch
		updated = true
	}
	if req.Account != nil {
		account.Account = *req.Account
		updated = true
	}
	if req.AccountType != nil {
		if !domain.ValidBankAccountType(*req.AccountType) {
			return nil, apperrors.NewValidationError().Add("accountType", "must be one of [CORRENTE POUPANCA SALARIO INVESTIMENTO]")
		}
		account.AccountType = *req.AccountType
		updated = true
	}
	if req.IsDefault != nil {
		if *req.IsDefault && account.PersonID == nil {
			return nil, apperrors.NewValidationError().Add("isDefault", "requires a personID")
		}
		account.IsDefault = *req.IsDefault
		updated = true
	}

	if !updated {
		return account, nil
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.bankAccountRepo.UpdateBankAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update bank account", slog.String("bank_account_id", bankAccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Bank account updated", slog.String("bank_account_id", bankAccountID))
	return s.bankAccountRepo.FindBankAccountByID(ctx, bankAccountID)
}

// SetDefaultBankAccount atomically makes the given account the person's only
// default.
func (s *bankAccountService) SetDefaultBankAccount(ctx context.Context, bankAccountID string, userID string) (*domain.BankAccount, error) {
	account, err := s.bankAccountRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}
	if account.PersonID == nil {
		return nil, apperrors.NewValidationError().Add("personID", "account has no owner, cannot be a default")
	}

	updated, err := s.bankAccountRepo.SetDefaultBankAccount(ctx, bankAccountID, *account.PersonID, userID, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to set default bank account", slog.String("bank_account_id", bankAccountID), slog.String("person_id", *account.PersonID))
		return nil, err
	}

	s.LogInfo(ctx, "Default bank account set", slog.String("bank_account_id", bankAccountID), slog.String("person_id", *account.PersonID))
	return updated, nil
}

// DeleteBankAccount removes the account unless transactions reference it.
func (s *bankAccountService) DeleteBankAccount(ctx context.Context, bankAccountID string) error {
	if _, err := s.bankAccountRepo.FindBankAccountByID(ctx, bankAccountID); err != nil {
		return err
	}

	if err := s.bankAccountRepo.DeleteBankAccount(ctx, bankAccountID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogWarn(ctx, "Bank account delete blocked by references", slog.String("bank_account_id", bankAccountID))
		} else {
			s.LogError(ctx, err, "Failed to delete bank account", slog.String("bank_account_id", bankAccountID))
		}
		return err
	}

	s.LogInfo(ctx, "Bank account deleted", slog.String("bank_account_id", bankAccountID))
	return nil
}
