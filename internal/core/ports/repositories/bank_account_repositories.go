package repositories

import (
	"context"
	"time"

	"github.com/imovelhub/imovel_finance/internal/core/domain"
)

// BankAccountFilter narrows bank account listings. Nil fields are ignored.
type BankAccountFilter struct {
	PersonID *string
	BankID   *string
}

// BankAccountRepository owns the bank_accounts table and the single-default
// invariant: for any person at most one account is flagged default.
type BankAccountRepository interface {
	// SaveBankAccount inserts the account. When IsDefault is set, other
	// defaults of the same person are cleared inside the same transaction.
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, filter BankAccountFilter, limit, offset int) ([]domain.BankAccount, error)
	// UpdateBankAccount persists edits, applying the same clear-then-set
	// handling when IsDefault is being turned on.
	UpdateBankAccount(ctx context.Context, account domain.BankAccount) error
	// SetDefaultBankAccount atomically clears is_default on every other
	// account of the person and sets it on the given account.
	SetDefaultBankAccount(ctx context.Context, bankAccountID, personID, userID string, now time.Time) (*domain.BankAccount, error)
	// DeleteBankAccount removes the account unless transactions reference it,
	// in which case it fails with ErrConflict.
	DeleteBankAccount(ctx context.Context, bankAccountID string) error
}
