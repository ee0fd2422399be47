package mapping

import (
	"github.com/imovelhub/imovel_finance/internal/core/domain"
	"github.com/imovelhub/imovel_finance/internal/models"
)

// ToModelBankAccount converts a domain BankAccount to a model BankAccount.
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID: d.BankAccountID,
		BankID:        d.BankID,
		PersonID:      d.PersonID,
		Branch:        d.Branch,
		Account:       d.Account,
		AccountType:   models.BankAccountType(d.AccountType),
		IsDefault:     d.IsDefault,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount.
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID: m.BankAccountID,
		BankID:        m.BankID,
		PersonID:      m.PersonID,
		Branch:        m.Branch,
		Account:       m.Account,
		AccountType:   domain.BankAccountType(m.AccountType),
		IsDefault:     m.IsDefault,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainBankAccountSlice converts a slice of model BankAccounts.
func ToDomainBankAccountSlice(ms []models.BankAccount) []domain.BankAccount {
	ds := make([]domain.BankAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankAccount(m)
	}
	return ds
}
