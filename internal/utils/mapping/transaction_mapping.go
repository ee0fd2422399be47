package mapping

import (
	"github.com/imovelhub/imovel_finance/internal/core/domain"
	"github.com/imovelhub/imovel_finance/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Type:          models.TransactionType(d.Type),
		Status:        models.TransactionStatus(d.Status),
		Amount:        d.Amount,
		Category:      d.Category,
		Description:   d.Description,
		Reference:     d.Reference,
		DueDate:       d.DueDate,
		PaidAt:        d.PaidAt,
		Notes:         d.Notes,
		PersonID:      d.PersonID,
		ContractID:    d.ContractID,
		BankAccountID: d.BankAccountID,
		PaymentTypeID: d.PaymentTypeID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Type:          domain.TransactionType(m.Type),
		Status:        domain.TransactionStatus(m.Status),
		Amount:        m.Amount,
		Category:      m.Category,
		Description:   m.Description,
		Reference:     m.Reference,
		DueDate:       m.DueDate,
		PaidAt:        m.PaidAt,
		Notes:         m.Notes,
		PersonID:      m.PersonID,
		ContractID:    m.ContractID,
		BankAccountID: m.BankAccountID,
		PaymentTypeID: m.PaymentTypeID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
