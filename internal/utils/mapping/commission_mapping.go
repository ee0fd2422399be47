package mapping

import (
	"github.com/imovelhub/imovel_finance/internal/core/domain"
	"github.com/imovelhub/imovel_finance/internal/models"
)

// ToModelCommission converts a domain Commission to a model Commission.
func ToModelCommission(d domain.Commission) models.Commission {
	return models.Commission{
		CommissionID:     d.CommissionID,
		PersonID:         d.PersonID,
		ContractID:       d.ContractID,
		CommissionTypeID: d.CommissionTypeID,
		Amount:           d.Amount,
		Percentage:       d.Percentage,
		Status:           models.CommissionStatus(d.Status),
		PaidAt:           d.PaidAt,
		Description:      d.Description,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainCommission converts a model Commission to a domain Commission.
func ToDomainCommission(m models.Commission) domain.Commission {
	return domain.Commission{
		CommissionID:     m.CommissionID,
		PersonID:         m.PersonID,
		ContractID:       m.ContractID,
		CommissionTypeID: m.CommissionTypeID,
		Amount:           m.Amount,
		Percentage:       m.Percentage,
		Status:           domain.CommissionStatus(m.Status),
		PaidAt:           m.PaidAt,
		Description:      m.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainCommissionSlice converts a slice of model Commissions.
func ToDomainCommissionSlice(ms []models.Commission) []domain.Commission {
	ds := make([]domain.Commission, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCommission(m)
	}
	return ds
}
