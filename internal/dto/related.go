package dto

import "github.com/imovelhub/imovel_finance/internal/core/domain"

// PersonResponse is the embedded counterparty projection.
type PersonResponse struct {
	PersonID string `json:"personID"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// ContractResponse is the embedded contract projection.
type ContractResponse struct {
	ContractID   string `json:"contractID"`
	Reference    string `json:"reference"`
	PropertyType string `json:"propertyType"`
}

// PaymentTypeResponse is the embedded payment type projection.
type PaymentTypeResponse struct {
	PaymentTypeID string `json:"paymentTypeID"`
	Name          string `json:"name"`
}

// CommissionTypeResponse is the embedded commission type projection.
type CommissionTypeResponse struct {
	CommissionTypeID string `json:"commissionTypeID"`
	Name             string `json:"name"`
}

// BankResponse is the embedded bank projection.
type BankResponse struct {
	BankID string `json:"bankID"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}

func toPersonResponse(p *domain.Person) *PersonResponse {
	if p == nil {
		return nil
	}
	return &PersonResponse{PersonID: p.PersonID, Name: p.Name, Role: string(p.Role)}
}

func toContractResponse(c *domain.Contract) *ContractResponse {
	if c == nil {
		return nil
	}
	return &ContractResponse{ContractID: c.ContractID, Reference: c.Reference, PropertyType: c.PropertyType}
}

func toPaymentTypeResponse(p *domain.PaymentType) *PaymentTypeResponse {
	if p == nil {
		return nil
	}
	return &PaymentTypeResponse{PaymentTypeID: p.PaymentTypeID, Name: p.Name}
}

func toCommissionTypeResponse(c *domain.CommissionType) *CommissionTypeResponse {
	if c == nil {
		return nil
	}
	return &CommissionTypeResponse{CommissionTypeID: c.CommissionTypeID, Name: c.Name}
}

func toBankResponse(b *domain.Bank) *BankResponse {
	if b == nil {
		return nil
	}
	return &BankResponse{BankID: b.BankID, Name: b.Name, Code: b.Code}
}
