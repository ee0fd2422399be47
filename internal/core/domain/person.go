package domain

// PersonRole classifies a counterparty. People are consumed from the people
// registry, not owned by the ledger core.
type PersonRole string

const (
	RoleAgent  PersonRole = "AGENT"
	RoleClient PersonRole = "CLIENT"
	RoleOwner  PersonRole = "OWNER"
)

// Person is the read-only projection of a counterparty used for role checks
// and for embedding into ledger responses.
type Person struct {
	PersonID string     `json:"personID"`
	Name     string     `json:"name"`
	Role     PersonRole `json:"role"`
}

// PaymentType is a read-only reference to a payment method (external table).
type PaymentType struct {
	PaymentTypeID string `json:"paymentTypeID"`
	Name          string `json:"name"`
}

// CommissionType is a read-only reference to a commission category.
type CommissionType struct {
	CommissionTypeID string `json:"commissionTypeID"`
	Name             string `json:"name"`
}

// Contract is the read-only projection of a contract used for embedding and
// for the property-type reporting dimension.
type Contract struct {
	ContractID   string `json:"contractID"`
	Reference    string `json:"reference"`
	PropertyType string `json:"propertyType"`
}

// Bank is a read-only reference to a bank (external table).
type Bank struct {
	BankID string `json:"bankID"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}
