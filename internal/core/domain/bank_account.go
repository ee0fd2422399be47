package domain

// BankAccountType follows the Brazilian banking vocabulary used by the
// people registry.
type BankAccountType string

const (
	AccountCorrente     BankAccountType = "CORRENTE"
	AccountPoupanca     BankAccountType = "POUPANCA"
	AccountSalario      BankAccountType = "SALARIO"
	AccountInvestimento BankAccountType = "INVESTIMENTO"
)

// ValidBankAccountType reports whether t is a known account type.
func ValidBankAccountType(t BankAccountType) bool {
	switch t {
	case AccountCorrente, AccountPoupanca, AccountSalario, AccountInvestimento:
		return true
	}
	return false
}

// BankAccount is a registered bank account, optionally owned by a person.
// For a given person at most one account has IsDefault set; the registry
// enforces this atomically on every default change.
type BankAccount struct {
	BankAccountID string          `json:"bankAccountID"`
	BankID        string          `json:"bankID"`
	PersonID      *string         `json:"personID"`
	Branch        string          `json:"branch"`
	Account       string          `json:"account"`
	AccountType   BankAccountType `json:"accountType"`
	IsDefault     bool            `json:"isDefault"`
	AuditFields

	// Related entities, populated on detail reads for display.
	Bank   *Bank   `json:"bank,omitempty"`
	Person *Person `json:"person,omitempty"`
}
