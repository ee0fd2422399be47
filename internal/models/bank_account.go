package models

// BankAccountType mirrors domain.BankAccountType at the storage layer.
type BankAccountType string

const (
	AccountCorrente     BankAccountType = "CORRENTE"
	AccountPoupanca     BankAccountType = "POUPANCA"
	AccountSalario      BankAccountType = "SALARIO"
	AccountInvestimento BankAccountType = "INVESTIMENTO"
)

// BankAccount is the bank_accounts table row. A partial unique index on
// (person_id) WHERE is_default backs the single-default invariant.
type BankAccount struct {
	BankAccountID string          `db:"bank_account_id"`
	BankID        string          `db:"bank_id"`
	PersonID      *string         `db:"person_id"`
	Branch        string          `db:"branch"`
	Account       string          `db:"account"`
	AccountType   BankAccountType `db:"account_type"`
	IsDefault     bool            `db:"is_default"`
	AuditFields
}
