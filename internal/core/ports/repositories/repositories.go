package repositories

// RepositoryProvider bundles every repository implementation so service
// construction receives a single dependency.
type RepositoryProvider struct {
	TransactionRepo TransactionRepository
	CommissionRepo  CommissionRepository
	BankAccountRepo BankAccountRepository
	PersonRepo      PersonRepository
	ReportingRepo   ReportingRepository
}
