package services

import (
	portsrepo "github.com/imovelhub/imovel_finance/internal/core/ports/repositories"
	portssvc "github.com/imovelhub/imovel_finance/internal/core/ports/services"
)

// NewContainer creates a service container with properly initialized
// dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo, repos.PersonRepo, repos.BankAccountRepo),
		Commission:  NewCommissionService(repos.CommissionRepo, repos.PersonRepo),
		BankAccount: NewBankAccountService(repos.BankAccountRepo, repos.PersonRepo),
		Statement:   NewStatementService(repos.ReportingRepo, repos.BankAccountRepo),
		Reporting:   NewReportingService(repos.ReportingRepo),
	}
}
