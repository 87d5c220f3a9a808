package services

import (
	portsrepo "github.com/SscSPs/cash_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cash_wallet_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transfer:  NewTransferService(repos.AccountRepo, repos.WalletRepo, repos.ProfitTierRepo, repos.TransactionRepo),
		Wallet:    NewWalletService(repos.AccountRepo, repos.WalletRepo),
		Profit:    NewProfitService(repos.AccountRepo, repos.ProfitTierRepo, repos.TierCache),
		Reporting: NewReportingService(repos.ReportingRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransferSvcFacade = (*transferService)(nil)
	_ portssvc.WalletSvcFacade   = (*walletService)(nil)
	_ portssvc.ProfitSvcFacade   = (*profitService)(nil)
	_ portssvc.ReportingService  = (*reportingService)(nil)
)
