package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo     AccountReader
	WalletRepo      WalletRepositoryWithTx
	ProfitTierRepo  ProfitTierRepository
	TransactionRepo TransactionRepositoryFacade
	ReportingRepo   ReportingRepository
	TierCache       ProfitTierCache
}
