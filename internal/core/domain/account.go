package domain

// Account is the owner of a pair of wallets, a fee schedule and a transaction log.
// Identity and credentials are managed by the authentication service; only the
// identifier is relevant here.
type Account struct {
	AccountID string `json:"accountID"`
	Username  string `json:"username"`
	AuditFields
}
