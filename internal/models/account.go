package models

// Account is the local projection of an authenticated identity.
type Account struct {
	AccountID string `db:"account_id"`
	Username  string `db:"username"`
	AuditFields
}
