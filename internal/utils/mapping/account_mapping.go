package mapping

import (
	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/SscSPs/cash_wallet_app/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		Username:    m.Username,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
