package mapping

import (
	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/SscSPs/cash_wallet_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		TransactionType: string(d.TransactionType),
		Amount:          d.Amount,
		Profit:          d.Profit,
		FeeSeparated:    d.FeeSeparated,
		TransactionCode: d.TransactionCode,
		TransactionDate: d.TransactionDate,
		ReferenceNumber: d.ReferenceNumber,
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		Description:     d.Description,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		Profit:          m.Profit,
		FeeSeparated:    m.FeeSeparated,
		TransactionCode: m.TransactionCode,
		TransactionDate: m.TransactionDate,
		ReferenceNumber: m.ReferenceNumber,
		CustomerName:    m.CustomerName,
		CustomerPhone:   m.CustomerPhone,
		Description:     m.Description,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
