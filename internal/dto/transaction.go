package dto

import (
	"time"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a cash-in or cash-out.
// Amount accepts both JSON numbers and numeric strings.
type CreateTransactionRequest struct {
	TransactionType string           `json:"transactionType" binding:"required" example:"CASH_IN"`
	Amount          *decimal.Decimal `json:"amount" swaggertype:"string" example:"500.00"`
	SeparateFee     bool             `json:"separateFee"`
	TransactionDate *time.Time       `json:"transactionDate,omitempty"`
	ReferenceNumber string           `json:"referenceNumber" binding:"max=100"`
	CustomerName    string           `json:"customerName" binding:"max=255"`
	CustomerPhone   string           `json:"customerPhone" binding:"max=50"`
	Description     string           `json:"description" binding:"max=500"`
}

// ClampedAmount returns the amount, or zero when it is missing or not positive.
// A zero amount is then rejected by the transfer engine.
func (r CreateTransactionRequest) ClampedAmount() decimal.Decimal {
	if r.Amount == nil || !r.Amount.IsPositive() {
		return decimal.Zero
	}
	return *r.Amount
}

// Metadata extracts the descriptive fields of the request.
func (r CreateTransactionRequest) Metadata() domain.TransferMetadata {
	return domain.TransferMetadata{
		SeparateFee:     r.SeparateFee,
		ReferenceNumber: r.ReferenceNumber,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		Description:     r.Description,
	}
}

// ListTransactionsParams defines the query parameters for listing transactions.
type ListTransactionsParams struct {
	Page           int    `form:"page"`
	PageSize       int    `form:"pageSize"`
	Search         string `form:"search"`
	Type           string `form:"type"`
	OrderBy        string `form:"orderBy"`
	OrderDirection string `form:"orderDirection"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	TransactionCode string          `json:"transactionCode"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Profit          decimal.Decimal `json:"profit"`
	FeeSeparated    bool            `json:"feeSeparated"`
	TransactionDate time.Time       `json:"transactionDate"`
	ReferenceNumber string          `json:"referenceNumber"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Data       []TransactionResponse `json:"data"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"pageSize"`
	Total      int                   `json:"total"`
	TotalPages int                   `json:"totalPages"`
}

// TransferResponse reports the wallet balances after a committed transfer.
type TransferResponse struct {
	From        string              `json:"from"`
	To          string              `json:"to"`
	FromBalance decimal.Decimal     `json:"fromBalance"`
	ToBalance   decimal.Decimal     `json:"toBalance"`
	Type        string              `json:"type"`
	Data        TransactionResponse `json:"data"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		TransactionCode: txn.TransactionCode,
		TransactionType: string(txn.TransactionType),
		Amount:          txn.Amount,
		Profit:          txn.Profit,
		FeeSeparated:    txn.FeeSeparated,
		TransactionDate: txn.TransactionDate,
		ReferenceNumber: txn.ReferenceNumber,
		CustomerName:    txn.CustomerName,
		CustomerPhone:   txn.CustomerPhone,
		Description:     txn.Description,
		CreatedAt:       txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ToTransferResponse converts a domain.TransferResult to TransferResponse DTO.
func ToTransferResponse(res *domain.TransferResult) TransferResponse {
	return TransferResponse{
		From:        string(res.From),
		To:          string(res.To),
		FromBalance: res.FromBalance,
		ToBalance:   res.ToBalance,
		Type:        string(res.TransactionType),
		Data:        ToTransactionResponse(&res.Transaction),
	}
}
