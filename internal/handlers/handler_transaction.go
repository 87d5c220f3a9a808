package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portssvc "github.com/SscSPs/cash_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/cash_wallet_app/internal/dto"
	"github.com/SscSPs/cash_wallet_app/internal/middleware"
)

// transactionHandler handles HTTP requests related to cash-in / cash-out transactions.
type transactionHandler struct {
	transferService portssvc.TransferSvcFacade
}

func newTransactionHandler(ts portssvc.TransferSvcFacade) *transactionHandler {
	return &transactionHandler{transferService: ts}
}

// withMiddleware returns mw followed by h without aliasing mw.
func withMiddleware(mw []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(mw)+1)
	chain = append(chain, mw...)
	return append(chain, h)
}

// RegisterTransactionRoutes registers routes related to transactions. writeMiddleware
// runs before the money-moving endpoint only.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade, writeMiddleware ...gin.HandlerFunc) {
	h := newTransactionHandler(transferService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", withMiddleware(writeMiddleware, h.createTransaction)...)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
	}
}

// createTransaction godoc
// @Summary Record a cash-in or cash-out
// @Description Moves money between the CASH and GCASH wallets of the logged-in account, charging the tiered profit
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown transaction type"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account or wallet not found"
// @Failure 409 {object} ErrorResponse "Wallets busy, retry"
// @Failure 422 {object} InsufficientBalanceResponse "Insufficient balance"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Failed to record transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txnType := domain.TransactionType(strings.ToUpper(strings.TrimSpace(req.TransactionType)))
	logger.Info("Received request to record transaction",
		slog.String("transaction_type", string(txnType)),
		slog.Bool("separate_fee", req.SeparateFee))

	var (
		result *domain.TransferResult
		err    error
	)
	switch txnType {
	case domain.CashIn:
		result, err = h.transferService.CashIn(c.Request.Context(), accountID, req)
	case domain.CashOut:
		result, err = h.transferService.CashOut(c.Request.Context(), accountID, req)
	default:
		logger.Warn("Unknown transaction type", slog.String("transaction_type", req.TransactionType))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid transaction type. Use CASH_IN or CASH_OUT."})
		return
	}
	if err != nil {
		respondWithError(c, err, "Failed to record transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransferResponse(result))
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns one page of the account's transactions, newest first by default
// @Tags transactions
// @Produce  json
// @Param   page query int false "Page number (default 1)"
// @Param   pageSize query int false "Page size (1-50, default 10)"
// @Param   search query string false "Matches customer name, reference number or phone"
// @Param   type query string false "all, CASH_IN or CASH_OUT"
// @Param   orderBy query string false "transactionDate, amount, profit or createdAt"
// @Param   orderDirection query string false "ASC or DESC"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	resp, err := h.transferService.ListTransactions(c.Request.Context(), accountID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Malformed transaction ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	txn, err := h.transferService.GetTransaction(c.Request.Context(), accountID, c.Param("transactionID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
