package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/cash_wallet_app/internal/apperrors"
	"github.com/SscSPs/cash_wallet_app/internal/middleware"
)

// ErrorResponse is a generic error response structure for handlers.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// InsufficientBalanceResponse is returned with 422 when a wallet cannot cover a transfer.
type InsufficientBalanceResponse struct {
	Error     string `json:"error"`
	Wallet    string `json:"wallet"`
	Balance   string `json:"balance"`
	Requested string `json:"requested"`
}

// respondWithBindError answers a request whose body or query could not be bound.
func respondWithBindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: details})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// respondWithError maps service errors onto HTTP statuses. Unexpected errors are
// logged in full and answered with fallbackMsg.
func respondWithError(c *gin.Context, err error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var insufficient *apperrors.InsufficientBalanceError
	switch {
	case errors.As(err, &insufficient):
		logger.Warn("Insufficient balance", slog.String("wallet", insufficient.WalletKind))
		c.JSON(http.StatusUnprocessableEntity, InsufficientBalanceResponse{
			Error:     insufficient.Error(),
			Wallet:    insufficient.WalletKind,
			Balance:   insufficient.Balance.String(),
			Requested: insufficient.Requested.String(),
		})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConcurrency):
		logger.Warn("Concurrent modification", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: "The wallets are busy, please retry"})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallbackMsg})
	}
}

// requireAccountID reads the authenticated account or answers 401.
func requireAccountID(c *gin.Context) (string, bool) {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return accountID, true
}
