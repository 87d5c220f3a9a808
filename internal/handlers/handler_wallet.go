package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portssvc "github.com/SscSPs/cash_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/cash_wallet_app/internal/dto"
)

type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{walletService: ws}
}

// RegisterWalletRoutes registers routes related to wallets.
func RegisterWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade, writeMiddleware ...gin.HandlerFunc) {
	h := newWalletHandler(walletService)

	wallets := rg.Group("/wallets")
	{
		wallets.GET("", h.listWallets)
		wallets.GET("/balances", h.getBalances)
		wallets.GET("/:kind", h.getWallet)
		wallets.POST("", h.createWallet)
		wallets.POST("/adjustment", withMiddleware(writeMiddleware, h.adjustBalance)...)
	}
}

// listWallets godoc
// @Summary List wallets
// @Description Returns the CASH and GCASH wallets, creating missing ones with a zero balance
// @Tags wallets
// @Produce  json
// @Success 200 {array} dto.WalletResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to list wallets"
// @Security BearerAuth
// @Router /wallets [get]
func (h *walletHandler) listWallets(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	wallets, err := h.walletService.ListWallets(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, err, "Failed to list wallets")
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletResponses(wallets))
}

// getBalances godoc
// @Summary Get wallet balances
// @Tags wallets
// @Produce  json
// @Success 200 {object} dto.BalancesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve balances"
// @Security BearerAuth
// @Router /wallets/balances [get]
func (h *walletHandler) getBalances(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	balances, err := h.walletService.GetBalances(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalancesResponse(balances))
}

// getWallet godoc
// @Summary Get one wallet
// @Tags wallets
// @Produce  json
// @Param   kind path string true "CASH or GCASH"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} ErrorResponse "Unknown wallet kind"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve wallet"
// @Security BearerAuth
// @Router /wallets/{kind} [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	kind, err := domain.ParseWalletKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	wallet, err := h.walletService.GetWallet(c.Request.Context(), accountID, kind)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve wallet")
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// createWallet godoc
// @Summary Create a wallet
// @Description Opens a wallet with an optional opening balance
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   wallet body dto.CreateWalletRequest true "Wallet details"
// @Success 201 {object} dto.WalletResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 409 {object} ErrorResponse "Wallet already exists"
// @Failure 500 {object} ErrorResponse "Failed to create wallet"
// @Security BearerAuth
// @Router /wallets [post]
func (h *walletHandler) createWallet(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	wallet, err := h.walletService.CreateWallet(c.Request.Context(), accountID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create wallet")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWalletResponse(wallet))
}

// adjustBalance godoc
// @Summary Adjust a wallet balance
// @Description Sets a wallet to an absolute, non-negative balance
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   adjustment body dto.AdjustBalanceRequest true "Adjustment"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 409 {object} ErrorResponse "Wallet busy, retry"
// @Failure 500 {object} ErrorResponse "Failed to adjust balance"
// @Security BearerAuth
// @Router /wallets/adjustment [post]
func (h *walletHandler) adjustBalance(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	wallet, err := h.walletService.AdjustBalance(c.Request.Context(), accountID, req)
	if err != nil {
		respondWithError(c, err, "Failed to adjust balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}
