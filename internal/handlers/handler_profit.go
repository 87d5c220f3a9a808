package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	portssvc "github.com/SscSPs/cash_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/cash_wallet_app/internal/dto"
	"github.com/SscSPs/cash_wallet_app/internal/middleware"
)

// profitHandler serves the fee schedule and profit preview.
type profitHandler struct {
	profitService portssvc.ProfitSvcFacade
}

func newProfitHandler(ps portssvc.ProfitSvcFacade) *profitHandler {
	return &profitHandler{profitService: ps}
}

// RegisterProfitRoutes registers routes related to fee tiers.
func RegisterProfitRoutes(rg *gin.RouterGroup, profitService portssvc.ProfitSvcFacade) {
	h := newProfitHandler(profitService)

	profits := rg.Group("/profits")
	{
		profits.GET("/fee-tiers", h.getTiers)
		profits.POST("/fee-tiers", h.saveTiers)
		profits.GET("/preview", h.previewProfit)
	}
}

// getTiers godoc
// @Summary Get the fee schedule
// @Tags profits
// @Produce  json
// @Success 200 {array} dto.ProfitTierResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to retrieve fee tiers"
// @Security BearerAuth
// @Router /profits/fee-tiers [get]
func (h *profitHandler) getTiers(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	tiers, err := h.profitService.GetTiers(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve fee tiers")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitTierResponses(tiers))
}

// saveTiers godoc
// @Summary Replace the fee schedule
// @Description Validates and replaces every tier of the account in one transaction. An empty list clears the schedule.
// @Tags profits
// @Accept  json
// @Produce  json
// @Param   tiers body dto.SaveProfitTiersRequest true "New schedule"
// @Success 200 {array} dto.ProfitTierResponse
// @Failure 400 {object} ErrorResponse "Invalid schedule"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to save fee tiers"
// @Security BearerAuth
// @Router /profits/fee-tiers [post]
func (h *profitHandler) saveTiers(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	var req dto.SaveProfitTiersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Received request to replace fee tiers", slog.Int("tier_count", len(req.ProfitTiers)))

	tiers, err := h.profitService.SaveTiers(c.Request.Context(), accountID, req)
	if err != nil {
		respondWithError(c, err, "Failed to save fee tiers")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitTierResponses(tiers))
}

// previewProfit godoc
// @Summary Preview the profit for an amount
// @Tags profits
// @Produce  json
// @Param   amount query string true "Amount to price"
// @Success 200 {object} dto.ProfitPreviewResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute profit"
// @Security BearerAuth
// @Router /profits/preview [get]
func (h *profitHandler) previewProfit(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'amount' query parameter"})
		return
	}
	profit, err := h.profitService.ComputeProfit(c.Request.Context(), accountID, amount)
	if err != nil {
		respondWithError(c, err, "Failed to compute profit")
		return
	}
	c.JSON(http.StatusOK, dto.ProfitPreviewResponse{Amount: amount, Profit: profit})
}
