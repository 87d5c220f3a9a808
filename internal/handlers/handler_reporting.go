package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/cash_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/cash_wallet_app/internal/dto"
	"github.com/SscSPs/cash_wallet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to profit reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reporting handler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers the routes for reporting
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/profit-summary", h.getProfitSummary)
		reports.GET("/daily-profit", h.getDailyProfit)
	}
}

// getProfitSummary godoc
// @Summary Profit summary
// @Description Totals, per-type profit and average profit per transaction over all transactions
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ProfitSummaryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/profit-summary [get]
func (h *reportingHandler) getProfitSummary(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.ProfitSummary(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, err, "Failed to generate profit summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitSummaryResponse(summary))
}

// getDailyProfit godoc
// @Summary Daily profit
// @Description Profit and volume per day for a period
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param to query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.DailyProfitResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/daily-profit [get]
func (h *reportingHandler) getDailyProfit(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	now := time.Now().UTC()
	fromStr := c.DefaultQuery("from", time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format(dto.DateLayout))
	toStr := c.DefaultQuery("to", now.Format(dto.DateLayout))

	fromDate, err := time.Parse(dto.DateLayout, fromStr)
	if err != nil {
		logger.Warn("Invalid from date format", slog.String("from", fromStr))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'from' date format. Use YYYY-MM-DD"})
		return
	}
	toDate, err := time.Parse(dto.DateLayout, toStr)
	if err != nil {
		logger.Warn("Invalid to date format", slog.String("to", toStr))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'to' date format. Use YYYY-MM-DD"})
		return
	}

	rows, err := h.reportingService.DailyProfit(c.Request.Context(), accountID, fromDate, toDate)
	if err != nil {
		respondWithError(c, err, "Failed to generate daily profit report")
		return
	}

	logger.Info("Daily profit report generated", slog.Int("row_count", len(rows)))
	c.JSON(http.StatusOK, dto.ToDailyProfitResponse(rows, fromDate, toDate))
}
