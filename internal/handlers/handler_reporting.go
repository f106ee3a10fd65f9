package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/SscSPs/roundup_ledger/internal/dto"
	"github.com/SscSPs/roundup_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type reportingHandler struct {
	reportingService portssvc.ReportingService
}

type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvc
}

// RegisterReportingRoutes registers /reports and /analytics.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, analyticsService portssvc.AnalyticsSvc) {
	rh := &reportingHandler{reportingService: reportingService}
	rg.GET("/reports/account-summary", rh.accountSummary)

	ah := &analyticsHandler{analyticsService: analyticsService}
	rg.GET("/analytics/summary", ah.financialSummary)
}

// accountSummary godoc
// @Summary Per-account summary
// @Description Sums debits and credits per account for entries dated from..to (both inclusive). Balances are signed by each account's normal balance.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.AccountSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/account-summary [get]
func (h *reportingHandler) accountSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.AccountSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, "AccountSummary query", err)
		return
	}

	from, err := time.Parse(dateLayout, params.From)
	if err != nil {
		bindError(c, logger, "AccountSummary from", err)
		return
	}
	to, err := time.Parse(dateLayout, params.To)
	if err != nil {
		bindError(c, logger, "AccountSummary to", err)
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not be before from"})
		return
	}

	report, err := h.reportingService.AccountSummary(c.Request.Context(), from, to.AddDate(0, 0, 1))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to build account summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountSummaryResponse(report, params.From, params.To))
}

// financialSummary godoc
// @Summary External financial summary
// @Description Proxies the period summary of the analytics backend. Display only; on failure returns 502 with retryable=true.
// @Tags reports
// @Produce json
// @Param period query string false "Period" Enums(day, week, month, quarter, year) default(month)
// @Success 200 {object} domain.FinancialSummary
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/summary [get]
func (h *analyticsHandler) financialSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.FinancialSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, "FinancialSummary query", err)
		return
	}

	summary, err := h.analyticsService.FetchSummary(c.Request.Context(), params.Period)
	if err != nil {
		writeServiceError(c, logger, err, "Financial summary is unavailable")
		return
	}

	c.JSON(http.StatusOK, summary)
}
