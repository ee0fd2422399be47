package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/imovelhub/imovel_finance/internal/core/ports/services"
	"github.com/imovelhub/imovel_finance/internal/dto"
	"github.com/imovelhub/imovel_finance/internal/middleware"
)

// reportingHandler handles the statement and aggregation read endpoints.
type reportingHandler struct {
	statementService portssvc.StatementSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(ss portssvc.StatementSvcFacade, rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{statementService: ss, reportingService: rs}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(statementService, reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/statement", h.getStatement)
		reports.GET("/summary", h.getSummary)
		reports.GET("/cashflow", h.getCashflow)
	}
}

// getStatement godoc
// @Summary Get a reconciled statement
// @Description Returns opening balance, date-ordered paid transactions with running balances, and closing balance for the window
// @Tags reports
// @Produce  json
// @Param   startDate query string true "Window start (YYYY-MM-DD)"
// @Param   endDate query string true "Window end (YYYY-MM-DD)"
// @Param   bankAccountID query string false "Restrict to one bank account"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid or inverted date range"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Router /reports/statement [get]
func (h *reportingHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for Statement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	statement, err := h.statementService.Statement(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to build statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(statement))
}

// getSummary godoc
// @Summary Get a grouped transaction summary
// @Description Returns counts and sums grouped by the requested dimension for a date window
// @Tags reports
// @Produce  json
// @Param   dimension query string true "Grouping dimension" Enums(category, person, property_type, status, month)
// @Param   from query string true "Window start (YYYY-MM-DD)"
// @Param   to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid dimension, filters or date range"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for Summary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.reportingService.TransactionSummary(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to build summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(report))
}

// getCashflow godoc
// @Summary Get the cashflow summary
// @Description Returns paid and pending totals per transaction type with net figures for the window
// @Tags reports
// @Produce  json
// @Param   from query string true "Window start (YYYY-MM-DD)"
// @Param   to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.CashflowResponse
// @Failure 400 {object} map[string]string "Invalid or inverted date range"
// @Failure 500 {object} map[string]string "Failed to build cashflow summary"
// @Router /reports/cashflow [get]
func (h *reportingHandler) getCashflow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.CashflowParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for Cashflow", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.reportingService.CashflowSummary(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to build cashflow summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashflowResponse(summary))
}
