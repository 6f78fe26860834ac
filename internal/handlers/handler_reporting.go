package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/labor_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/labor_ledger_app/internal/dto"
	"github.com/SscSPs/labor_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for period reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/reports", h.generateReport)
}

// generateReport godoc
// @Summary Generate a period report
// @Description Aggregates the active workplace's attendance and payments over the requested period (week, month or custom) and ranks the top-5 earners.
// @Tags reports
// @Produce  json
// @Param   period query string true "Report period" Enums(week, month, custom)
// @Param   startDate query string false "Custom period start (YYYY-MM-DD)"
// @Param   endDate query string false "Custom period end (YYYY-MM-DD)"
// @Success 200 {object} domain.ReportData
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "No active workplace"
// @Router /reports [get]
func (h *reportingHandler) generateReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	report, err := h.reportingService.GenerateReport(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Report generated", slog.String("period", req.Period))
	c.JSON(http.StatusOK, report)
}
