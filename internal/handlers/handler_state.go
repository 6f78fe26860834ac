package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/labor_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/labor_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// stateHandler exposes the dashboard stats and the full UI snapshot.
type stateHandler struct {
	dataService portssvc.DataSvcFacade
}

func newStateHandler(ds portssvc.DataSvcFacade) *stateHandler {
	return &stateHandler{
		dataService: ds,
	}
}

// registerStateRoutes registers the dashboard and snapshot routes.
func registerStateRoutes(rg *gin.RouterGroup, dataService portssvc.DataSvcFacade) {
	h := newStateHandler(dataService)

	rg.GET("/dashboard", h.getDashboard)
	rg.GET("/state", h.getState)
}

// getDashboard godoc
// @Summary Get dashboard stats
// @Description Returns the active workplace's labor count, today's attendance breakdown and net pending amount.
// @Tags dashboard
// @Produce  json
// @Success 200 {object} domain.DashboardStats
// @Router /dashboard [get]
func (h *stateHandler) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.dataService.DashboardStats())
}

// getState godoc
// @Summary Get the full application state
// @Description Returns everything the UI needs in one call: workplaces, the active workplace's records, settings and dashboard stats.
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.StateResponse
// @Router /state [get]
func (h *stateHandler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StateResponse{
		Workplaces:        h.dataService.Workplaces(),
		ActiveWorkplace:   h.dataService.ActiveWorkplace(),
		Labors:            h.dataService.Labors(),
		AttendanceRecords: h.dataService.AttendanceRecords(),
		PaymentRecords:    h.dataService.PaymentRecords(),
		Settings:          h.dataService.Settings(),
		DashboardStats:    h.dataService.DashboardStats(),
		IsLoading:         h.dataService.IsLoading(),
	})
}
