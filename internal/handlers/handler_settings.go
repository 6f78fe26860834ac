package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/labor_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/labor_ledger_app/internal/dto"
	"github.com/SscSPs/labor_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles HTTP requests for the singleton app settings.
type settingsHandler struct {
	dataService portssvc.DataSvcFacade
}

func newSettingsHandler(ds portssvc.DataSvcFacade) *settingsHandler {
	return &settingsHandler{
		dataService: ds,
	}
}

// registerSettingsRoutes registers routes related to application settings.
func registerSettingsRoutes(rg *gin.RouterGroup, dataService portssvc.DataSvcFacade) {
	h := newSettingsHandler(dataService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
	}
}

// getSettings godoc
// @Summary Get application settings
// @Description Retrieves the singleton settings record.
// @Tags settings
// @Produce  json
// @Success 200 {object} domain.AppSettings
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.dataService.Settings())
}

// updateSettings godoc
// @Summary Update application settings
// @Description Replaces the singleton settings record: language, theme, currency, onboarding flag and active workplace.
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} domain.AppSettings
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Workplace not found"
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	updated, err := h.dataService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Settings updated successfully")
	c.JSON(http.StatusOK, updated)
}
