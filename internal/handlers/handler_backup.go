package handlers

import (
	"io"
	"net/http"

	portssvc "github.com/SscSPs/labor_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/labor_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// backupHandler handles export, import and factory reset of the full dataset.
type backupHandler struct {
	dataService portssvc.DataSvcFacade
}

func newBackupHandler(ds portssvc.DataSvcFacade) *backupHandler {
	return &backupHandler{
		dataService: ds,
	}
}

// registerBackupRoutes registers routes for backup and restore.
func registerBackupRoutes(rg *gin.RouterGroup, dataService portssvc.DataSvcFacade) {
	h := newBackupHandler(dataService)

	backup := rg.Group("/backup")
	{
		backup.GET("/export", h.exportData)
		backup.POST("/import", h.importData)
		backup.POST("/reset", h.resetData)
	}
}

// exportData godoc
// @Summary Export all data
// @Description Produces a complete backup document of all workplaces, labors, attendance, payments and settings.
// @Tags backup
// @Produce  json
// @Success 200 {object} domain.BackupDocument
// @Router /backup/export [get]
func (h *backupHandler) exportData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	doc, err := h.dataService.ExportData(c.Request.Context())
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="labor-ledger-backup.json"`)
	c.JSON(http.StatusOK, doc)
}

// importData godoc
// @Summary Import a backup document
// @Description Atomically replaces all persisted data with the uploaded document. On any failure the previous state is kept.
// @Tags backup
// @Accept  json
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Malformed backup document"
// @Router /backup/import [post]
func (h *backupHandler) importData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondBindError(c, logger, err)
		return
	}

	if err := h.dataService.ImportData(c.Request.Context(), raw); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Backup imported successfully")
	c.Status(http.StatusNoContent)
}

// resetData godoc
// @Summary Reset all data
// @Description Deletes every workplace, labor, attendance and payment record and resets onboarding state. Settings preferences are kept.
// @Tags backup
// @Success 204 "No Content"
// @Router /backup/reset [post]
func (h *backupHandler) resetData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.dataService.ResetData(c.Request.Context()); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("All data reset")
	c.Status(http.StatusNoContent)
}
