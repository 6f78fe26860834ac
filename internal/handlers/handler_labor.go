package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/labor_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/labor_ledger_app/internal/dto"
	"github.com/SscSPs/labor_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// laborHandler handles HTTP requests related to labors of the active workplace.
type laborHandler struct {
	dataService portssvc.DataSvcFacade
}

func newLaborHandler(ds portssvc.DataSvcFacade) *laborHandler {
	return &laborHandler{
		dataService: ds,
	}
}

// registerLaborRoutes registers routes related to labors.
func registerLaborRoutes(rg *gin.RouterGroup, dataService portssvc.DataSvcFacade) {
	h := newLaborHandler(dataService)

	labors := rg.Group("/labors")
	{
		labors.GET("", h.listLabors)
		labors.POST("", h.createLabor)
		labors.GET("/:labor_id/summary", h.getLaborSummary)
		labors.PUT("/:labor_id", h.updateLabor)
		labors.DELETE("/:labor_id", h.deleteLabor)
	}
}

// listLabors godoc
// @Summary List labors of the active workplace
// @Description Retrieves all labors of the active workplace, newest first.
// @Tags labors
// @Produce  json
// @Success 200 {array} domain.Labor
// @Router /labors [get]
func (h *laborHandler) listLabors(c *gin.Context) {
	c.JSON(http.StatusOK, h.dataService.Labors())
}

// createLabor godoc
// @Summary Add a labor to the active workplace
// @Description Creates a labor with a positive daily wage in the active workplace.
// @Tags labors
// @Accept  json
// @Produce  json
// @Param   labor body dto.CreateLaborRequest true "Labor details"
// @Success 201 {object} domain.Labor
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "No active workplace"
// @Router /labors [post]
func (h *laborHandler) createLabor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLaborRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	newLabor, err := h.dataService.AddLabor(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Labor created successfully", slog.String("labor_id", newLabor.LaborID))
	c.JSON(http.StatusCreated, newLabor)
}

// getLaborSummary godoc
// @Summary Get a labor's financial summary
// @Description Derives earned, paid, pending balance and attendance day counts for one labor.
// @Tags labors
// @Produce  json
// @Param   labor_id path string true "Labor ID"
// @Success 200 {object} domain.LaborSummary
// @Failure 404 {object} map[string]string "Labor not found"
// @Router /labors/{labor_id}/summary [get]
func (h *laborHandler) getLaborSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	laborID := c.Param("labor_id")

	summary, err := h.dataService.LaborSummary(laborID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// updateLabor godoc
// @Summary Update a labor
// @Description Updates name, phone or daily wage. Wage changes never rewrite historical attendance wages.
// @Tags labors
// @Accept  json
// @Produce  json
// @Param   labor_id path string true "Labor ID"
// @Param   labor body dto.UpdateLaborRequest true "Fields to update"
// @Success 200 {object} domain.Labor
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Labor not found"
// @Router /labors/{labor_id} [put]
func (h *laborHandler) updateLabor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	laborID := c.Param("labor_id")

	var req dto.UpdateLaborRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	updated, err := h.dataService.UpdateLabor(c.Request.Context(), laborID, req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Labor updated successfully", slog.String("labor_id", laborID))
	c.JSON(http.StatusOK, updated)
}

// deleteLabor godoc
// @Summary Delete a labor
// @Description Deletes a labor and all of its attendance and payment records.
// @Tags labors
// @Param   labor_id path string true "Labor ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Labor not found"
// @Router /labors/{labor_id} [delete]
func (h *laborHandler) deleteLabor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	laborID := c.Param("labor_id")

	if err := h.dataService.DeleteLabor(c.Request.Context(), laborID); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Labor deleted successfully", slog.String("labor_id", laborID))
	c.Status(http.StatusNoContent)
}
