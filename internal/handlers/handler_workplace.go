package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/labor_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/labor_ledger_app/internal/dto"
	"github.com/SscSPs/labor_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workplaceHandler handles HTTP requests related to workplaces.
type workplaceHandler struct {
	dataService portssvc.DataSvcFacade
}

// newWorkplaceHandler creates a new workplaceHandler.
func newWorkplaceHandler(ds portssvc.DataSvcFacade) *workplaceHandler {
	return &workplaceHandler{
		dataService: ds,
	}
}

// registerWorkplaceRoutes registers routes related to workplaces.
func registerWorkplaceRoutes(rg *gin.RouterGroup, dataService portssvc.DataSvcFacade) {
	h := newWorkplaceHandler(dataService)

	workplaces := rg.Group("/workplaces")
	{
		workplaces.GET("", h.listWorkplaces)
		workplaces.POST("", h.createWorkplace)
		workplaces.PUT("/:workplace_id", h.updateWorkplace)
		workplaces.DELETE("/:workplace_id", h.deleteWorkplace)
		workplaces.POST("/:workplace_id/activate", h.activateWorkplace)
	}
}

// listWorkplaces godoc
// @Summary List all workplaces
// @Description Retrieves all workplaces, newest first.
// @Tags workplaces
// @Produce  json
// @Success 200 {array} domain.Workplace
// @Router /workplaces [get]
func (h *workplaceHandler) listWorkplaces(c *gin.Context) {
	c.JSON(http.StatusOK, h.dataService.Workplaces())
}

// createWorkplace godoc
// @Summary Create a new workplace
// @Description Creates a new workplace partition for labors, attendance and payments.
// @Tags workplaces
// @Accept  json
// @Produce  json
// @Param   workplace body dto.CreateWorkplaceRequest true "Workplace details"
// @Success 201 {object} domain.Workplace
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /workplaces [post]
func (h *workplaceHandler) createWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger.Info("Received request to create workplace", slog.String("workplace_name", req.Name))

	newWorkplace, err := h.dataService.AddWorkplace(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Workplace created successfully", slog.String("workplace_id", newWorkplace.WorkplaceID))
	c.JSON(http.StatusCreated, newWorkplace)
}

// updateWorkplace godoc
// @Summary Update a workplace
// @Description Updates the name, description or active flag of a workplace.
// @Tags workplaces
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   workplace body dto.UpdateWorkplaceRequest true "Fields to update"
// @Success 200 {object} domain.Workplace
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Workplace not found"
// @Router /workplaces/{workplace_id} [put]
func (h *workplaceHandler) updateWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")

	var req dto.UpdateWorkplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	updated, err := h.dataService.UpdateWorkplace(c.Request.Context(), workplaceID, req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Workplace updated successfully", slog.String("workplace_id", workplaceID))
	c.JSON(http.StatusOK, updated)
}

// deleteWorkplace godoc
// @Summary Delete a workplace
// @Description Deletes a workplace and all labors, attendance and payments scoped to it. If it was active, selection falls back to the next workplace.
// @Tags workplaces
// @Param   workplace_id path string true "Workplace ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Workplace not found"
// @Router /workplaces/{workplace_id} [delete]
func (h *workplaceHandler) deleteWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")

	if err := h.dataService.DeleteWorkplace(c.Request.Context(), workplaceID); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Workplace deleted successfully", slog.String("workplace_id", workplaceID))
	c.Status(http.StatusNoContent)
}

// activateWorkplace godoc
// @Summary Set the active workplace
// @Description Switches the active workplace; all labor, attendance and payment reads are scoped to it.
// @Tags workplaces
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Success 200 {object} domain.Workplace
// @Failure 404 {object} map[string]string "Workplace not found"
// @Router /workplaces/{workplace_id}/activate [post]
func (h *workplaceHandler) activateWorkplace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID := c.Param("workplace_id")

	if err := h.dataService.SetActiveWorkplace(c.Request.Context(), workplaceID); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Active workplace changed", slog.String("workplace_id", workplaceID))
	c.JSON(http.StatusOK, h.dataService.ActiveWorkplace())
}
