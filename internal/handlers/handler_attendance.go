package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/labor_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/labor_ledger_app/internal/dto"
	"github.com/SscSPs/labor_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// attendanceHandler handles HTTP requests related to attendance marking.
type attendanceHandler struct {
	dataService portssvc.DataSvcFacade
}

func newAttendanceHandler(ds portssvc.DataSvcFacade) *attendanceHandler {
	return &attendanceHandler{
		dataService: ds,
	}
}

// registerAttendanceRoutes registers routes related to attendance records.
func registerAttendanceRoutes(rg *gin.RouterGroup, dataService portssvc.DataSvcFacade) {
	h := newAttendanceHandler(dataService)

	attendance := rg.Group("/attendance")
	{
		attendance.GET("", h.listAttendance)
		attendance.POST("", h.markAttendance)
	}
}

// listAttendance godoc
// @Summary List attendance records of the active workplace
// @Description Retrieves all attendance records of the active workplace, most recent date first.
// @Tags attendance
// @Produce  json
// @Success 200 {array} domain.AttendanceRecord
// @Router /attendance [get]
func (h *attendanceHandler) listAttendance(c *gin.Context) {
	c.JSON(http.StatusOK, h.dataService.AttendanceRecords())
}

// markAttendance godoc
// @Summary Mark attendance for a labor
// @Description Upserts the attendance record for (labor, date). Marking the same day again replaces the earlier record; the wage is snapshotted from the labor's current daily wage.
// @Tags attendance
// @Accept  json
// @Produce  json
// @Param   attendance body dto.MarkAttendanceRequest true "Attendance details"
// @Success 201 {object} domain.AttendanceRecord
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Labor not found"
// @Failure 409 {object} map[string]string "No active workplace"
// @Router /attendance [post]
func (h *attendanceHandler) markAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	record, err := h.dataService.MarkAttendance(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Attendance marked", slog.String("labor_id", req.LaborID), slog.String("date", req.Date), slog.String("status", req.Status))
	c.JSON(http.StatusCreated, record)
}
