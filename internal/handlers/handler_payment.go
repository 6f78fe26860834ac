package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/labor_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/labor_ledger_app/internal/dto"
	"github.com/SscSPs/labor_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payment records.
type paymentHandler struct {
	dataService portssvc.DataSvcFacade
}

func newPaymentHandler(ds portssvc.DataSvcFacade) *paymentHandler {
	return &paymentHandler{
		dataService: ds,
	}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, dataService portssvc.DataSvcFacade) {
	h := newPaymentHandler(dataService)

	payments := rg.Group("/payments")
	{
		payments.GET("", h.listPayments)
		payments.POST("", h.createPayment)
		payments.PUT("/:payment_id", h.updatePayment)
		payments.DELETE("/:payment_id", h.deletePayment)
	}
}

// listPayments godoc
// @Summary List payment records of the active workplace
// @Description Retrieves all payment records of the active workplace, most recent date first.
// @Tags payments
// @Produce  json
// @Success 200 {array} domain.PaymentRecord
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	c.JSON(http.StatusOK, h.dataService.PaymentRecords())
}

// createPayment godoc
// @Summary Record a payment to a labor
// @Description Records a payment with a positive amount. Multiple payments per labor per date are allowed.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} domain.PaymentRecord
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Labor not found"
// @Failure 409 {object} map[string]string "No active workplace"
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	payment, err := h.dataService.AddPayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Payment recorded", slog.String("payment_id", payment.PaymentID), slog.String("labor_id", req.LaborID))
	c.JSON(http.StatusCreated, payment)
}

// updatePayment godoc
// @Summary Update a payment
// @Description Updates amount, date, type or notes of a payment record.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment_id path string true "Payment ID"
// @Param   payment body dto.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} domain.PaymentRecord
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Payment not found"
// @Router /payments/{payment_id} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("payment_id")

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	updated, err := h.dataService.UpdatePayment(c.Request.Context(), paymentID, req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Payment updated successfully", slog.String("payment_id", paymentID))
	c.JSON(http.StatusOK, updated)
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Deletes a single payment record.
// @Tags payments
// @Param   payment_id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Payment not found"
// @Router /payments/{payment_id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("payment_id")

	if err := h.dataService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Payment deleted successfully", slog.String("payment_id", paymentID))
	c.Status(http.StatusNoContent)
}
