package handlers

import (
	"errors"
	"log/slog"

	"github.com/SscSPs/labor_ledger_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status and a JSON error body.
// AppError messages are safe to expose; other errors return a generic message
// so storage internals never leak to clients.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	status := apperrors.StatusCode(err)

	message := "Internal server error"
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	} else if status < 500 {
		message = err.Error()
	}

	if status >= 500 {
		logger.Error("Request failed", slog.Int("status", status), slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": message})
}

// respondBindError reports a malformed or invalid request body.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(400, gin.H{"error": "Invalid request format: " + err.Error()})
}
