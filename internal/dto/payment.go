package dto

import "github.com/shopspring/decimal"

// --- Payment DTOs ---

// CreatePaymentRequest defines data for recording a payment to a labor.
// Amount must be positive; positivity is validated by the service.
type CreatePaymentRequest struct {
	LaborID string          `json:"laborId" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Date    string          `json:"date" binding:"required,datetime=2006-01-02"`
	Type    string          `json:"type" binding:"required,oneof=daily weekly monthly partial"`
	Notes   string          `json:"notes"`
}

// UpdatePaymentRequest defines a partial update of a payment. Nil fields are
// left unchanged.
type UpdatePaymentRequest struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Date   *string          `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Type   *string          `json:"type,omitempty" binding:"omitempty,oneof=daily weekly monthly partial"`
	Notes  *string          `json:"notes,omitempty"`
}
