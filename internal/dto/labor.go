package dto

import "github.com/shopspring/decimal"

// --- Labor DTOs ---

// CreateLaborRequest defines data for adding a labor to the active workplace.
// DailyWage must be positive; positivity is validated by the service so the
// same rule applies to every caller, not only HTTP.
type CreateLaborRequest struct {
	Name      string          `json:"name" binding:"required"`
	Phone     string          `json:"phone" binding:"required"`
	DailyWage decimal.Decimal `json:"dailyWage" binding:"required"`
}

// UpdateLaborRequest defines a partial update of a labor. Nil fields are left
// unchanged. Changing DailyWage never rewrites historical attendance wages.
type UpdateLaborRequest struct {
	Name      *string          `json:"name,omitempty"`
	Phone     *string          `json:"phone,omitempty"`
	DailyWage *decimal.Decimal `json:"dailyWage,omitempty"`
}
