package domain

import "time"

// Workplace is an isolated partition of labors, attendance and payments.
// Every other record in the system is owned by exactly one workplace.
type Workplace struct {
	WorkplaceID string    `json:"id" db:"workplace_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// DefaultWorkplaceName is used when a workplace is auto-created on first launch.
const DefaultWorkplaceName = "Default Workplace"
