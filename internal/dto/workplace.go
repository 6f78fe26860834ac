package dto

// --- Workplace DTOs ---

// CreateWorkplaceRequest defines data for creating a new workplace.
type CreateWorkplaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateWorkplaceRequest defines a partial update of a workplace.
// Nil fields are left unchanged.
type UpdateWorkplaceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}
