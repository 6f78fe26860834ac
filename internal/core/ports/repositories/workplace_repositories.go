package repositories

import (
	"context"

	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
)

// WorkplaceReader defines read operations for workplace data.
type WorkplaceReader interface {
	// ListWorkplaces retrieves all workplaces in the store's default order
	// (newest first).
	ListWorkplaces(ctx context.Context) ([]domain.Workplace, error)

	// FindWorkplaceByID retrieves a specific workplace by its ID.
	FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error)
}

// WorkplaceWriter defines write operations for workplace data.
type WorkplaceWriter interface {
	// SaveWorkplace persists a new workplace.
	SaveWorkplace(ctx context.Context, workplace domain.Workplace) error

	// UpdateWorkplace updates name, description and active flag by primary key.
	UpdateWorkplace(ctx context.Context, workplace domain.Workplace) error

	// DeleteWorkplace removes a workplace and cascades to all labors,
	// attendance records and payments scoped to it.
	DeleteWorkplace(ctx context.Context, workplaceID string) error
}

// WorkplaceRepositoryFacade combines all workplace-related repository interfaces.
type WorkplaceRepositoryFacade interface {
	WorkplaceReader
	WorkplaceWriter
}
