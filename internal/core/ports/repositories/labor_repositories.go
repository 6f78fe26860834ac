package repositories

import (
	"context"

	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
)

// LaborReader defines read operations for labor data.
type LaborReader interface {
	// ListLabors retrieves all labors across workplaces, newest first.
	ListLabors(ctx context.Context) ([]domain.Labor, error)

	// FindLaborByID retrieves a specific labor by its ID.
	FindLaborByID(ctx context.Context, laborID string) (*domain.Labor, error)
}

// LaborWriter defines write operations for labor data.
type LaborWriter interface {
	// SaveLabor persists a new labor. Fails with a foreign key error if the
	// labor's workplace does not exist.
	SaveLabor(ctx context.Context, labor domain.Labor) error

	// UpdateLabor updates name, phone and daily wage by primary key.
	// Stored attendance wages are snapshots and are not touched.
	UpdateLabor(ctx context.Context, labor domain.Labor) error

	// DeleteLabor removes a labor and cascades to its attendance and payments.
	DeleteLabor(ctx context.Context, laborID string) error
}

// LaborRepositoryFacade combines all labor-related repository interfaces.
type LaborRepositoryFacade interface {
	LaborReader
	LaborWriter
}
