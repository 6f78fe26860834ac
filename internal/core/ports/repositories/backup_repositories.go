package repositories

import (
	"context"

	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
)

// BackupRepository serializes and restores the entire persisted state.
type BackupRepository interface {
	// ExportAll produces a complete, lossless snapshot of every collection
	// plus settings, stamped with the export time and schema version.
	ExportAll(ctx context.Context) (*domain.BackupDocument, error)

	// ImportAll replaces all workplaces, labors, attendance and payments with
	// the document's contents inside one atomic transaction; settings are
	// overwritten when present. On any failure the pre-import state is kept.
	// Missing collections are treated as empty, never as an error.
	ImportAll(ctx context.Context, doc *domain.BackupDocument) error

	// ResetAll clears all four collections and resets onboarding state and the
	// active workplace selection, atomically.
	ResetAll(ctx context.Context) error
}
