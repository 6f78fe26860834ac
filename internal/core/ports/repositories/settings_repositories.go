package repositories

import (
	"context"

	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
)

// SettingsRepository manages the singleton application settings record.
// The storage layer enforces that exactly one instance exists: GetSettings
// always succeeds (seeding defaults if needed) and SaveSettings only updates.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.AppSettings, error)
	SaveSettings(ctx context.Context, settings domain.AppSettings) error
}
