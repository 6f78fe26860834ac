package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/labor_ledger_app/internal/apperrors"
	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/labor_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for the singleton settings row.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// GetSettings reads the singleton row (id = 1). The row is seeded by the
// schema migration, but defaults are re-inserted here as well so a truncated
// table never breaks the singleton contract.
func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.AppSettings, error) {
	query := `
		SELECT language, theme, currency, has_completed_onboarding, active_workplace_id
		FROM app_settings WHERE id = 1;
	`
	var settings domain.AppSettings
	err := r.Pool.QueryRow(ctx, query).Scan(
		&settings.Language,
		&settings.Theme,
		&settings.Currency,
		&settings.HasCompletedOnboarding,
		&settings.ActiveWorkplaceID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if err := r.seedDefaults(ctx); err != nil {
				return nil, err
			}
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		return nil, apperrors.NewStorageError("failed to query settings", err)
	}
	return &settings, nil
}

func (r *PgxSettingsRepository) seedDefaults(ctx context.Context) error {
	defaults := domain.DefaultSettings()
	query := `
		INSERT INTO app_settings (id, language, theme, currency, has_completed_onboarding)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query, defaults.Language, defaults.Theme, defaults.Currency, defaults.HasCompletedOnboarding)
	if err != nil {
		return apperrors.NewStorageError("failed to seed default settings", err)
	}
	return nil
}

// SaveSettings updates the singleton row; it never inserts a second one.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	query := `
		UPDATE app_settings
		SET language = $1, theme = $2, currency = $3, has_completed_onboarding = $4, active_workplace_id = $5
		WHERE id = 1;
	`
	result, err := r.Pool.Exec(ctx, query,
		settings.Language,
		settings.Theme,
		settings.Currency,
		settings.HasCompletedOnboarding,
		settings.ActiveWorkplaceID,
	)
	if err != nil {
		return apperrors.NewStorageError("failed to save settings", err)
	}
	if result.RowsAffected() == 0 {
		if err := r.seedDefaults(ctx); err != nil {
			return err
		}
		_, err = r.Pool.Exec(ctx, query,
			settings.Language,
			settings.Theme,
			settings.Currency,
			settings.HasCompletedOnboarding,
			settings.ActiveWorkplaceID,
		)
		if err != nil {
			return apperrors.NewStorageError("failed to save settings", err)
		}
	}
	return nil
}
