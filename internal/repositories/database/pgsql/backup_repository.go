package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/labor_ledger_app/internal/apperrors"
	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/labor_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBackupRepository struct {
	BaseRepository
	workplaceRepo  portsrepo.WorkplaceReader
	laborRepo      portsrepo.LaborReader
	attendanceRepo portsrepo.AttendanceReader
	paymentRepo    portsrepo.PaymentReader
	settingsRepo   portsrepo.SettingsRepository
}

// newPgxBackupRepository creates the repository backing export/import/reset.
func newPgxBackupRepository(
	pool *pgxpool.Pool,
	workplaceRepo portsrepo.WorkplaceReader,
	laborRepo portsrepo.LaborReader,
	attendanceRepo portsrepo.AttendanceReader,
	paymentRepo portsrepo.PaymentReader,
	settingsRepo portsrepo.SettingsRepository,
) portsrepo.BackupRepository {
	return &PgxBackupRepository{
		BaseRepository: BaseRepository{Pool: pool},
		workplaceRepo:  workplaceRepo,
		laborRepo:      laborRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
		settingsRepo:   settingsRepo,
	}
}

var _ portsrepo.BackupRepository = (*PgxBackupRepository)(nil)

// ExportAll reads every collection and the settings row into one document.
func (r *PgxBackupRepository) ExportAll(ctx context.Context) (*domain.BackupDocument, error) {
	workplaces, err := r.workplaceRepo.ListWorkplaces(ctx)
	if err != nil {
		return nil, err
	}
	labors, err := r.laborRepo.ListLabors(ctx)
	if err != nil {
		return nil, err
	}
	attendance, err := r.attendanceRepo.ListAttendanceRecords(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := r.paymentRepo.ListPaymentRecords(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := r.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.BackupDocument{
		Workplaces: workplaces,
		Labors:     labors,
		Attendance: attendance,
		Payments:   payments,
		Settings:   settings,
		ExportDate: time.Now().UTC(),
		Version:    domain.BackupSchemaVersion,
	}, nil
}

// ImportAll replaces all persisted entity data with the document's contents.
// Everything runs in one transaction: a failed insert rolls the store back to
// its pre-import state. Children are deleted before parents so no FK is ever
// violated mid-import.
func (r *PgxBackupRepository) ImportAll(ctx context.Context, doc *domain.BackupDocument) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	for _, query := range []string{
		`DELETE FROM payment_records`,
		`DELETE FROM attendance_records`,
		`DELETE FROM labors`,
		`DELETE FROM workplaces`,
	} {
		if _, err := tx.Exec(ctx, query); err != nil {
			return apperrors.NewStorageError("failed to clear data before import", err)
		}
	}

	for _, w := range doc.Workplaces {
		_, err := tx.Exec(ctx,
			`INSERT INTO workplaces (workplace_id, name, description, is_active, created_at) VALUES ($1, $2, $3, $4, $5)`,
			w.WorkplaceID, w.Name, w.Description, w.IsActive, w.CreatedAt)
		if err != nil {
			return apperrors.NewStorageError("failed to import workplace "+w.WorkplaceID, err)
		}
	}
	for _, l := range doc.Labors {
		_, err := tx.Exec(ctx,
			`INSERT INTO labors (labor_id, workplace_id, name, phone, daily_wage, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
			l.LaborID, l.WorkplaceID, l.Name, l.Phone, l.DailyWage, l.CreatedAt)
		if err != nil {
			return apperrors.NewStorageError("failed to import labor "+l.LaborID, err)
		}
	}
	for _, a := range doc.Attendance {
		_, err := tx.Exec(ctx,
			`INSERT INTO attendance_records (attendance_id, workplace_id, labor_id, date, status, wage, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (labor_id, date) DO UPDATE SET
				attendance_id = EXCLUDED.attendance_id,
				workplace_id = EXCLUDED.workplace_id,
				status = EXCLUDED.status,
				wage = EXCLUDED.wage,
				created_at = EXCLUDED.created_at`,
			a.AttendanceID, a.WorkplaceID, a.LaborID, a.Date, a.Status, a.Wage, a.CreatedAt)
		if err != nil {
			return apperrors.NewStorageError("failed to import attendance "+a.AttendanceID, err)
		}
	}
	for _, p := range doc.Payments {
		_, err := tx.Exec(ctx,
			`INSERT INTO payment_records (payment_id, workplace_id, labor_id, amount, date, type, notes, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			p.PaymentID, p.WorkplaceID, p.LaborID, p.Amount, p.Date, p.Type, p.Notes, p.CreatedAt)
		if err != nil {
			return apperrors.NewStorageError("failed to import payment "+p.PaymentID, err)
		}
	}

	if doc.Settings != nil {
		if err := saveSettingsTx(ctx, tx, *doc.Settings); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// ResetAll clears all entity collections and resets onboarding and the active
// workplace selection, atomically.
func (r *PgxBackupRepository) ResetAll(ctx context.Context) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	for _, query := range []string{
		`DELETE FROM payment_records`,
		`DELETE FROM attendance_records`,
		`DELETE FROM labors`,
		`DELETE FROM workplaces`,
		`UPDATE app_settings SET has_completed_onboarding = FALSE, active_workplace_id = NULL WHERE id = 1`,
	} {
		if _, err := tx.Exec(ctx, query); err != nil {
			return apperrors.NewStorageError("failed to reset data", err)
		}
	}

	return r.Commit(ctx, tx)
}

func saveSettingsTx(ctx context.Context, tx pgx.Tx, settings domain.AppSettings) error {
	_, err := tx.Exec(ctx, `
		UPDATE app_settings
		SET language = $1, theme = $2, currency = $3, has_completed_onboarding = $4, active_workplace_id = $5
		WHERE id = 1`,
		settings.Language,
		settings.Theme,
		settings.Currency,
		settings.HasCompletedOnboarding,
		settings.ActiveWorkplaceID,
	)
	if err != nil {
		return apperrors.NewStorageError("failed to import settings", err)
	}
	return nil
}
