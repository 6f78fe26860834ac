package pgsql

import (
	portsrepo "github.com/SscSPs/labor_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	workplaceRepo := newPgxWorkplaceRepository(dbPool)
	laborRepo := newPgxLaborRepository(dbPool)
	attendanceRepo := newPgxAttendanceRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	settingsRepo := newPgxSettingsRepository(dbPool)
	backupRepo := newPgxBackupRepository(dbPool, workplaceRepo, laborRepo, attendanceRepo, paymentRepo, settingsRepo)

	return portsrepo.RepositoryProvider{
		WorkplaceRepo:  workplaceRepo,
		LaborRepo:      laborRepo,
		AttendanceRepo: attendanceRepo,
		PaymentRepo:    paymentRepo,
		SettingsRepo:   settingsRepo,
		BackupRepo:     backupRepo,
	}
}
