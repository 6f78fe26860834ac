package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/labor_ledger_app/internal/apperrors"
	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/labor_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAttendanceRepository struct {
	BaseRepository
}

// newPgxAttendanceRepository creates a new repository for attendance data.
func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

var FULL_ATTENDANCE_SELECT_QUERY = `
SELECT
	a.attendance_id, a.workplace_id, a.labor_id, a.date, a.status, a.wage, a.created_at
FROM attendance_records a
`

func (r *PgxAttendanceRepository) ListAttendanceRecords(ctx context.Context) ([]domain.AttendanceRecord, error) {
	query := FULL_ATTENDANCE_SELECT_QUERY + `ORDER BY a.date DESC, a.created_at DESC`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query attendance records", err)
	}
	defer rows.Close()
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AttendanceRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.AttendanceRecord{}, nil
		}
		return nil, apperrors.NewStorageError("failed to collect attendance rows", err)
	}
	return records, nil
}

// UpsertAttendanceRecord inserts the record or replaces the existing one for
// the same (labor_id, date) pair. The ON CONFLICT clause makes retries of the
// same mark idempotent: two calls leave exactly one row.
func (r *PgxAttendanceRepository) UpsertAttendanceRecord(ctx context.Context, record domain.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (attendance_id, workplace_id, labor_id, date, status, wage, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (labor_id, date) DO UPDATE SET
			attendance_id = EXCLUDED.attendance_id,
			workplace_id = EXCLUDED.workplace_id,
			status = EXCLUDED.status,
			wage = EXCLUDED.wage,
			created_at = EXCLUDED.created_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		record.AttendanceID,
		record.WorkplaceID,
		record.LaborID,
		record.Date,
		record.Status,
		record.Wage,
		record.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewForeignKeyError("labor " + record.LaborID + " or workplace " + record.WorkplaceID + " does not exist")
			}
			if pgErr.Code == "23514" { // check_violation (status enum)
				return apperrors.NewValidationFailedError("invalid attendance status " + string(record.Status))
			}
		}
		return apperrors.NewStorageError("failed to upsert attendance for labor "+record.LaborID, err)
	}
	return nil
}
