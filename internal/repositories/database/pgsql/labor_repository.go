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

type PgxLaborRepository struct {
	BaseRepository
}

// newPgxLaborRepository creates a new repository for labor data.
func newPgxLaborRepository(pool *pgxpool.Pool) portsrepo.LaborRepositoryFacade {
	return &PgxLaborRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LaborRepositoryFacade = (*PgxLaborRepository)(nil)

var FULL_LABOR_SELECT_QUERY = `
SELECT
	l.labor_id, l.workplace_id, l.name, l.phone, l.daily_wage, l.created_at
FROM labors l
`

func (r *PgxLaborRepository) getLabors(ctx context.Context, filterQuery string, args ...any) ([]domain.Labor, error) {
	query := FULL_LABOR_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query labors", err)
	}
	defer rows.Close()
	labors, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Labor])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Labor{}, nil
		}
		return nil, apperrors.NewStorageError("failed to collect labor rows", err)
	}
	return labors, nil
}

func (r *PgxLaborRepository) ListLabors(ctx context.Context) ([]domain.Labor, error) {
	return r.getLabors(ctx, `ORDER BY l.created_at DESC`)
}

func (r *PgxLaborRepository) FindLaborByID(ctx context.Context, laborID string) (*domain.Labor, error) {
	labors, err := r.getLabors(ctx, `WHERE l.labor_id = $1`, laborID)
	if err != nil {
		return nil, err
	}
	if len(labors) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &labors[0], nil
}

func (r *PgxLaborRepository) SaveLabor(ctx context.Context, labor domain.Labor) error {
	query := `
		INSERT INTO labors (labor_id, workplace_id, name, phone, daily_wage, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		labor.LaborID,
		labor.WorkplaceID,
		labor.Name,
		labor.Phone,
		labor.DailyWage,
		labor.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("labor ID " + labor.LaborID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewForeignKeyError("workplace " + labor.WorkplaceID + " does not exist")
			}
		}
		return apperrors.NewStorageError("failed to save labor "+labor.LaborID, err)
	}
	return nil
}

// UpdateLabor updates the labor's mutable fields. Attendance wages are
// snapshots taken at mark time and are deliberately left untouched.
func (r *PgxLaborRepository) UpdateLabor(ctx context.Context, labor domain.Labor) error {
	query := `
		UPDATE labors
		SET name = $1, phone = $2, daily_wage = $3
		WHERE labor_id = $4;
	`
	result, err := r.Pool.Exec(ctx, query,
		labor.Name,
		labor.Phone,
		labor.DailyWage,
		labor.LaborID,
	)
	if err != nil {
		return apperrors.NewStorageError("failed to update labor "+labor.LaborID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("labor " + labor.LaborID + " not found")
	}
	return nil
}

// DeleteLabor removes the labor row; its attendance and payments are removed
// by the schema's ON DELETE CASCADE constraints.
func (r *PgxLaborRepository) DeleteLabor(ctx context.Context, laborID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM labors WHERE labor_id = $1`, laborID)
	if err != nil {
		return apperrors.NewStorageError("failed to delete labor "+laborID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("labor " + laborID + " not found")
	}
	return nil
}
