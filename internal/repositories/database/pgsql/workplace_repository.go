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

type PgxWorkplaceRepository struct {
	BaseRepository
}

// newPgxWorkplaceRepository creates a new repository for workplace data.
func newPgxWorkplaceRepository(pool *pgxpool.Pool) portsrepo.WorkplaceRepositoryFacade {
	return &PgxWorkplaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxWorkplaceRepository implements portsrepo.WorkplaceRepositoryFacade
var _ portsrepo.WorkplaceRepositoryFacade = (*PgxWorkplaceRepository)(nil)

var FULL_WORKPLACE_SELECT_QUERY = `
SELECT
	w.workplace_id, w.name, w.description, w.is_active, w.created_at
FROM workplaces w
`

// getWorkplaces runs the select query with the given filters appended.
func (r *PgxWorkplaceRepository) getWorkplaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workplace, error) {
	query := FULL_WORKPLACE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query workplaces", err)
	}
	defer rows.Close()
	workplaces, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Workplace])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Workplace{}, nil
		}
		return nil, apperrors.NewStorageError("failed to collect workplace rows", err)
	}
	return workplaces, nil
}

func (r *PgxWorkplaceRepository) ListWorkplaces(ctx context.Context) ([]domain.Workplace, error) {
	return r.getWorkplaces(ctx, `ORDER BY w.created_at DESC`)
}

func (r *PgxWorkplaceRepository) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	workplaces, err := r.getWorkplaces(ctx, `WHERE w.workplace_id = $1`, workplaceID)
	if err != nil {
		return nil, err
	}
	if len(workplaces) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &workplaces[0], nil
}

func (r *PgxWorkplaceRepository) SaveWorkplace(ctx context.Context, workplace domain.Workplace) error {
	query := `
		INSERT INTO workplaces (workplace_id, name, description, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		workplace.WorkplaceID,
		workplace.Name,
		workplace.Description,
		workplace.IsActive,
		workplace.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("workplace ID " + workplace.WorkplaceID + " already exists")
		}
		return apperrors.NewStorageError("failed to save workplace "+workplace.WorkplaceID, err)
	}
	return nil
}

func (r *PgxWorkplaceRepository) UpdateWorkplace(ctx context.Context, workplace domain.Workplace) error {
	query := `
		UPDATE workplaces
		SET name = $1, description = $2, is_active = $3
		WHERE workplace_id = $4;
	`
	result, err := r.Pool.Exec(ctx, query,
		workplace.Name,
		workplace.Description,
		workplace.IsActive,
		workplace.WorkplaceID,
	)
	if err != nil {
		return apperrors.NewStorageError("failed to update workplace "+workplace.WorkplaceID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("workplace " + workplace.WorkplaceID + " not found")
	}
	return nil
}

// DeleteWorkplace removes the workplace row; labors, attendance and payments
// under it are removed by the schema's ON DELETE CASCADE constraints.
func (r *PgxWorkplaceRepository) DeleteWorkplace(ctx context.Context, workplaceID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM workplaces WHERE workplace_id = $1`, workplaceID)
	if err != nil {
		return apperrors.NewStorageError("failed to delete workplace "+workplaceID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("workplace " + workplaceID + " not found")
	}
	return nil
}
