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

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

var FULL_PAYMENT_SELECT_QUERY = `
SELECT
	p.payment_id, p.workplace_id, p.labor_id, p.amount, p.date, p.type, p.notes, p.created_at
FROM payment_records p
`

func (r *PgxPaymentRepository) getPayments(ctx context.Context, filterQuery string, args ...any) ([]domain.PaymentRecord, error) {
	query := FULL_PAYMENT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to query payment records", err)
	}
	defer rows.Close()
	payments, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.PaymentRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.PaymentRecord{}, nil
		}
		return nil, apperrors.NewStorageError("failed to collect payment rows", err)
	}
	return payments, nil
}

func (r *PgxPaymentRepository) ListPaymentRecords(ctx context.Context) ([]domain.PaymentRecord, error) {
	return r.getPayments(ctx, `ORDER BY p.date DESC, p.created_at DESC`)
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	payments, err := r.getPayments(ctx, `WHERE p.payment_id = $1`, paymentID)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &payments[0], nil
}

func (r *PgxPaymentRepository) SavePaymentRecord(ctx context.Context, payment domain.PaymentRecord) error {
	query := `
		INSERT INTO payment_records (payment_id, workplace_id, labor_id, amount, date, type, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		payment.PaymentID,
		payment.WorkplaceID,
		payment.LaborID,
		payment.Amount,
		payment.Date,
		payment.Type,
		payment.Notes,
		payment.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("payment ID " + payment.PaymentID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewForeignKeyError("labor " + payment.LaborID + " or workplace " + payment.WorkplaceID + " does not exist")
			}
			if pgErr.Code == "23514" { // check_violation (type enum)
				return apperrors.NewValidationFailedError("invalid payment type " + string(payment.Type))
			}
		}
		return apperrors.NewStorageError("failed to save payment "+payment.PaymentID, err)
	}
	return nil
}

func (r *PgxPaymentRepository) UpdatePaymentRecord(ctx context.Context, payment domain.PaymentRecord) error {
	query := `
		UPDATE payment_records
		SET amount = $1, date = $2, type = $3, notes = $4
		WHERE payment_id = $5;
	`
	result, err := r.Pool.Exec(ctx, query,
		payment.Amount,
		payment.Date,
		payment.Type,
		payment.Notes,
		payment.PaymentID,
	)
	if err != nil {
		return apperrors.NewStorageError("failed to update payment "+payment.PaymentID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment " + payment.PaymentID + " not found")
	}
	return nil
}

func (r *PgxPaymentRepository) DeletePaymentRecord(ctx context.Context, paymentID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM payment_records WHERE payment_id = $1`, paymentID)
	if err != nil {
		return apperrors.NewStorageError("failed to delete payment "+paymentID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment " + paymentID + " not found")
	}
	return nil
}
