package repositories

import (
	"context"

	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data.
type PaymentReader interface {
	// ListPaymentRecords retrieves all payment records, most recent date first.
	ListPaymentRecords(ctx context.Context) ([]domain.PaymentRecord, error)

	// FindPaymentByID retrieves a specific payment by its ID.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error)
}

// PaymentWriter defines write operations for payment data.
type PaymentWriter interface {
	// SavePaymentRecord persists a new payment. Multiple payments per labor
	// per date are permitted.
	SavePaymentRecord(ctx context.Context, payment domain.PaymentRecord) error

	// UpdatePaymentRecord updates amount, date, type and notes by primary key.
	UpdatePaymentRecord(ctx context.Context, payment domain.PaymentRecord) error

	// DeletePaymentRecord removes a single payment.
	DeletePaymentRecord(ctx context.Context, paymentID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
