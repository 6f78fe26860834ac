package repositories

import (
	"context"

	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
)

// AttendanceReader defines read operations for attendance data.
type AttendanceReader interface {
	// ListAttendanceRecords retrieves all attendance records, most recent
	// date first.
	ListAttendanceRecords(ctx context.Context) ([]domain.AttendanceRecord, error)
}

// AttendanceWriter defines write operations for attendance data.
type AttendanceWriter interface {
	// UpsertAttendanceRecord inserts the record, or replaces the existing one
	// for the same (laborID, date) pair. Calling it twice with the same pair
	// leaves exactly one stored record reflecting the second call.
	UpsertAttendanceRecord(ctx context.Context, record domain.AttendanceRecord) error
}

// AttendanceRepositoryFacade combines all attendance-related repository interfaces.
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}
