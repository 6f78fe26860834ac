package services

import (
	"context"

	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
	"github.com/SscSPs/labor_ledger_app/internal/dto"
)

// DataReaderSvc exposes the orchestrator's in-memory snapshot. Accessors are
// plain reads of the last refreshed state and never touch storage; callers
// awaiting a mutation must not assume the snapshot is updated until that
// mutation returns.
type DataReaderSvc interface {
	// Workplaces returns every workplace, newest first.
	Workplaces() []domain.Workplace

	// ActiveWorkplace returns the currently selected workplace, or nil when
	// none exists.
	ActiveWorkplace() *domain.Workplace

	// Labors, AttendanceRecords and PaymentRecords return the active
	// workplace's records only; they are empty when no workplace is active.
	Labors() []domain.Labor
	AttendanceRecords() []domain.AttendanceRecord
	PaymentRecords() []domain.PaymentRecord

	// Settings returns the singleton settings record.
	Settings() domain.AppSettings

	// DashboardStats returns the derived stats recomputed on the last refresh.
	DashboardStats() domain.DashboardStats

	// LaborSummary derives the financial summary for one labor of the active
	// workplace.
	LaborSummary(laborID string) (*domain.LaborSummary, error)

	// IsLoading reports whether a refresh is in flight.
	IsLoading() bool
}

// DataMutatorSvc enumerates every mutation the orchestrator supports. Each
// call validates preconditions, writes through the persistence store, reloads
// the snapshot and recomputes derived state before returning.
type DataMutatorSvc interface {
	// Initialize loads the snapshot for the first time and, on first launch
	// (onboarding incomplete, zero workplaces), auto-creates a default
	// workplace.
	Initialize(ctx context.Context) error

	// RefreshData re-reads the full dataset and re-runs active-workplace
	// selection.
	RefreshData(ctx context.Context) error

	AddWorkplace(ctx context.Context, req dto.CreateWorkplaceRequest) (*domain.Workplace, error)
	UpdateWorkplace(ctx context.Context, workplaceID string, req dto.UpdateWorkplaceRequest) (*domain.Workplace, error)
	DeleteWorkplace(ctx context.Context, workplaceID string) error
	SetActiveWorkplace(ctx context.Context, workplaceID string) error

	AddLabor(ctx context.Context, req dto.CreateLaborRequest) (*domain.Labor, error)
	UpdateLabor(ctx context.Context, laborID string, req dto.UpdateLaborRequest) (*domain.Labor, error)
	DeleteLabor(ctx context.Context, laborID string) error

	// MarkAttendance upserts the attendance record for (laborID, date),
	// snapshotting the wage from the labor's current daily wage.
	MarkAttendance(ctx context.Context, req dto.MarkAttendanceRequest) (*domain.AttendanceRecord, error)

	AddPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.PaymentRecord, error)
	UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest) (*domain.PaymentRecord, error)
	DeletePayment(ctx context.Context, paymentID string) error

	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.AppSettings, error)
}

// BackupSvc exposes backup, restore and factory reset.
type BackupSvc interface {
	ExportData(ctx context.Context) (*domain.BackupDocument, error)

	// ImportData parses raw JSON and atomically replaces all persisted state.
	ImportData(ctx context.Context, raw []byte) error

	ResetData(ctx context.Context) error
}

// DataSvcFacade combines all orchestrator-facing interfaces.
type DataSvcFacade interface {
	DataReaderSvc
	DataMutatorSvc
	BackupSvc
}
