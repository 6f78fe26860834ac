package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/SscSPs/labor_ledger_app/internal/apperrors"
	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/labor_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/labor_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/labor_ledger_app/internal/dto"
	"github.com/SscSPs/labor_ledger_app/internal/utils/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// dataService is the single orchestrator behind all entity reads and writes.
// It keeps an in-memory snapshot of the full dataset, scoped views of the
// active workplace, and derived dashboard stats. Every mutation validates,
// writes through the repository layer and then reloads the snapshot, so reads
// after a completed mutation always observe it.
type dataService struct {
	BaseService
	repos portsrepo.RepositoryProvider
	nowFn func() time.Time

	mu sync.RWMutex
	// snapshot, guarded by mu
	allWorkplaces []domain.Workplace
	allLabors     []domain.Labor
	allAttendance []domain.AttendanceRecord
	allPayments   []domain.PaymentRecord
	// views scoped to the active workplace
	labors     []domain.Labor
	attendance []domain.AttendanceRecord
	payments   []domain.PaymentRecord
	active     *domain.Workplace
	settings   domain.AppSettings
	stats      domain.DashboardStats
	loading    bool
}

// DataServiceOption configures optional behavior of the data service.
type DataServiceOption func(*dataService)

// WithClock overrides the time source, used by tests to pin "today".
func WithClock(nowFn func() time.Time) DataServiceOption {
	return func(s *dataService) {
		s.nowFn = nowFn
	}
}

// NewDataService creates the orchestrator service backed by the given repositories.
func NewDataService(repos portsrepo.RepositoryProvider, opts ...DataServiceOption) portssvc.DataSvcFacade {
	svc := &dataService{
		repos: repos,
		nowFn: time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

var _ portssvc.DataSvcFacade = (*dataService)(nil)

// --- Readers ---

func (s *dataService) Workplaces() []domain.Workplace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Workplace, len(s.allWorkplaces))
	copy(out, s.allWorkplaces)
	return out
}

func (s *dataService) ActiveWorkplace() *domain.Workplace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil
	}
	active := *s.active
	return &active
}

func (s *dataService) Labors() []domain.Labor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Labor, len(s.labors))
	copy(out, s.labors)
	return out
}

func (s *dataService) AttendanceRecords() []domain.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AttendanceRecord, len(s.attendance))
	copy(out, s.attendance)
	return out
}

func (s *dataService) PaymentRecords() []domain.PaymentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PaymentRecord, len(s.payments))
	copy(out, s.payments)
	return out
}

func (s *dataService) Settings() domain.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *dataService) DashboardStats() domain.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *dataService) LaborSummary(laborID string) (*domain.LaborSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, labor := range s.labors {
		if labor.LaborID == laborID {
			summary := payroll.CalculateLaborSummary(labor, s.attendance, s.payments)
			return &summary, nil
		}
	}
	return nil, apperrors.NewNotFoundError("labor " + laborID + " not found")
}

func (s *dataService) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// --- Lifecycle ---

// Initialize loads the snapshot and, on first launch (onboarding not yet
// completed and zero workplaces), auto-creates a default workplace so the
// app is immediately usable.
func (s *dataService) Initialize(ctx context.Context) error {
	if err := s.RefreshData(ctx); err != nil {
		return err
	}

	s.mu.RLock()
	firstLaunch := !s.settings.HasCompletedOnboarding && len(s.allWorkplaces) == 0
	s.mu.RUnlock()
	if !firstLaunch {
		return nil
	}

	s.LogInfo(ctx, "first launch detected, creating default workplace")
	_, err := s.AddWorkplace(ctx, dto.CreateWorkplaceRequest{Name: domain.DefaultWorkplaceName})
	return err
}

// RefreshData re-reads the full dataset, re-runs active workplace selection
// and recomputes derived state. Selection changes are persisted back to the
// settings store before the snapshot is swapped in.
func (s *dataService) RefreshData(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	workplaces, err := s.repos.WorkplaceRepo.ListWorkplaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load workplaces")
		return err
	}
	labors, err := s.repos.LaborRepo.ListLabors(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load labors")
		return err
	}
	attendance, err := s.repos.AttendanceRepo.ListAttendanceRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load attendance records")
		return err
	}
	payments, err := s.repos.PaymentRepo.ListPaymentRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load payment records")
		return err
	}
	settings, err := s.repos.SettingsRepo.GetSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load settings")
		return err
	}

	active, changed := selectActiveWorkplace(workplaces, settings.ActiveWorkplaceID)
	if changed {
		if active != nil {
			settings.ActiveWorkplaceID = &active.WorkplaceID
		} else {
			settings.ActiveWorkplaceID = nil
		}
		if err := s.repos.SettingsRepo.SaveSettings(ctx, *settings); err != nil {
			s.LogError(ctx, err, "failed to persist active workplace selection")
			return err
		}
		s.LogDebug(ctx, "active workplace selection changed", "activeWorkplaceId", settings.ActiveWorkplaceID)
	}

	scopedLabors := make([]domain.Labor, 0)
	scopedAttendance := make([]domain.AttendanceRecord, 0)
	scopedPayments := make([]domain.PaymentRecord, 0)
	if active != nil {
		for _, l := range labors {
			if l.WorkplaceID == active.WorkplaceID {
				scopedLabors = append(scopedLabors, l)
			}
		}
		for _, a := range attendance {
			if a.WorkplaceID == active.WorkplaceID {
				scopedAttendance = append(scopedAttendance, a)
			}
		}
		for _, p := range payments {
			if p.WorkplaceID == active.WorkplaceID {
				scopedPayments = append(scopedPayments, p)
			}
		}
	}
	stats := payroll.CalculateDashboardStats(scopedLabors, scopedAttendance, scopedPayments, s.nowFn())

	s.mu.Lock()
	s.allWorkplaces = workplaces
	s.allLabors = labors
	s.allAttendance = attendance
	s.allPayments = payments
	s.labors = scopedLabors
	s.attendance = scopedAttendance
	s.payments = scopedPayments
	s.active = active
	s.settings = *settings
	s.stats = stats
	s.mu.Unlock()
	return nil
}

// selectActiveWorkplace applies the selection policy: keep the stored
// selection when it still exists, otherwise fall back to the first workplace,
// otherwise none. Reports whether the stored selection must be rewritten.
func selectActiveWorkplace(workplaces []domain.Workplace, storedID *string) (*domain.Workplace, bool) {
	if storedID != nil {
		for i := range workplaces {
			if workplaces[i].WorkplaceID == *storedID {
				return &workplaces[i], false
			}
		}
	}
	if len(workplaces) > 0 {
		return &workplaces[0], true
	}
	return nil, storedID != nil
}

// --- Workplace mutations ---

func (s *dataService) AddWorkplace(ctx context.Context, req dto.CreateWorkplaceRequest) (*domain.Workplace, error) {
	workplace := domain.Workplace{
		WorkplaceID: uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		CreatedAt:   s.nowFn().UTC(),
	}
	if err := s.repos.WorkplaceRepo.SaveWorkplace(ctx, workplace); err != nil {
		s.LogError(ctx, err, "failed to save workplace", "workplaceId", workplace.WorkplaceID)
		return nil, err
	}
	s.LogInfo(ctx, "workplace created", "workplaceId", workplace.WorkplaceID, "name", workplace.Name)
	if err := s.RefreshData(ctx); err != nil {
		return nil, err
	}
	return &workplace, nil
}

func (s *dataService) UpdateWorkplace(ctx context.Context, workplaceID string, req dto.UpdateWorkplaceRequest) (*domain.Workplace, error) {
	existing, err := s.repos.WorkplaceRepo.FindWorkplaceByID(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.NewValidationFailedError("workplace name must not be empty")
		}
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if err := s.repos.WorkplaceRepo.UpdateWorkplace(ctx, *existing); err != nil {
		s.LogError(ctx, err, "failed to update workplace", "workplaceId", workplaceID)
		return nil, err
	}
	if err := s.RefreshData(ctx); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *dataService) DeleteWorkplace(ctx context.Context, workplaceID string) error {
	if _, err := s.repos.WorkplaceRepo.FindWorkplaceByID(ctx, workplaceID); err != nil {
		return err
	}
	if err := s.repos.WorkplaceRepo.DeleteWorkplace(ctx, workplaceID); err != nil {
		s.LogError(ctx, err, "failed to delete workplace", "workplaceId", workplaceID)
		return err
	}
	s.LogInfo(ctx, "workplace deleted", "workplaceId", workplaceID)
	// Refresh re-runs selection, so deleting the active workplace falls back
	// to the next one (or none).
	return s.RefreshData(ctx)
}

func (s *dataService) SetActiveWorkplace(ctx context.Context, workplaceID string) error {
	if _, err := s.repos.WorkplaceRepo.FindWorkplaceByID(ctx, workplaceID); err != nil {
		return err
	}
	s.mu.RLock()
	settings := s.settings
	s.mu.RUnlock()
	settings.ActiveWorkplaceID = &workplaceID
	if err := s.repos.SettingsRepo.SaveSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "failed to persist active workplace", "workplaceId", workplaceID)
		return err
	}
	s.LogInfo(ctx, "active workplace changed", "workplaceId", workplaceID)
	return s.RefreshData(ctx)
}

// --- Labor mutations ---

// requireActiveWorkplace returns the active workplace or the no-active error.
func (s *dataService) requireActiveWorkplace() (*domain.Workplace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil, apperrors.ErrNoActiveWorkplace
	}
	active := *s.active
	return &active, nil
}

// requireActiveLabor resolves a labor and checks it belongs to the active workplace.
func (s *dataService) requireActiveLabor(ctx context.Context, laborID string) (*domain.Labor, error) {
	active, err := s.requireActiveWorkplace()
	if err != nil {
		return nil, err
	}
	labor, err := s.repos.LaborRepo.FindLaborByID(ctx, laborID)
	if err != nil {
		return nil, err
	}
	if labor.WorkplaceID != active.WorkplaceID {
		return nil, apperrors.NewNotFoundError("labor " + laborID + " not found in active workplace")
	}
	return labor, nil
}

func (s *dataService) AddLabor(ctx context.Context, req dto.CreateLaborRequest) (*domain.Labor, error) {
	active, err := s.requireActiveWorkplace()
	if err != nil {
		return nil, err
	}
	if !req.DailyWage.IsPositive() {
		return nil, apperrors.NewValidationFailedError("daily wage must be positive")
	}
	labor := domain.Labor{
		LaborID:     uuid.NewString(),
		WorkplaceID: active.WorkplaceID,
		Name:        req.Name,
		Phone:       req.Phone,
		DailyWage:   req.DailyWage,
		CreatedAt:   s.nowFn().UTC(),
	}
	if err := s.repos.LaborRepo.SaveLabor(ctx, labor); err != nil {
		s.LogError(ctx, err, "failed to save labor", "laborId", labor.LaborID)
		return nil, err
	}
	s.LogInfo(ctx, "labor created", "laborId", labor.LaborID, "workplaceId", active.WorkplaceID)
	if err := s.RefreshData(ctx); err != nil {
		return nil, err
	}
	return &labor, nil
}

func (s *dataService) UpdateLabor(ctx context.Context, laborID string, req dto.UpdateLaborRequest) (*domain.Labor, error) {
	existing, err := s.requireActiveLabor(ctx, laborID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.NewValidationFailedError("labor name must not be empty")
		}
		existing.Name = *req.Name
	}
	if req.Phone != nil {
		existing.Phone = *req.Phone
	}
	if req.DailyWage != nil {
		if !req.DailyWage.IsPositive() {
			return nil, apperrors.NewValidationFailedError("daily wage must be positive")
		}
		// Historical attendance wages are snapshots; only future marks use
		// the new rate.
		existing.DailyWage = *req.DailyWage
	}
	if err := s.repos.LaborRepo.UpdateLabor(ctx, *existing); err != nil {
		s.LogError(ctx, err, "failed to update labor", "laborId", laborID)
		return nil, err
	}
	if err := s.RefreshData(ctx); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *dataService) DeleteLabor(ctx context.Context, laborID string) error {
	if _, err := s.requireActiveLabor(ctx, laborID); err != nil {
		return err
	}
	if err := s.repos.LaborRepo.DeleteLabor(ctx, laborID); err != nil {
		s.LogError(ctx, err, "failed to delete labor", "laborId", laborID)
		return err
	}
	s.LogInfo(ctx, "labor deleted", "laborId", laborID)
	return s.RefreshData(ctx)
}

// --- Attendance mutations ---

func (s *dataService) MarkAttendance(ctx context.Context, req dto.MarkAttendanceRequest) (*domain.AttendanceRecord, error) {
	status := domain.AttendanceStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewValidationFailedError("invalid attendance status " + req.Status)
	}
	if _, err := time.Parse(payroll.DateLayout, req.Date); err != nil {
		return nil, apperrors.NewValidationFailedError("invalid date " + req.Date)
	}
	labor, err := s.requireActiveLabor(ctx, req.LaborID)
	if err != nil {
		return nil, err
	}
	wage, err := payroll.CalculateWage(labor.DailyWage, status)
	if err != nil {
		return nil, err
	}
	record := domain.AttendanceRecord{
		AttendanceID: uuid.NewString(),
		WorkplaceID:  labor.WorkplaceID,
		LaborID:      labor.LaborID,
		Date:         req.Date,
		Status:       status,
		Wage:         wage,
		CreatedAt:    s.nowFn().UTC(),
	}
	if err := s.repos.AttendanceRepo.UpsertAttendanceRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "failed to upsert attendance", "laborId", req.LaborID, "date", req.Date)
		return nil, err
	}
	s.LogInfo(ctx, "attendance marked", "laborId", req.LaborID, "date", req.Date, "status", req.Status)
	if err := s.RefreshData(ctx); err != nil {
		return nil, err
	}
	return &record, nil
}

// --- Payment mutations ---

func (s *dataService) AddPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.PaymentRecord, error) {
	paymentType := domain.PaymentType(req.Type)
	if !paymentType.Valid() {
		return nil, apperrors.NewValidationFailedError("invalid payment type " + req.Type)
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationFailedError("payment amount must be positive")
	}
	if _, err := time.Parse(payroll.DateLayout, req.Date); err != nil {
		return nil, apperrors.NewValidationFailedError("invalid date " + req.Date)
	}
	labor, err := s.requireActiveLabor(ctx, req.LaborID)
	if err != nil {
		return nil, err
	}
	payment := domain.PaymentRecord{
		PaymentID:   uuid.NewString(),
		WorkplaceID: labor.WorkplaceID,
		LaborID:     labor.LaborID,
		Amount:      req.Amount,
		Date:        req.Date,
		Type:        paymentType,
		Notes:       req.Notes,
		CreatedAt:   s.nowFn().UTC(),
	}
	if err := s.repos.PaymentRepo.SavePaymentRecord(ctx, payment); err != nil {
		s.LogError(ctx, err, "failed to save payment", "laborId", req.LaborID)
		return nil, err
	}
	s.LogInfo(ctx, "payment recorded", "paymentId", payment.PaymentID, "laborId", req.LaborID, "amount", req.Amount.String())
	if err := s.RefreshData(ctx); err != nil {
		return nil, err
	}
	return &payment, nil
}

// requireActivePayment resolves a payment and checks it belongs to the active workplace.
func (s *dataService) requireActivePayment(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	active, err := s.requireActiveWorkplace()
	if err != nil {
		return nil, err
	}
	payment, err := s.repos.PaymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.WorkplaceID != active.WorkplaceID {
		return nil, apperrors.NewNotFoundError("payment " + paymentID + " not found in active workplace")
	}
	return payment, nil
}

func (s *dataService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest) (*domain.PaymentRecord, error) {
	existing, err := s.requireActivePayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, apperrors.NewValidationFailedError("payment amount must be positive")
		}
		existing.Amount = *req.Amount
	}
	if req.Date != nil {
		if _, err := time.Parse(payroll.DateLayout, *req.Date); err != nil {
			return nil, apperrors.NewValidationFailedError("invalid date " + *req.Date)
		}
		existing.Date = *req.Date
	}
	if req.Type != nil {
		paymentType := domain.PaymentType(*req.Type)
		if !paymentType.Valid() {
			return nil, apperrors.NewValidationFailedError("invalid payment type " + *req.Type)
		}
		existing.Type = paymentType
	}
	if req.Notes != nil {
		existing.Notes = *req.Notes
	}
	if err := s.repos.PaymentRepo.UpdatePaymentRecord(ctx, *existing); err != nil {
		s.LogError(ctx, err, "failed to update payment", "paymentId", paymentID)
		return nil, err
	}
	if err := s.RefreshData(ctx); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *dataService) DeletePayment(ctx context.Context, paymentID string) error {
	if _, err := s.requireActivePayment(ctx, paymentID); err != nil {
		return err
	}
	if err := s.repos.PaymentRepo.DeletePaymentRecord(ctx, paymentID); err != nil {
		s.LogError(ctx, err, "failed to delete payment", "paymentId", paymentID)
		return err
	}
	s.LogInfo(ctx, "payment deleted", "paymentId", paymentID)
	return s.RefreshData(ctx)
}

// --- Settings ---

func (s *dataService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.AppSettings, error) {
	settings := domain.AppSettings{
		Language:               req.Language,
		Theme:                  req.Theme,
		Currency:               req.Currency,
		HasCompletedOnboarding: req.HasCompletedOnboarding != nil && *req.HasCompletedOnboarding,
		ActiveWorkplaceID:      req.ActiveWorkplaceID,
	}
	if settings.ActiveWorkplaceID != nil {
		if _, err := s.repos.WorkplaceRepo.FindWorkplaceByID(ctx, *settings.ActiveWorkplaceID); err != nil {
			return nil, err
		}
	}
	if err := s.repos.SettingsRepo.SaveSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "failed to save settings")
		return nil, err
	}
	if err := s.RefreshData(ctx); err != nil {
		return nil, err
	}
	// Refresh may have re-run workplace selection; return the stored result.
	s.mu.RLock()
	saved := s.settings
	s.mu.RUnlock()
	return &saved, nil
}

// --- Backup ---

func (s *dataService) ExportData(ctx context.Context) (*domain.BackupDocument, error) {
	doc, err := s.repos.BackupRepo.ExportAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to export data")
		return nil, err
	}
	s.LogInfo(ctx, "data exported",
		"workplaces", len(doc.Workplaces),
		"labors", len(doc.Labors),
		"attendance", len(doc.Attendance),
		"payments", len(doc.Payments))
	return doc, nil
}

func (s *dataService) ImportData(ctx context.Context, raw []byte) error {
	var doc domain.BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return apperrors.NewImportParseError("backup document is not valid JSON", err)
	}
	if err := validateBackupDocument(&doc); err != nil {
		return err
	}
	if err := s.repos.BackupRepo.ImportAll(ctx, &doc); err != nil {
		s.LogError(ctx, err, "failed to import data")
		return err
	}
	s.LogInfo(ctx, "data imported",
		"workplaces", len(doc.Workplaces),
		"labors", len(doc.Labors),
		"attendance", len(doc.Attendance),
		"payments", len(doc.Payments))
	return s.RefreshData(ctx)
}

// validateBackupDocument rejects documents that would corrupt the store before
// any write happens: duplicate IDs, broken references, unknown enum values.
func validateBackupDocument(doc *domain.BackupDocument) error {
	workplaceIDs := make(map[string]bool, len(doc.Workplaces))
	for _, w := range doc.Workplaces {
		if w.WorkplaceID == "" {
			return apperrors.NewImportParseError("workplace with empty id", nil)
		}
		if workplaceIDs[w.WorkplaceID] {
			return apperrors.NewImportParseError("duplicate workplace id "+w.WorkplaceID, nil)
		}
		workplaceIDs[w.WorkplaceID] = true
	}
	laborIDs := make(map[string]bool, len(doc.Labors))
	for _, l := range doc.Labors {
		if l.LaborID == "" {
			return apperrors.NewImportParseError("labor with empty id", nil)
		}
		if laborIDs[l.LaborID] {
			return apperrors.NewImportParseError("duplicate labor id "+l.LaborID, nil)
		}
		if !workplaceIDs[l.WorkplaceID] {
			return apperrors.NewImportParseError("labor "+l.LaborID+" references unknown workplace "+l.WorkplaceID, nil)
		}
		laborIDs[l.LaborID] = true
	}
	seenMarks := make(map[string]bool, len(doc.Attendance))
	for _, a := range doc.Attendance {
		if !laborIDs[a.LaborID] {
			return apperrors.NewImportParseError("attendance record references unknown labor "+a.LaborID, nil)
		}
		if !a.Status.Valid() {
			return apperrors.NewImportParseError("invalid attendance status "+string(a.Status), nil)
		}
		key := a.LaborID + "|" + a.Date
		if seenMarks[key] {
			return apperrors.NewImportParseError("duplicate attendance for labor "+a.LaborID+" on "+a.Date, nil)
		}
		seenMarks[key] = true
	}
	for _, p := range doc.Payments {
		if !laborIDs[p.LaborID] {
			return apperrors.NewImportParseError("payment references unknown labor "+p.LaborID, nil)
		}
		if !p.Type.Valid() {
			return apperrors.NewImportParseError("invalid payment type "+string(p.Type), nil)
		}
		if p.Amount.LessThan(decimal.Zero) {
			return apperrors.NewImportParseError("payment "+p.PaymentID+" has negative amount", nil)
		}
	}
	return nil
}

func (s *dataService) ResetData(ctx context.Context) error {
	if err := s.repos.BackupRepo.ResetAll(ctx); err != nil {
		s.LogError(ctx, err, "failed to reset data")
		return err
	}
	s.LogInfo(ctx, "all data reset")
	return s.RefreshData(ctx)
}
