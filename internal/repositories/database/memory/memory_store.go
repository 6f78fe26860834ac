// Package memory provides an in-memory implementation of the repository
// ports. It backs standalone mode (no PGSQL_URL configured) and the service
// test suites. Contracts match the PostgreSQL store: attendance upsert keyed
// on (laborID, date), cascade deletes child-then-parent, and an all-or-nothing
// import built aside and swapped in only on success.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/labor_ledger_app/internal/apperrors"
	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/labor_ledger_app/internal/core/ports/repositories"
)

type state struct {
	workplaces map[string]domain.Workplace
	labors     map[string]domain.Labor
	attendance map[string]domain.AttendanceRecord // keyed by laborID+"|"+date
	payments   map[string]domain.PaymentRecord
	settings   domain.AppSettings
}

func newState() state {
	return state{
		workplaces: map[string]domain.Workplace{},
		labors:     map[string]domain.Labor{},
		attendance: map[string]domain.AttendanceRecord{},
		payments:   map[string]domain.PaymentRecord{},
		settings:   domain.DefaultSettings(),
	}
}

// Store holds all collections behind one RWMutex. The single lock mirrors the
// single-writer model the storage contract assumes.
type Store struct {
	mu sync.RWMutex
	st state
}

// NewStore creates an empty in-memory store with default settings.
func NewStore() *Store {
	return &Store{st: newState()}
}

// NewRepositoryProvider exposes one store through all repository ports.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WorkplaceRepo:  s,
		LaborRepo:      s,
		AttendanceRepo: s,
		PaymentRepo:    s,
		SettingsRepo:   s,
		BackupRepo:     s,
	}
}

var (
	_ portsrepo.WorkplaceRepositoryFacade  = (*Store)(nil)
	_ portsrepo.LaborRepositoryFacade      = (*Store)(nil)
	_ portsrepo.AttendanceRepositoryFacade = (*Store)(nil)
	_ portsrepo.PaymentRepositoryFacade    = (*Store)(nil)
	_ portsrepo.SettingsRepository         = (*Store)(nil)
	_ portsrepo.BackupRepository           = (*Store)(nil)
)

func attendanceKey(laborID, date string) string {
	return laborID + "|" + date
}

// --- Workplace operations ---

func (s *Store) ListWorkplaces(ctx context.Context) ([]domain.Workplace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Workplace, 0, len(s.st.workplaces))
	for _, w := range s.st.workplaces {
		out = append(out, w)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].WorkplaceID < out[j].WorkplaceID
	})
	return out, nil
}

func (s *Store) FindWorkplaceByID(ctx context.Context, workplaceID string) (*domain.Workplace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.st.workplaces[workplaceID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &w, nil
}

func (s *Store) SaveWorkplace(ctx context.Context, workplace domain.Workplace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.st.workplaces[workplace.WorkplaceID]; exists {
		return apperrors.NewConflictError("workplace ID " + workplace.WorkplaceID + " already exists")
	}
	s.st.workplaces[workplace.WorkplaceID] = workplace
	return nil
}

func (s *Store) UpdateWorkplace(ctx context.Context, workplace domain.Workplace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.st.workplaces[workplace.WorkplaceID]
	if !ok {
		return apperrors.NewNotFoundError("workplace " + workplace.WorkplaceID + " not found")
	}
	existing.Name = workplace.Name
	existing.Description = workplace.Description
	existing.IsActive = workplace.IsActive
	s.st.workplaces[workplace.WorkplaceID] = existing
	return nil
}

// DeleteWorkplace removes children before the parent, the manual equivalent of
// the relational schema's ON DELETE CASCADE.
func (s *Store) DeleteWorkplace(ctx context.Context, workplaceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.st.workplaces[workplaceID]; !ok {
		return apperrors.NewNotFoundError("workplace " + workplaceID + " not found")
	}
	for id, p := range s.st.payments {
		if p.WorkplaceID == workplaceID {
			delete(s.st.payments, id)
		}
	}
	for key, a := range s.st.attendance {
		if a.WorkplaceID == workplaceID {
			delete(s.st.attendance, key)
		}
	}
	for id, l := range s.st.labors {
		if l.WorkplaceID == workplaceID {
			delete(s.st.labors, id)
		}
	}
	delete(s.st.workplaces, workplaceID)
	if s.st.settings.ActiveWorkplaceID != nil && *s.st.settings.ActiveWorkplaceID == workplaceID {
		s.st.settings.ActiveWorkplaceID = nil
	}
	return nil
}

// --- Labor operations ---

func (s *Store) ListLabors(ctx context.Context) ([]domain.Labor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Labor, 0, len(s.st.labors))
	for _, l := range s.st.labors {
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].LaborID < out[j].LaborID
	})
	return out, nil
}

func (s *Store) FindLaborByID(ctx context.Context, laborID string) (*domain.Labor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.st.labors[laborID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &l, nil
}

func (s *Store) SaveLabor(ctx context.Context, labor domain.Labor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.st.labors[labor.LaborID]; exists {
		return apperrors.NewConflictError("labor ID " + labor.LaborID + " already exists")
	}
	if _, ok := s.st.workplaces[labor.WorkplaceID]; !ok {
		return apperrors.NewForeignKeyError("workplace " + labor.WorkplaceID + " does not exist")
	}
	s.st.labors[labor.LaborID] = labor
	return nil
}

func (s *Store) UpdateLabor(ctx context.Context, labor domain.Labor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.st.labors[labor.LaborID]
	if !ok {
		return apperrors.NewNotFoundError("labor " + labor.LaborID + " not found")
	}
	existing.Name = labor.Name
	existing.Phone = labor.Phone
	existing.DailyWage = labor.DailyWage
	s.st.labors[labor.LaborID] = existing
	return nil
}

func (s *Store) DeleteLabor(ctx context.Context, laborID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.st.labors[laborID]; !ok {
		return apperrors.NewNotFoundError("labor " + laborID + " not found")
	}
	for id, p := range s.st.payments {
		if p.LaborID == laborID {
			delete(s.st.payments, id)
		}
	}
	for key, a := range s.st.attendance {
		if a.LaborID == laborID {
			delete(s.st.attendance, key)
		}
	}
	delete(s.st.labors, laborID)
	return nil
}

// --- Attendance operations ---

func (s *Store) ListAttendanceRecords(ctx context.Context) ([]domain.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AttendanceRecord, 0, len(s.st.attendance))
	for _, a := range s.st.attendance {
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpsertAttendanceRecord replaces any record already stored for the same
// (laborID, date) pair under the write lock, so a retried mark is idempotent.
func (s *Store) UpsertAttendanceRecord(ctx context.Context, record domain.AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !record.Status.Valid() {
		return apperrors.NewValidationFailedError("invalid attendance status " + string(record.Status))
	}
	if _, ok := s.st.workplaces[record.WorkplaceID]; !ok {
		return apperrors.NewForeignKeyError("workplace " + record.WorkplaceID + " does not exist")
	}
	if _, ok := s.st.labors[record.LaborID]; !ok {
		return apperrors.NewForeignKeyError("labor " + record.LaborID + " does not exist")
	}
	s.st.attendance[attendanceKey(record.LaborID, record.Date)] = record
	return nil
}

// --- Payment operations ---

func (s *Store) ListPaymentRecords(ctx context.Context) ([]domain.PaymentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PaymentRecord, 0, len(s.st.payments))
	for _, p := range s.st.payments {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.st.payments[paymentID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (s *Store) SavePaymentRecord(ctx context.Context, payment domain.PaymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.st.payments[payment.PaymentID]; exists {
		return apperrors.NewConflictError("payment ID " + payment.PaymentID + " already exists")
	}
	if !payment.Type.Valid() {
		return apperrors.NewValidationFailedError("invalid payment type " + string(payment.Type))
	}
	if _, ok := s.st.workplaces[payment.WorkplaceID]; !ok {
		return apperrors.NewForeignKeyError("workplace " + payment.WorkplaceID + " does not exist")
	}
	if _, ok := s.st.labors[payment.LaborID]; !ok {
		return apperrors.NewForeignKeyError("labor " + payment.LaborID + " does not exist")
	}
	s.st.payments[payment.PaymentID] = payment
	return nil
}

func (s *Store) UpdatePaymentRecord(ctx context.Context, payment domain.PaymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.st.payments[payment.PaymentID]
	if !ok {
		return apperrors.NewNotFoundError("payment " + payment.PaymentID + " not found")
	}
	existing.Amount = payment.Amount
	existing.Date = payment.Date
	existing.Type = payment.Type
	existing.Notes = payment.Notes
	s.st.payments[payment.PaymentID] = existing
	return nil
}

func (s *Store) DeletePaymentRecord(ctx context.Context, paymentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.st.payments[paymentID]; !ok {
		return apperrors.NewNotFoundError("payment " + paymentID + " not found")
	}
	delete(s.st.payments, paymentID)
	return nil
}

// --- Settings operations ---

func (s *Store) GetSettings(ctx context.Context) (*domain.AppSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	settings := s.st.settings
	return &settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.settings = settings
	return nil
}

// --- Backup operations ---

func (s *Store) ExportAll(ctx context.Context) (*domain.BackupDocument, error) {
	workplaces, _ := s.ListWorkplaces(ctx)
	labors, _ := s.ListLabors(ctx)
	attendance, _ := s.ListAttendanceRecords(ctx)
	payments, _ := s.ListPaymentRecords(ctx)

	s.mu.RLock()
	settings := s.st.settings
	s.mu.RUnlock()

	return &domain.BackupDocument{
		Workplaces: workplaces,
		Labors:     labors,
		Attendance: attendance,
		Payments:   payments,
		Settings:   &settings,
		ExportDate: time.Now().UTC(),
		Version:    domain.BackupSchemaVersion,
	}, nil
}

// ImportAll builds the replacement state aside and swaps it in only if every
// record validates, so a failed import leaves the pre-import state untouched.
func (s *Store) ImportAll(ctx context.Context, doc *domain.BackupDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := newState()
	next.settings = s.st.settings

	for _, w := range doc.Workplaces {
		if _, exists := next.workplaces[w.WorkplaceID]; exists {
			return apperrors.NewConflictError("duplicate workplace ID " + w.WorkplaceID + " in backup")
		}
		next.workplaces[w.WorkplaceID] = w
	}
	for _, l := range doc.Labors {
		if _, exists := next.labors[l.LaborID]; exists {
			return apperrors.NewConflictError("duplicate labor ID " + l.LaborID + " in backup")
		}
		if _, ok := next.workplaces[l.WorkplaceID]; !ok {
			return apperrors.NewForeignKeyError("labor " + l.LaborID + " references missing workplace " + l.WorkplaceID)
		}
		next.labors[l.LaborID] = l
	}
	for _, a := range doc.Attendance {
		if !a.Status.Valid() {
			return apperrors.NewValidationFailedError("invalid attendance status " + string(a.Status) + " in backup")
		}
		if _, ok := next.labors[a.LaborID]; !ok {
			return apperrors.NewForeignKeyError("attendance " + a.AttendanceID + " references missing labor " + a.LaborID)
		}
		next.attendance[attendanceKey(a.LaborID, a.Date)] = a
	}
	for _, p := range doc.Payments {
		if _, ok := next.labors[p.LaborID]; !ok {
			return apperrors.NewForeignKeyError("payment " + p.PaymentID + " references missing labor " + p.LaborID)
		}
		next.payments[p.PaymentID] = p
	}
	if doc.Settings != nil {
		next.settings = *doc.Settings
	}

	s.st = next
	return nil
}

func (s *Store) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings := s.st.settings
	settings.HasCompletedOnboarding = false
	settings.ActiveWorkplaceID = nil
	s.st = newState()
	s.st.settings = settings
	return nil
}
