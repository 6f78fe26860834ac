package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/labor_ledger_app/internal/apperrors"
	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/labor_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/labor_ledger_app/internal/core/services"
	"github.com/SscSPs/labor_ledger_app/internal/dto"
	"github.com/SscSPs/labor_ledger_app/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// DataServiceTestSuite runs the orchestrator against the in-memory store so
// upsert, cascade and selection semantics are exercised end to end.
type DataServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	service portssvc.DataSvcFacade
	now     time.Time
	ctx     context.Context
}

func (s *DataServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	s.store = memory.NewStore()
	s.service = services.NewDataService(
		memory.NewRepositoryProvider(s.store),
		services.WithClock(func() time.Time { return s.now }),
	)
	s.Require().NoError(s.service.Initialize(s.ctx))
}

func (s *DataServiceTestSuite) advanceClock(d time.Duration) {
	s.now = s.now.Add(d)
}

func (s *DataServiceTestSuite) addLabor(name string, wage int64) *domain.Labor {
	labor, err := s.service.AddLabor(s.ctx, dto.CreateLaborRequest{
		Name:      name,
		Phone:     "0300-0000000",
		DailyWage: decimal.NewFromInt(wage),
	})
	s.Require().NoError(err)
	return labor
}

// --- Initialization and workplace selection ---

func (s *DataServiceTestSuite) TestInitialize_FirstLaunchCreatesDefaultWorkplace() {
	workplaces := s.service.Workplaces()
	s.Require().Len(workplaces, 1)
	s.Equal(domain.DefaultWorkplaceName, workplaces[0].Name)

	active := s.service.ActiveWorkplace()
	s.Require().NotNil(active)
	s.Equal(workplaces[0].WorkplaceID, active.WorkplaceID)

	// Selection must be persisted, not just held in memory.
	settings, err := s.store.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(settings.ActiveWorkplaceID)
	s.Equal(active.WorkplaceID, *settings.ActiveWorkplaceID)
}

func (s *DataServiceTestSuite) TestInitialize_NoDefaultWorkplaceAfterOnboarding() {
	// A returning user with zero workplaces must not get a surprise workplace.
	store := memory.NewStore()
	s.Require().NoError(store.SaveSettings(s.ctx, domain.AppSettings{
		Language: "en", Theme: "light", Currency: "USD", HasCompletedOnboarding: true,
	}))
	svc := services.NewDataService(memory.NewRepositoryProvider(store))
	s.Require().NoError(svc.Initialize(s.ctx))

	s.Empty(svc.Workplaces())
	s.Nil(svc.ActiveWorkplace())
}

func (s *DataServiceTestSuite) TestDeleteLastWorkplace_ClearsActiveSelection() {
	active := s.service.ActiveWorkplace()
	s.Require().NotNil(active)

	s.Require().NoError(s.service.DeleteWorkplace(s.ctx, active.WorkplaceID))

	s.Nil(s.service.ActiveWorkplace())
	settings, err := s.store.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Nil(settings.ActiveWorkplaceID)

	// Labor mutations now have no workplace context.
	_, err = s.service.AddLabor(s.ctx, dto.CreateLaborRequest{
		Name: "A", Phone: "1", DailyWage: decimal.NewFromInt(100),
	})
	s.ErrorIs(err, apperrors.ErrNoActiveWorkplace)
}

func (s *DataServiceTestSuite) TestDeleteActiveWorkplace_FallsBackToRemaining() {
	original := s.service.ActiveWorkplace()
	s.advanceClock(time.Hour)
	second, err := s.service.AddWorkplace(s.ctx, dto.CreateWorkplaceRequest{Name: "Site B"})
	s.Require().NoError(err)

	// Adding a workplace never steals the active selection.
	s.Equal(original.WorkplaceID, s.service.ActiveWorkplace().WorkplaceID)

	s.Require().NoError(s.service.DeleteWorkplace(s.ctx, original.WorkplaceID))

	active := s.service.ActiveWorkplace()
	s.Require().NotNil(active)
	s.Equal(second.WorkplaceID, active.WorkplaceID)

	settings, err := s.store.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(settings.ActiveWorkplaceID)
	s.Equal(second.WorkplaceID, *settings.ActiveWorkplaceID)
}

func (s *DataServiceTestSuite) TestSetActiveWorkplace_ScopesReads() {
	first := s.service.ActiveWorkplace()
	s.addLabor("Worker One", 1000)

	s.advanceClock(time.Hour)
	second, err := s.service.AddWorkplace(s.ctx, dto.CreateWorkplaceRequest{Name: "Site B"})
	s.Require().NoError(err)
	s.Require().NoError(s.service.SetActiveWorkplace(s.ctx, second.WorkplaceID))

	s.Empty(s.service.Labors(), "second workplace starts empty")

	s.Require().NoError(s.service.SetActiveWorkplace(s.ctx, first.WorkplaceID))
	s.Len(s.service.Labors(), 1)
}

func (s *DataServiceTestSuite) TestRefresh_StaleStoredSelectionFallsBackToFirst() {
	// A persisted selection pointing at a workplace that no longer exists must
	// be replaced by the first available workplace, and the fix persisted.
	store := memory.NewStore()
	s.Require().NoError(store.SaveWorkplace(s.ctx, domain.Workplace{
		WorkplaceID: "w1", Name: "Site A", IsActive: true, CreatedAt: s.now,
	}))
	stale := "deleted-workplace-id"
	s.Require().NoError(store.SaveSettings(s.ctx, domain.AppSettings{
		Language: "en", Theme: "light", Currency: "USD",
		HasCompletedOnboarding: true,
		ActiveWorkplaceID:      &stale,
	}))

	svc := services.NewDataService(memory.NewRepositoryProvider(store))
	s.Require().NoError(svc.Initialize(s.ctx))

	active := svc.ActiveWorkplace()
	s.Require().NotNil(active)
	s.Equal("w1", active.WorkplaceID)

	settings, err := store.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(settings.ActiveWorkplaceID)
	s.Equal("w1", *settings.ActiveWorkplaceID)
}

func (s *DataServiceTestSuite) TestSetActiveWorkplace_UnknownIDFails() {
	err := s.service.SetActiveWorkplace(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Attendance semantics ---

func (s *DataServiceTestSuite) TestMarkAttendance_SnapshotsWageFromCurrentRate() {
	labor := s.addLabor("Worker One", 1000)

	record, err := s.service.MarkAttendance(s.ctx, dto.MarkAttendanceRequest{
		LaborID: labor.LaborID, Date: "2024-03-15", Status: "present",
	})
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(1000).Equal(record.Wage))

	half, err := s.service.MarkAttendance(s.ctx, dto.MarkAttendanceRequest{
		LaborID: labor.LaborID, Date: "2024-03-14", Status: "half",
	})
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(500).Equal(half.Wage))
}

func (s *DataServiceTestSuite) TestMarkAttendance_RemarkReplacesRecord() {
	labor := s.addLabor("Worker One", 1000)

	_, err := s.service.MarkAttendance(s.ctx, dto.MarkAttendanceRequest{
		LaborID: labor.LaborID, Date: "2024-03-15", Status: "present",
	})
	s.Require().NoError(err)

	// The wage changes, then the same day is re-marked as half.
	newWage := decimal.NewFromInt(500)
	_, err = s.service.UpdateLabor(s.ctx, labor.LaborID, dto.UpdateLaborRequest{DailyWage: &newWage})
	s.Require().NoError(err)

	_, err = s.service.MarkAttendance(s.ctx, dto.MarkAttendanceRequest{
		LaborID: labor.LaborID, Date: "2024-03-15", Status: "half",
	})
	s.Require().NoError(err)

	records := s.service.AttendanceRecords()
	s.Require().Len(records, 1, "re-marking must replace, never duplicate")
	s.Equal(domain.StatusHalf, records[0].Status)
	s.True(decimal.NewFromInt(250).Equal(records[0].Wage))
}

func (s *DataServiceTestSuite) TestUpdateLabor_KeepsHistoricalWages() {
	labor := s.addLabor("Worker One", 1000)
	_, err := s.service.MarkAttendance(s.ctx, dto.MarkAttendanceRequest{
		LaborID: labor.LaborID, Date: "2024-03-14", Status: "present",
	})
	s.Require().NoError(err)

	newWage := decimal.NewFromInt(2000)
	_, err = s.service.UpdateLabor(s.ctx, labor.LaborID, dto.UpdateLaborRequest{DailyWage: &newWage})
	s.Require().NoError(err)

	records := s.service.AttendanceRecords()
	s.Require().Len(records, 1)
	s.True(decimal.NewFromInt(1000).Equal(records[0].Wage), "stored wage is a snapshot")
}

func (s *DataServiceTestSuite) TestMarkAttendance_RejectsBadInput() {
	labor := s.addLabor("Worker One", 1000)

	_, err := s.service.MarkAttendance(s.ctx, dto.MarkAttendanceRequest{
		LaborID: labor.LaborID, Date: "15-03-2024", Status: "present",
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.MarkAttendance(s.ctx, dto.MarkAttendanceRequest{
		LaborID: labor.LaborID, Date: "2024-03-15", Status: "late",
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.MarkAttendance(s.ctx, dto.MarkAttendanceRequest{
		LaborID: "missing", Date: "2024-03-15", Status: "present",
	})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Labor and payment validation ---

func (s *DataServiceTestSuite) TestAddLabor_RejectsNonPositiveWage() {
	_, err := s.service.AddLabor(s.ctx, dto.CreateLaborRequest{
		Name: "A", Phone: "1", DailyWage: decimal.Zero,
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.AddLabor(s.ctx, dto.CreateLaborRequest{
		Name: "A", Phone: "1", DailyWage: decimal.NewFromInt(-10),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *DataServiceTestSuite) TestAddPayment_RejectsNonPositiveAmount() {
	labor := s.addLabor("Worker One", 1000)

	_, err := s.service.AddPayment(s.ctx, dto.CreatePaymentRequest{
		LaborID: labor.LaborID, Amount: decimal.Zero, Date: "2024-03-15", Type: "daily",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *DataServiceTestSuite) TestAddPayment_MultiplePerDayAllowed() {
	labor := s.addLabor("Worker One", 1000)

	for i := 0; i < 2; i++ {
		_, err := s.service.AddPayment(s.ctx, dto.CreatePaymentRequest{
			LaborID: labor.LaborID, Amount: decimal.NewFromInt(300), Date: "2024-03-15", Type: "partial",
		})
		s.Require().NoError(err)
	}
	s.Len(s.service.PaymentRecords(), 2)
}

func (s *DataServiceTestSuite) TestPaymentMutations_ScopedToActiveWorkplace() {
	labor := s.addLabor("Worker One", 1000)
	payment, err := s.service.AddPayment(s.ctx, dto.CreatePaymentRequest{
		LaborID: labor.LaborID, Amount: decimal.NewFromInt(500), Date: "2024-03-15", Type: "daily",
	})
	s.Require().NoError(err)

	second, err := s.service.AddWorkplace(s.ctx, dto.CreateWorkplaceRequest{Name: "Site B"})
	s.Require().NoError(err)
	s.Require().NoError(s.service.SetActiveWorkplace(s.ctx, second.WorkplaceID))

	// Another workplace's payment must be invisible to mutations.
	amount := decimal.NewFromInt(900)
	_, err = s.service.UpdatePayment(s.ctx, payment.PaymentID, dto.UpdatePaymentRequest{Amount: &amount})
	s.ErrorIs(err, apperrors.ErrNotFound)

	err = s.service.DeletePayment(s.ctx, payment.PaymentID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	// The record is untouched and mutable again once its workplace is active.
	stored, err := s.store.FindPaymentByID(s.ctx, payment.PaymentID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(500).Equal(stored.Amount))

	s.Require().NoError(s.service.SetActiveWorkplace(s.ctx, labor.WorkplaceID))
	s.Require().NoError(s.service.DeletePayment(s.ctx, payment.PaymentID))
	s.Empty(s.service.PaymentRecords())
}

func (s *DataServiceTestSuite) TestDeleteLabor_CascadesToRecords() {
	labor := s.addLabor("Worker One", 1000)
	_, err := s.service.MarkAttendance(s.ctx, dto.MarkAttendanceRequest{
		LaborID: labor.LaborID, Date: "2024-03-15", Status: "present",
	})
	s.Require().NoError(err)
	_, err = s.service.AddPayment(s.ctx, dto.CreatePaymentRequest{
		LaborID: labor.LaborID, Amount: decimal.NewFromInt(500), Date: "2024-03-15", Type: "daily",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteLabor(s.ctx, labor.LaborID))

	s.Empty(s.service.Labors())
	s.Empty(s.service.AttendanceRecords())
	s.Empty(s.service.PaymentRecords())
}

// --- Derived state ---

func (s *DataServiceTestSuite) TestLaborSummaryAndDashboard() {
	labor := s.addLabor("Worker One", 1000)
	_, err := s.service.MarkAttendance(s.ctx, dto.MarkAttendanceRequest{
		LaborID: labor.LaborID, Date: "2024-03-15", Status: "present",
	})
	s.Require().NoError(err)
	_, err = s.service.MarkAttendance(s.ctx, dto.MarkAttendanceRequest{
		LaborID: labor.LaborID, Date: "2024-03-14", Status: "half",
	})
	s.Require().NoError(err)
	_, err = s.service.AddPayment(s.ctx, dto.CreatePaymentRequest{
		LaborID: labor.LaborID, Amount: decimal.NewFromInt(2000), Date: "2024-03-15", Type: "weekly",
	})
	s.Require().NoError(err)

	summary, err := s.service.LaborSummary(labor.LaborID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(1500).Equal(summary.TotalEarned))
	s.True(decimal.NewFromInt(2000).Equal(summary.TotalPaid))
	s.True(decimal.NewFromInt(-500).Equal(summary.PendingBalance), "overpayment stays negative")

	stats := s.service.DashboardStats()
	s.Equal(1, stats.TotalLabors)
	s.Equal(1, stats.PresentToday) // clock pinned to 2024-03-15
	s.Equal(0, stats.HalfDayToday)
	s.True(decimal.NewFromInt(-500).Equal(stats.TotalPendingAmount))

	_, err = s.service.LaborSummary("missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Settings ---

func (s *DataServiceTestSuite) TestUpdateSettings_RoundTrip() {
	active := s.service.ActiveWorkplace()
	done := true
	updated, err := s.service.UpdateSettings(s.ctx, dto.UpdateSettingsRequest{
		Language:               "ur",
		Theme:                  "dark",
		Currency:               "PKR",
		HasCompletedOnboarding: &done,
		ActiveWorkplaceID:      &active.WorkplaceID,
	})
	s.Require().NoError(err)
	s.Equal("ur", updated.Language)
	s.Equal("dark", updated.Theme)
	s.Equal("PKR", updated.Currency)
	s.True(updated.HasCompletedOnboarding)

	settings := s.service.Settings()
	s.Equal("ur", settings.Language)
}

func (s *DataServiceTestSuite) TestUpdateSettings_UnknownWorkplaceFails() {
	done := true
	missing := "missing"
	_, err := s.service.UpdateSettings(s.ctx, dto.UpdateSettingsRequest{
		Language: "en", Theme: "light", Currency: "USD",
		HasCompletedOnboarding: &done,
		ActiveWorkplaceID:      &missing,
	})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Backup ---

func (s *DataServiceTestSuite) TestBackup_ExportResetImportRoundTrip() {
	labor := s.addLabor("Worker One", 1000)
	_, err := s.service.MarkAttendance(s.ctx, dto.MarkAttendanceRequest{
		LaborID: labor.LaborID, Date: "2024-03-15", Status: "present",
	})
	s.Require().NoError(err)
	_, err = s.service.AddPayment(s.ctx, dto.CreatePaymentRequest{
		LaborID: labor.LaborID, Amount: decimal.NewFromInt(500), Date: "2024-03-15", Type: "daily",
	})
	s.Require().NoError(err)

	doc, err := s.service.ExportData(s.ctx)
	s.Require().NoError(err)
	s.Equal(domain.BackupSchemaVersion, doc.Version)
	s.Len(doc.Workplaces, 1)
	s.Len(doc.Labors, 1)
	s.Len(doc.Attendance, 1)
	s.Len(doc.Payments, 1)
	s.Require().NotNil(doc.Settings)

	raw, err := json.Marshal(doc)
	s.Require().NoError(err)

	s.Require().NoError(s.service.ResetData(s.ctx))
	s.Empty(s.service.Workplaces())
	s.Nil(s.service.ActiveWorkplace())
	s.False(s.service.Settings().HasCompletedOnboarding)

	s.Require().NoError(s.service.ImportData(s.ctx, raw))

	s.Len(s.service.Workplaces(), 1)
	s.Require().NotNil(s.service.ActiveWorkplace())
	s.Len(s.service.Labors(), 1)
	s.Len(s.service.AttendanceRecords(), 1)
	s.Len(s.service.PaymentRecords(), 1)
}

func (s *DataServiceTestSuite) TestImportData_MalformedJSONRejected() {
	err := s.service.ImportData(s.ctx, []byte("{not json"))
	s.ErrorIs(err, apperrors.ErrImportParse)
}

func (s *DataServiceTestSuite) TestImportData_BrokenReferencesKeepOldState() {
	s.addLabor("Worker One", 1000)

	doc := domain.BackupDocument{
		Workplaces: []domain.Workplace{{WorkplaceID: "w1", Name: "Site"}},
		Labors:     []domain.Labor{{LaborID: "l1", WorkplaceID: "missing", Name: "X", DailyWage: decimal.NewFromInt(1)}},
		Version:    domain.BackupSchemaVersion,
	}
	raw, err := json.Marshal(doc)
	s.Require().NoError(err)

	err = s.service.ImportData(s.ctx, raw)
	s.Error(err)

	// The failed import must leave the previous dataset intact.
	s.Len(s.service.Labors(), 1)
	s.Equal("Worker One", s.service.Labors()[0].Name)
}

func (s *DataServiceTestSuite) TestResetData_KeepsPreferences() {
	done := true
	active := s.service.ActiveWorkplace()
	_, err := s.service.UpdateSettings(s.ctx, dto.UpdateSettingsRequest{
		Language: "hi", Theme: "dark", Currency: "INR",
		HasCompletedOnboarding: &done,
		ActiveWorkplaceID:      &active.WorkplaceID,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.ResetData(s.ctx))

	settings := s.service.Settings()
	s.Equal("hi", settings.Language)
	s.Equal("INR", settings.Currency)
	s.False(settings.HasCompletedOnboarding)
	s.Nil(settings.ActiveWorkplaceID)
}

func TestDataServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DataServiceTestSuite))
}
