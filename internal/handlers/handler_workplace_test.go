package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/labor_ledger_app/internal/apperrors"
	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/labor_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/labor_ledger_app/internal/dto"
	"github.com/SscSPs/labor_ledger_app/internal/handlers"
	"github.com/SscSPs/labor_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DataService ---

type MockDataService struct {
	mock.Mock
}

func (m *MockDataService) Workplaces() []domain.Workplace {
	args := m.Called()
	return args.Get(0).([]domain.Workplace)
}
func (m *MockDataService) ActiveWorkplace() *domain.Workplace {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Workplace)
}
func (m *MockDataService) Labors() []domain.Labor {
	args := m.Called()
	return args.Get(0).([]domain.Labor)
}
func (m *MockDataService) AttendanceRecords() []domain.AttendanceRecord {
	args := m.Called()
	return args.Get(0).([]domain.AttendanceRecord)
}
func (m *MockDataService) PaymentRecords() []domain.PaymentRecord {
	args := m.Called()
	return args.Get(0).([]domain.PaymentRecord)
}
func (m *MockDataService) Settings() domain.AppSettings {
	args := m.Called()
	return args.Get(0).(domain.AppSettings)
}
func (m *MockDataService) DashboardStats() domain.DashboardStats {
	args := m.Called()
	return args.Get(0).(domain.DashboardStats)
}
func (m *MockDataService) LaborSummary(laborID string) (*domain.LaborSummary, error) {
	args := m.Called(laborID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LaborSummary), args.Error(1)
}
func (m *MockDataService) IsLoading() bool {
	args := m.Called()
	return args.Bool(0)
}
func (m *MockDataService) Initialize(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDataService) RefreshData(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDataService) AddWorkplace(ctx context.Context, req dto.CreateWorkplaceRequest) (*domain.Workplace, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}
func (m *MockDataService) UpdateWorkplace(ctx context.Context, workplaceID string, req dto.UpdateWorkplaceRequest) (*domain.Workplace, error) {
	args := m.Called(ctx, workplaceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workplace), args.Error(1)
}
func (m *MockDataService) DeleteWorkplace(ctx context.Context, workplaceID string) error {
	args := m.Called(ctx, workplaceID)
	return args.Error(0)
}
func (m *MockDataService) SetActiveWorkplace(ctx context.Context, workplaceID string) error {
	args := m.Called(ctx, workplaceID)
	return args.Error(0)
}
func (m *MockDataService) AddLabor(ctx context.Context, req dto.CreateLaborRequest) (*domain.Labor, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Labor), args.Error(1)
}
func (m *MockDataService) UpdateLabor(ctx context.Context, laborID string, req dto.UpdateLaborRequest) (*domain.Labor, error) {
	args := m.Called(ctx, laborID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Labor), args.Error(1)
}
func (m *MockDataService) DeleteLabor(ctx context.Context, laborID string) error {
	args := m.Called(ctx, laborID)
	return args.Error(0)
}
func (m *MockDataService) MarkAttendance(ctx context.Context, req dto.MarkAttendanceRequest) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}
func (m *MockDataService) AddPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}
func (m *MockDataService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, paymentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}
func (m *MockDataService) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}
func (m *MockDataService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.AppSettings, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}
func (m *MockDataService) ExportData(ctx context.Context) (*domain.BackupDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BackupDocument), args.Error(1)
}
func (m *MockDataService) ImportData(ctx context.Context, raw []byte) error {
	args := m.Called(ctx, raw)
	return args.Error(0)
}
func (m *MockDataService) ResetData(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock ReportingService ---

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GenerateReport(ctx context.Context, req dto.ReportRequest) (*domain.ReportData, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportData), args.Error(1)
}

// --- Test Suite Setup ---

type WorkplaceHandlerTestSuite struct {
	suite.Suite
	mockData      *MockDataService
	mockReporting *MockReportingService
	router        *gin.Engine
}

func (suite *WorkplaceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockData = new(MockDataService)
	suite.mockReporting = new(MockReportingService)

	suite.router = gin.New()
	// IsProduction skips the swagger routes; they are irrelevant here.
	cfg := &config.Config{IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Data:      suite.mockData,
		Reporting: suite.mockReporting,
	})
}

func (suite *WorkplaceHandlerTestSuite) serve(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *WorkplaceHandlerTestSuite) TestCreateWorkplace_Success() {
	req := dto.CreateWorkplaceRequest{Name: "Site A", Description: "Main site"}
	created := &domain.Workplace{WorkplaceID: uuid.NewString(), Name: "Site A", Description: "Main site", IsActive: true}
	suite.mockData.On("AddWorkplace", mock.Anything, req).Return(created, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/workplaces", req)

	suite.Equal(http.StatusCreated, w.Code)
	var got domain.Workplace
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(created.WorkplaceID, got.WorkplaceID)
	suite.mockData.AssertExpectations(suite.T())
}

func (suite *WorkplaceHandlerTestSuite) TestCreateWorkplace_MissingNameRejected() {
	w := suite.serve(http.MethodPost, "/api/v1/workplaces", map[string]string{"description": "no name"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockData.AssertNotCalled(suite.T(), "AddWorkplace", mock.Anything, mock.Anything)
}

func (suite *WorkplaceHandlerTestSuite) TestDeleteWorkplace_NotFound() {
	suite.mockData.On("DeleteWorkplace", mock.Anything, "missing").
		Return(apperrors.NewNotFoundError("workplace missing not found")).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/workplaces/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockData.AssertExpectations(suite.T())
}

func (suite *WorkplaceHandlerTestSuite) TestActivateWorkplace_Success() {
	workplaceID := uuid.NewString()
	active := &domain.Workplace{WorkplaceID: workplaceID, Name: "Site A", IsActive: true}
	suite.mockData.On("SetActiveWorkplace", mock.Anything, workplaceID).Return(nil).Once()
	suite.mockData.On("ActiveWorkplace").Return(active).Once()

	w := suite.serve(http.MethodPost, "/api/v1/workplaces/"+workplaceID+"/activate", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockData.AssertExpectations(suite.T())
}

func (suite *WorkplaceHandlerTestSuite) TestCreateLabor_NoActiveWorkplaceConflict() {
	req := dto.CreateLaborRequest{Name: "Worker", Phone: "1", DailyWage: decimal.NewFromInt(100)}
	suite.mockData.On("AddLabor", mock.Anything, req).
		Return(nil, apperrors.ErrNoActiveWorkplace).Once()

	w := suite.serve(http.MethodPost, "/api/v1/labors", req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockData.AssertExpectations(suite.T())
}

func (suite *WorkplaceHandlerTestSuite) TestMarkAttendance_InvalidStatusRejectedAtBinding() {
	w := suite.serve(http.MethodPost, "/api/v1/attendance", map[string]string{
		"laborId": "l1", "date": "2024-03-15", "status": "late",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockData.AssertNotCalled(suite.T(), "MarkAttendance", mock.Anything, mock.Anything)
}

func (suite *WorkplaceHandlerTestSuite) TestGetState_Success() {
	workplace := domain.Workplace{WorkplaceID: uuid.NewString(), Name: "Site A"}
	suite.mockData.On("Workplaces").Return([]domain.Workplace{workplace}).Once()
	suite.mockData.On("ActiveWorkplace").Return(&workplace).Once()
	suite.mockData.On("Labors").Return([]domain.Labor{}).Once()
	suite.mockData.On("AttendanceRecords").Return([]domain.AttendanceRecord{}).Once()
	suite.mockData.On("PaymentRecords").Return([]domain.PaymentRecord{}).Once()
	suite.mockData.On("Settings").Return(domain.DefaultSettings()).Once()
	suite.mockData.On("DashboardStats").Return(domain.DashboardStats{TotalLabors: 0}).Once()
	suite.mockData.On("IsLoading").Return(false).Once()

	w := suite.serve(http.MethodGet, "/api/v1/state", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.StateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().NotNil(got.ActiveWorkplace)
	suite.Equal(workplace.WorkplaceID, got.ActiveWorkplace.WorkplaceID)
	suite.mockData.AssertExpectations(suite.T())
}

func (suite *WorkplaceHandlerTestSuite) TestGenerateReport_BadPeriodRejected() {
	w := suite.serve(http.MethodGet, "/api/v1/reports?period=year", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReporting.AssertNotCalled(suite.T(), "GenerateReport", mock.Anything, mock.Anything)
}

func TestWorkplaceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkplaceHandlerTestSuite))
}
