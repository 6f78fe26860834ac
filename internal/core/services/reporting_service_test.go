package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/labor_ledger_app/internal/apperrors"
	portssvc "github.com/SscSPs/labor_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/labor_ledger_app/internal/core/services"
	"github.com/SscSPs/labor_ledger_app/internal/dto"
	"github.com/SscSPs/labor_ledger_app/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	dataService portssvc.DataSvcFacade
	service     portssvc.ReportingSvcFacade
	now         time.Time
	ctx         context.Context
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	nowFn := func() time.Time { return s.now }

	s.dataService = services.NewDataService(
		memory.NewRepositoryProvider(memory.NewStore()),
		services.WithClock(nowFn),
	)
	s.Require().NoError(s.dataService.Initialize(s.ctx))
	s.service = services.NewReportingService(s.dataService, services.WithReportingClock(nowFn))

	labor, err := s.dataService.AddLabor(s.ctx, dto.CreateLaborRequest{
		Name: "Worker One", Phone: "0300-0000000", DailyWage: decimal.NewFromInt(1000),
	})
	s.Require().NoError(err)

	// One mark inside the last week, one earlier in the month, one in February.
	for _, mark := range []struct {
		date   string
		status string
	}{
		{"2024-03-14", "present"},
		{"2024-03-05", "half"},
		{"2024-02-20", "present"},
	} {
		_, err := s.dataService.MarkAttendance(s.ctx, dto.MarkAttendanceRequest{
			LaborID: labor.LaborID, Date: mark.date, Status: mark.status,
		})
		s.Require().NoError(err)
	}
}

func (s *ReportingServiceTestSuite) TestGenerateReport_WeekWindow() {
	report, err := s.service.GenerateReport(s.ctx, dto.ReportRequest{Period: "week"})
	s.Require().NoError(err)

	s.Equal("2024-03-08", report.StartDate)
	s.Equal("2024-03-15", report.EndDate)
	s.Equal(1, report.TotalDays)
	s.True(decimal.NewFromInt(1000).Equal(report.TotalEarned))
}

func (s *ReportingServiceTestSuite) TestGenerateReport_MonthWindow() {
	report, err := s.service.GenerateReport(s.ctx, dto.ReportRequest{Period: "month"})
	s.Require().NoError(err)

	s.Equal("2024-03-01", report.StartDate)
	s.Equal("2024-03-15", report.EndDate)
	s.Equal(2, report.TotalDays)
	s.Equal(1, report.PresentDays)
	s.Equal(1, report.HalfDays)
	s.True(decimal.NewFromInt(1500).Equal(report.TotalEarned))
}

func (s *ReportingServiceTestSuite) TestGenerateReport_CustomWindow() {
	report, err := s.service.GenerateReport(s.ctx, dto.ReportRequest{
		Period: "custom", StartDate: "2024-02-01", EndDate: "2024-02-29",
	})
	s.Require().NoError(err)

	s.Equal(1, report.TotalDays)
	s.True(decimal.NewFromInt(1000).Equal(report.TotalEarned))
	// Pending is the full-dataset net, not the period's.
	s.True(decimal.NewFromInt(2500).Equal(report.TotalPending))
}

func (s *ReportingServiceTestSuite) TestGenerateReport_CustomMissingBoundFallsBackToMonth() {
	report, err := s.service.GenerateReport(s.ctx, dto.ReportRequest{
		Period: "custom", StartDate: "2024-02-01",
	})
	s.Require().NoError(err)

	s.Equal("2024-03-01", report.StartDate)
	s.Equal("2024-03-15", report.EndDate)
	s.Equal(2, report.TotalDays)
}

func (s *ReportingServiceTestSuite) TestGenerateReport_InvertedCustomWindowRejected() {
	_, err := s.service.GenerateReport(s.ctx, dto.ReportRequest{
		Period: "custom", StartDate: "2024-03-10", EndDate: "2024-03-01",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ReportingServiceTestSuite) TestGenerateReport_TopPerformersRanked() {
	second, err := s.dataService.AddLabor(s.ctx, dto.CreateLaborRequest{
		Name: "Worker Two", Phone: "0300-1111111", DailyWage: decimal.NewFromInt(3000),
	})
	s.Require().NoError(err)
	_, err = s.dataService.MarkAttendance(s.ctx, dto.MarkAttendanceRequest{
		LaborID: second.LaborID, Date: "2024-03-14", Status: "present",
	})
	s.Require().NoError(err)

	report, err := s.service.GenerateReport(s.ctx, dto.ReportRequest{Period: "week"})
	s.Require().NoError(err)

	s.Require().Len(report.TopPerformers, 2)
	s.Equal("Worker Two", report.TopPerformers[0].Labor.Name)
	s.True(decimal.NewFromInt(3000).Equal(report.TopPerformers[0].TotalEarned))
	s.True(decimal.NewFromInt(100).Equal(report.TopPerformers[0].AttendanceRate))
}

func (s *ReportingServiceTestSuite) TestGenerateReport_NoActiveWorkplace() {
	active := s.dataService.ActiveWorkplace()
	s.Require().NotNil(active)
	s.Require().NoError(s.dataService.DeleteWorkplace(s.ctx, active.WorkplaceID))

	_, err := s.service.GenerateReport(s.ctx, dto.ReportRequest{Period: "week"})
	s.ErrorIs(err, apperrors.ErrNoActiveWorkplace)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
