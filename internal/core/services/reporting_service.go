package services

import (
	"context"
	"time"

	"github.com/SscSPs/labor_ledger_app/internal/apperrors"
	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/labor_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/labor_ledger_app/internal/dto"
	"github.com/SscSPs/labor_ledger_app/internal/utils/payroll"
)

// reportingService generates period reports over the active workplace's
// snapshot. It reads through the data service so a report always reflects the
// same state the dashboard shows.
type reportingService struct {
	BaseService
	reader portssvc.DataReaderSvc
	nowFn  func() time.Time
}

// ReportingServiceOption configures optional behavior of the reporting service.
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the time source, used by tests to pin the
// report window.
func WithReportingClock(nowFn func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.nowFn = nowFn
	}
}

// NewReportingService creates the reporting service on top of the given reader.
func NewReportingService(reader portssvc.DataReaderSvc, opts ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		reader: reader,
		nowFn:  time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GenerateReport aggregates the active workplace's attendance and payments
// over the requested window and ranks the top earners.
func (s *reportingService) GenerateReport(ctx context.Context, req dto.ReportRequest) (*domain.ReportData, error) {
	if s.reader.ActiveWorkplace() == nil {
		return nil, apperrors.ErrNoActiveWorkplace
	}

	filters := domain.ReportFilters{
		Period:    domain.ReportPeriod(req.Period),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	startDate, endDate, err := s.resolveWindow(filters)
	if err != nil {
		return nil, err
	}

	report := payroll.CalculateReport(
		s.reader.Labors(),
		s.reader.AttendanceRecords(),
		s.reader.PaymentRecords(),
		filters,
		startDate,
		endDate,
	)
	s.LogDebug(ctx, "report generated",
		"period", string(filters.Period),
		"startDate", startDate,
		"endDate", endDate,
		"totalDays", report.TotalDays)
	return &report, nil
}

// resolveWindow turns the requested period into an inclusive [start, end]
// date range. A custom period missing either bound falls back to the current
// month rather than failing.
func (s *reportingService) resolveWindow(filters domain.ReportFilters) (string, string, error) {
	now := s.nowFn()
	end := now.Format(payroll.DateLayout)

	switch filters.Period {
	case domain.PeriodWeek:
		return now.AddDate(0, 0, -7).Format(payroll.DateLayout), end, nil
	case domain.PeriodMonth:
		return firstOfMonth(now), end, nil
	case domain.PeriodCustom:
		if filters.StartDate == "" || filters.EndDate == "" {
			return firstOfMonth(now), end, nil
		}
		if _, err := time.Parse(payroll.DateLayout, filters.StartDate); err != nil {
			return "", "", apperrors.NewValidationFailedError("invalid start date " + filters.StartDate)
		}
		if _, err := time.Parse(payroll.DateLayout, filters.EndDate); err != nil {
			return "", "", apperrors.NewValidationFailedError("invalid end date " + filters.EndDate)
		}
		if filters.StartDate > filters.EndDate {
			return "", "", apperrors.NewValidationFailedError("start date is after end date")
		}
		return filters.StartDate, filters.EndDate, nil
	default:
		return "", "", apperrors.NewValidationFailedError("invalid report period " + string(filters.Period))
	}
}

func firstOfMonth(now time.Time) string {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(payroll.DateLayout)
}
