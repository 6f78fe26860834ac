package payroll

import (
	"fmt"
	"time"

	"github.com/SscSPs/labor_ledger_app/internal/apperrors"
	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format used throughout the system.
const DateLayout = "2006-01-02"

var two = decimal.NewFromInt(2)

// CalculateWage derives the wage earned for one attendance day from the
// labor's daily wage and the marked status. Present earns the full wage, half
// earns half, absent earns zero. Any other status is rejected.
func CalculateWage(dailyWage decimal.Decimal, status domain.AttendanceStatus) (decimal.Decimal, error) {
	switch status {
	case domain.StatusPresent:
		return dailyWage, nil
	case domain.StatusHalf:
		return dailyWage.Div(two), nil
	case domain.StatusAbsent:
		return decimal.Zero, nil
	default:
		return decimal.Zero, apperrors.NewValidationFailedError(fmt.Sprintf("invalid attendance status %q", status))
	}
}

// CalculateLaborSummary derives the financial and attendance totals for one
// labor from the supplied record sets. Both sets are filtered by labor ID; the
// caller is responsible for supplying records from the relevant workplace.
// PendingBalance is earned minus paid and may be negative (overpayment).
func CalculateLaborSummary(labor domain.Labor, attendance []domain.AttendanceRecord, payments []domain.PaymentRecord) domain.LaborSummary {
	summary := domain.LaborSummary{
		Labor:          labor,
		TotalEarned:    decimal.Zero,
		TotalPaid:      decimal.Zero,
		PendingBalance: decimal.Zero,
	}

	for _, record := range attendance {
		if record.LaborID != labor.LaborID {
			continue
		}
		summary.TotalEarned = summary.TotalEarned.Add(record.Wage)
		summary.TotalDaysWorked++
		switch record.Status {
		case domain.StatusPresent:
			summary.TotalDaysPresent++
		case domain.StatusHalf:
			summary.TotalDaysHalf++
		case domain.StatusAbsent:
			summary.TotalDaysAbsent++
		}
	}

	for _, payment := range payments {
		if payment.LaborID != labor.LaborID {
			continue
		}
		summary.TotalPaid = summary.TotalPaid.Add(payment.Amount)
	}

	summary.PendingBalance = summary.TotalEarned.Sub(summary.TotalPaid)
	return summary
}

// CalculateDashboardStats aggregates the full dataset for the dashboard.
// "Today" is the local calendar date of now. TotalPendingAmount is the net sum
// of every labor's pending balance, so overpaid labors offset underpaid ones.
func CalculateDashboardStats(labors []domain.Labor, attendance []domain.AttendanceRecord, payments []domain.PaymentRecord, now time.Time) domain.DashboardStats {
	stats := domain.DashboardStats{
		TotalLabors:        len(labors),
		TotalPendingAmount: decimal.Zero,
	}

	today := now.Format(DateLayout)
	for _, record := range attendance {
		if record.Date != today {
			continue
		}
		switch record.Status {
		case domain.StatusPresent:
			stats.PresentToday++
		case domain.StatusAbsent:
			stats.AbsentToday++
		case domain.StatusHalf:
			stats.HalfDayToday++
		}
	}

	for _, labor := range labors {
		summary := CalculateLaborSummary(labor, attendance, payments)
		stats.TotalPendingAmount = stats.TotalPendingAmount.Add(summary.PendingBalance)
	}

	return stats
}

// CalculateReport aggregates attendance and payments within [startDate, endDate]
// (inclusive, "2006-01-02" strings) and ranks labors by earnings in the period.
// The ranking is stable: ties keep the labors' original order. TotalPending is
// computed over the full dataset, matching the dashboard's net exposure.
func CalculateReport(labors []domain.Labor, attendance []domain.AttendanceRecord, payments []domain.PaymentRecord, filters domain.ReportFilters, startDate, endDate string) domain.ReportData {
	report := domain.ReportData{
		Period:       filters.Period,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalEarned:  decimal.Zero,
		TotalPaid:    decimal.Zero,
		TotalPending: decimal.Zero,
	}

	// ISO dates compare correctly as strings.
	inPeriod := func(date string) bool {
		return date >= startDate && date <= endDate
	}

	var periodAttendance []domain.AttendanceRecord
	for _, record := range attendance {
		if !inPeriod(record.Date) {
			continue
		}
		periodAttendance = append(periodAttendance, record)
		report.TotalEarned = report.TotalEarned.Add(record.Wage)
		report.TotalDays++
		switch record.Status {
		case domain.StatusPresent:
			report.PresentDays++
		case domain.StatusHalf:
			report.HalfDays++
		case domain.StatusAbsent:
			report.AbsentDays++
		}
	}

	for _, payment := range payments {
		if inPeriod(payment.Date) {
			report.TotalPaid = report.TotalPaid.Add(payment.Amount)
		}
	}

	for _, labor := range labors {
		summary := CalculateLaborSummary(labor, attendance, payments)
		report.TotalPending = report.TotalPending.Add(summary.PendingBalance)
	}

	performance := make([]domain.LaborPerformance, 0, len(labors))
	for _, labor := range labors {
		row := domain.LaborPerformance{
			Labor:          labor,
			TotalEarned:    decimal.Zero,
			AttendanceRate: decimal.Zero,
		}
		marked := 0
		for _, record := range periodAttendance {
			if record.LaborID != labor.LaborID {
				continue
			}
			marked++
			if record.Status != domain.StatusAbsent {
				row.TotalWorked++
			}
			row.TotalEarned = row.TotalEarned.Add(record.Wage)
		}
		if marked > 0 {
			row.AttendanceRate = decimal.NewFromInt(int64(row.TotalWorked) * 100).Div(decimal.NewFromInt(int64(marked)))
		}
		performance = append(performance, row)
	}

	// Insertion sort keeps equal earners in their original order.
	for i := 1; i < len(performance); i++ {
		for j := i; j > 0 && performance[j].TotalEarned.GreaterThan(performance[j-1].TotalEarned); j-- {
			performance[j], performance[j-1] = performance[j-1], performance[j]
		}
	}

	if len(performance) > 5 {
		performance = performance[:5]
	}
	report.TopPerformers = performance

	return report
}
