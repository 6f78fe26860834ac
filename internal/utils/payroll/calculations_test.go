package payroll_test

import (
	"testing"
	"time"

	"github.com/SscSPs/labor_ledger_app/internal/core/domain"
	"github.com/SscSPs/labor_ledger_app/internal/utils/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateWage(t *testing.T) {
	dailyWage := decimal.NewFromInt(1000)

	tests := []struct {
		name    string
		status  domain.AttendanceStatus
		want    decimal.Decimal
		wantErr bool
	}{
		{
			name:   "present earns the full wage",
			status: domain.StatusPresent,
			want:   decimal.NewFromInt(1000),
		},
		{
			name:   "half earns half the wage",
			status: domain.StatusHalf,
			want:   decimal.NewFromInt(500),
		},
		{
			name:   "absent earns zero",
			status: domain.StatusAbsent,
			want:   decimal.Zero,
		},
		{
			name:    "unknown status is rejected",
			status:  domain.AttendanceStatus("late"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := payroll.CalculateWage(dailyWage, tt.status)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestCalculateWage_OddWageHalvesExactly(t *testing.T) {
	wage, err := payroll.CalculateWage(decimal.NewFromInt(1001), domain.StatusHalf)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(500.5).Equal(wage))
}

func TestCalculateLaborSummary(t *testing.T) {
	labor := domain.Labor{LaborID: "l1", WorkplaceID: "w1", DailyWage: decimal.NewFromInt(1000)}
	other := domain.Labor{LaborID: "l2", WorkplaceID: "w1", DailyWage: decimal.NewFromInt(800)}

	attendance := []domain.AttendanceRecord{
		{LaborID: "l1", Date: "2024-03-01", Status: domain.StatusPresent, Wage: decimal.NewFromInt(1000)},
		{LaborID: "l1", Date: "2024-03-02", Status: domain.StatusHalf, Wage: decimal.NewFromInt(500)},
		{LaborID: "l1", Date: "2024-03-03", Status: domain.StatusAbsent, Wage: decimal.Zero},
		// Another labor's records must not leak into the summary.
		{LaborID: "l2", Date: "2024-03-01", Status: domain.StatusPresent, Wage: decimal.NewFromInt(800)},
	}
	payments := []domain.PaymentRecord{
		{LaborID: "l1", Amount: decimal.NewFromInt(600), Date: "2024-03-02", Type: domain.PaymentPartial},
		{LaborID: "l2", Amount: decimal.NewFromInt(800), Date: "2024-03-02", Type: domain.PaymentDaily},
	}

	summary := payroll.CalculateLaborSummary(labor, attendance, payments)

	assert.True(t, decimal.NewFromInt(1500).Equal(summary.TotalEarned))
	assert.True(t, decimal.NewFromInt(600).Equal(summary.TotalPaid))
	assert.True(t, decimal.NewFromInt(900).Equal(summary.PendingBalance))
	assert.Equal(t, 3, summary.TotalDaysWorked)
	assert.Equal(t, 1, summary.TotalDaysPresent)
	assert.Equal(t, 1, summary.TotalDaysHalf)
	assert.Equal(t, 1, summary.TotalDaysAbsent)

	otherSummary := payroll.CalculateLaborSummary(other, attendance, payments)
	assert.True(t, otherSummary.PendingBalance.IsZero())
}

func TestCalculateLaborSummary_OverpaymentGoesNegative(t *testing.T) {
	labor := domain.Labor{LaborID: "l1", DailyWage: decimal.NewFromInt(500)}
	attendance := []domain.AttendanceRecord{
		{LaborID: "l1", Date: "2024-03-01", Status: domain.StatusPresent, Wage: decimal.NewFromInt(500)},
	}
	payments := []domain.PaymentRecord{
		{LaborID: "l1", Amount: decimal.NewFromInt(2000), Date: "2024-03-01", Type: domain.PaymentWeekly},
	}

	summary := payroll.CalculateLaborSummary(labor, attendance, payments)
	assert.True(t, decimal.NewFromInt(-1500).Equal(summary.PendingBalance))
}

func TestCalculateDashboardStats(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

	labors := []domain.Labor{
		{LaborID: "l1", DailyWage: decimal.NewFromInt(1000)},
		{LaborID: "l2", DailyWage: decimal.NewFromInt(800)},
		{LaborID: "l3", DailyWage: decimal.NewFromInt(600)},
	}
	attendance := []domain.AttendanceRecord{
		{LaborID: "l1", Date: "2024-03-15", Status: domain.StatusPresent, Wage: decimal.NewFromInt(1000)},
		{LaborID: "l2", Date: "2024-03-15", Status: domain.StatusHalf, Wage: decimal.NewFromInt(400)},
		{LaborID: "l3", Date: "2024-03-15", Status: domain.StatusAbsent, Wage: decimal.Zero},
		// Yesterday's records count toward pending but not toward today.
		{LaborID: "l1", Date: "2024-03-14", Status: domain.StatusPresent, Wage: decimal.NewFromInt(1000)},
	}
	payments := []domain.PaymentRecord{
		// l2 is overpaid; the net pending sum must shrink accordingly.
		{LaborID: "l2", Amount: decimal.NewFromInt(1000), Date: "2024-03-15", Type: domain.PaymentDaily},
	}

	stats := payroll.CalculateDashboardStats(labors, attendance, payments, now)

	assert.Equal(t, 3, stats.TotalLabors)
	assert.Equal(t, 1, stats.PresentToday)
	assert.Equal(t, 1, stats.AbsentToday)
	assert.Equal(t, 1, stats.HalfDayToday)
	// earned 2400, paid 1000, net pending 1400 (l2's -600 offsets l1's 2000)
	assert.True(t, decimal.NewFromInt(1400).Equal(stats.TotalPendingAmount))
}

func TestCalculateDashboardStats_EmptyDataset(t *testing.T) {
	stats := payroll.CalculateDashboardStats(nil, nil, nil, time.Now())
	assert.Equal(t, 0, stats.TotalLabors)
	assert.Equal(t, 0, stats.PresentToday)
	assert.True(t, stats.TotalPendingAmount.IsZero())
}

func TestCalculateReport(t *testing.T) {
	labors := []domain.Labor{
		{LaborID: "l1", Name: "A", DailyWage: decimal.NewFromInt(1000)},
		{LaborID: "l2", Name: "B", DailyWage: decimal.NewFromInt(800)},
	}
	attendance := []domain.AttendanceRecord{
		{LaborID: "l1", Date: "2024-03-10", Status: domain.StatusPresent, Wage: decimal.NewFromInt(1000)},
		{LaborID: "l1", Date: "2024-03-11", Status: domain.StatusAbsent, Wage: decimal.Zero},
		{LaborID: "l2", Date: "2024-03-10", Status: domain.StatusHalf, Wage: decimal.NewFromInt(400)},
		// Out of period; ignored everywhere except the full-dataset pending sum.
		{LaborID: "l2", Date: "2024-02-01", Status: domain.StatusPresent, Wage: decimal.NewFromInt(800)},
	}
	payments := []domain.PaymentRecord{
		{LaborID: "l1", Amount: decimal.NewFromInt(500), Date: "2024-03-11", Type: domain.PaymentPartial},
		{LaborID: "l2", Amount: decimal.NewFromInt(100), Date: "2024-02-02", Type: domain.PaymentPartial},
	}
	filters := domain.ReportFilters{Period: domain.PeriodCustom, StartDate: "2024-03-01", EndDate: "2024-03-31"}

	report := payroll.CalculateReport(labors, attendance, payments, filters, "2024-03-01", "2024-03-31")

	assert.Equal(t, domain.PeriodCustom, report.Period)
	assert.Equal(t, "2024-03-01", report.StartDate)
	assert.Equal(t, "2024-03-31", report.EndDate)
	assert.Equal(t, 3, report.TotalDays)
	assert.Equal(t, 1, report.PresentDays)
	assert.Equal(t, 1, report.HalfDays)
	assert.Equal(t, 1, report.AbsentDays)
	assert.True(t, decimal.NewFromInt(1400).Equal(report.TotalEarned))
	assert.True(t, decimal.NewFromInt(500).Equal(report.TotalPaid))
	// Full dataset: earned 2200, paid 600.
	assert.True(t, decimal.NewFromInt(1600).Equal(report.TotalPending))

	require.Len(t, report.TopPerformers, 2)
	assert.Equal(t, "l1", report.TopPerformers[0].Labor.LaborID)
	assert.Equal(t, 1, report.TopPerformers[0].TotalWorked)
	// l1 marked twice in period, worked once: 50%.
	assert.True(t, decimal.NewFromInt(50).Equal(report.TopPerformers[0].AttendanceRate))
	assert.Equal(t, "l2", report.TopPerformers[1].Labor.LaborID)
	assert.True(t, decimal.NewFromInt(100).Equal(report.TopPerformers[1].AttendanceRate))
}

func TestCalculateReport_TopPerformersCappedAtFiveAndStable(t *testing.T) {
	var labors []domain.Labor
	var attendance []domain.AttendanceRecord
	for i := 0; i < 7; i++ {
		id := string(rune('a' + i))
		labors = append(labors, domain.Labor{LaborID: id, DailyWage: decimal.NewFromInt(500)})
		// Everyone earns the same, so ranking must keep the input order.
		attendance = append(attendance, domain.AttendanceRecord{
			LaborID: id, Date: "2024-03-10", Status: domain.StatusPresent, Wage: decimal.NewFromInt(500),
		})
	}
	filters := domain.ReportFilters{Period: domain.PeriodWeek}

	report := payroll.CalculateReport(labors, attendance, nil, filters, "2024-03-08", "2024-03-15")

	require.Len(t, report.TopPerformers, 5)
	for i, row := range report.TopPerformers {
		assert.Equal(t, labors[i].LaborID, row.Labor.LaborID)
	}
}

func TestCalculateReport_BoundaryDatesInclusive(t *testing.T) {
	labors := []domain.Labor{{LaborID: "l1", DailyWage: decimal.NewFromInt(100)}}
	attendance := []domain.AttendanceRecord{
		{LaborID: "l1", Date: "2024-03-01", Status: domain.StatusPresent, Wage: decimal.NewFromInt(100)},
		{LaborID: "l1", Date: "2024-03-31", Status: domain.StatusPresent, Wage: decimal.NewFromInt(100)},
		{LaborID: "l1", Date: "2024-04-01", Status: domain.StatusPresent, Wage: decimal.NewFromInt(100)},
	}
	filters := domain.ReportFilters{Period: domain.PeriodMonth}

	report := payroll.CalculateReport(labors, attendance, nil, filters, "2024-03-01", "2024-03-31")
	assert.Equal(t, 2, report.TotalDays)
}
