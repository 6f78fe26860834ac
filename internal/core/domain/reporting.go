package domain

import "github.com/shopspring/decimal"

// ReportPeriod selects the date range a report covers.
type ReportPeriod string

const (
	PeriodWeek   ReportPeriod = "week"
	PeriodMonth  ReportPeriod = "month"
	PeriodCustom ReportPeriod = "custom"
)

// ReportFilters describes the requested report window. StartDate/EndDate are
// only honored for PeriodCustom; when either is missing the window falls back
// to the current month.
type ReportFilters struct {
	Period    ReportPeriod `json:"period"`
	StartDate string       `json:"startDate,omitempty"`
	EndDate   string       `json:"endDate,omitempty"`
}

// LaborPerformance is one row of the report's top-performers ranking.
type LaborPerformance struct {
	Labor          Labor           `json:"labor"`
	TotalWorked    int             `json:"totalWorked"` // days in period with status != absent
	TotalEarned    decimal.Decimal `json:"totalEarned"`
	AttendanceRate decimal.Decimal `json:"attendanceRate"` // percentage of marked days worked
}

// ReportData aggregates attendance and payments over a period.
// TotalPending is computed over the full dataset, not just the period, matching
// the dashboard's net-exposure semantics.
type ReportData struct {
	Period        ReportPeriod       `json:"period"`
	StartDate     string             `json:"startDate"`
	EndDate       string             `json:"endDate"`
	TotalEarned   decimal.Decimal    `json:"totalEarned"`
	TotalPaid     decimal.Decimal    `json:"totalPaid"`
	TotalPending  decimal.Decimal    `json:"totalPending"`
	TotalDays     int                `json:"totalDays"`
	PresentDays   int                `json:"presentDays"`
	HalfDays      int                `json:"halfDays"`
	AbsentDays    int                `json:"absentDays"`
	TopPerformers []LaborPerformance `json:"topPerformers"`
}
