package domain

import "github.com/shopspring/decimal"

// LaborSummary holds the derived financial and attendance totals for one labor.
// PendingBalance may be negative when the labor has been overpaid; that is a
// valid state, not an error.
type LaborSummary struct {
	Labor            Labor           `json:"labor"`
	TotalEarned      decimal.Decimal `json:"totalEarned"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	PendingBalance   decimal.Decimal `json:"pendingBalance"`
	TotalDaysWorked  int             `json:"totalDaysWorked"`
	TotalDaysPresent int             `json:"totalDaysPresent"`
	TotalDaysHalf    int             `json:"totalDaysHalf"`
	TotalDaysAbsent  int             `json:"totalDaysAbsent"`
}

// DashboardStats aggregates the active workplace's dataset for the dashboard.
// TotalPendingAmount is the net sum of per-labor pending balances; negative
// balances offset positive ones.
type DashboardStats struct {
	TotalLabors        int             `json:"totalLabors"`
	PresentToday       int             `json:"presentToday"`
	AbsentToday        int             `json:"absentToday"`
	HalfDayToday       int             `json:"halfDayToday"`
	TotalPendingAmount decimal.Decimal `json:"totalPendingAmount"`
}
