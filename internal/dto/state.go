package dto

import "github.com/SscSPs/labor_ledger_app/internal/core/domain"

// StateResponse is the full snapshot exposed to the UI layer: the active
// workplace's dataset plus derived dashboard stats.
type StateResponse struct {
	Workplaces        []domain.Workplace        `json:"workplaces"`
	ActiveWorkplace   *domain.Workplace         `json:"activeWorkplace"`
	Labors            []domain.Labor            `json:"labors"`
	AttendanceRecords []domain.AttendanceRecord `json:"attendanceRecords"`
	PaymentRecords    []domain.PaymentRecord    `json:"paymentRecords"`
	Settings          domain.AppSettings        `json:"settings"`
	DashboardStats    domain.DashboardStats     `json:"dashboardStats"`
	IsLoading         bool                      `json:"isLoading"`
}
