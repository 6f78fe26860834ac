package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceStatus is the attendance outcome for a labor on a calendar day.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusHalf    AttendanceStatus = "half"
)

// Valid reports whether s is one of the recognized attendance statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalf:
		return true
	}
	return false
}

// AttendanceRecord records a labor's attendance for one calendar date.
// At most one record exists per (laborID, date); marking again replaces it.
// Wage is snapshotted from the labor's daily wage at mark time and is never
// recomputed when the labor's wage later changes.
type AttendanceRecord struct {
	AttendanceID string           `json:"id" db:"attendance_id"`
	WorkplaceID  string           `json:"workplaceId" db:"workplace_id"`
	LaborID      string           `json:"laborId" db:"labor_id"`
	Date         string           `json:"date" db:"date"` // calendar day, "2006-01-02"
	Status       AttendanceStatus `json:"status" db:"status"`
	Wage         decimal.Decimal  `json:"wage" db:"wage"`
	CreatedAt    time.Time        `json:"createdAt" db:"created_at"`
}
