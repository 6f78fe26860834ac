package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType classifies how a payment was made.
type PaymentType string

const (
	PaymentDaily   PaymentType = "daily"
	PaymentWeekly  PaymentType = "weekly"
	PaymentMonthly PaymentType = "monthly"
	PaymentPartial PaymentType = "partial"
)

// Valid reports whether t is one of the recognized payment types.
func (t PaymentType) Valid() bool {
	switch t {
	case PaymentDaily, PaymentWeekly, PaymentMonthly, PaymentPartial:
		return true
	}
	return false
}

// PaymentRecord is a payment made to a labor. Unlike attendance, multiple
// payments per labor per date are permitted.
type PaymentRecord struct {
	PaymentID   string          `json:"id" db:"payment_id"`
	WorkplaceID string          `json:"workplaceId" db:"workplace_id"`
	LaborID     string          `json:"laborId" db:"labor_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Date        string          `json:"date" db:"date"` // calendar day, "2006-01-02"
	Type        PaymentType     `json:"type" db:"type"`
	Notes       string          `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}
