package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Labor represents a worker with a daily wage rate, owned by a single workplace.
type Labor struct {
	LaborID     string          `json:"id" db:"labor_id"`
	WorkplaceID string          `json:"workplaceId" db:"workplace_id"`
	Name        string          `json:"name" db:"name"`
	Phone       string          `json:"phone" db:"phone"`
	DailyWage   decimal.Decimal `json:"dailyWage" db:"daily_wage"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}
