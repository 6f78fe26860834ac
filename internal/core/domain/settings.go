package domain

// AppSettings is the singleton application settings record. Exactly one
// instance exists at all times; it is created with defaults on first init and
// only ever updated afterwards.
type AppSettings struct {
	Language               string  `json:"language" db:"language"` // en | ur | hi
	Theme                  string  `json:"theme" db:"theme"`       // light | dark
	Currency               string  `json:"currency" db:"currency"` // PKR | INR | USD | EUR | GBP
	HasCompletedOnboarding bool    `json:"hasCompletedOnboarding" db:"has_completed_onboarding"`
	ActiveWorkplaceID      *string `json:"activeWorkplaceId,omitempty" db:"active_workplace_id"`
}

// DefaultSettings returns the settings used to seed the singleton row.
func DefaultSettings() AppSettings {
	return AppSettings{
		Language:               "en",
		Theme:                  "light",
		Currency:               "USD",
		HasCompletedOnboarding: false,
	}
}
