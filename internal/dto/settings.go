package dto

// UpdateSettingsRequest replaces the singleton settings record.
// ActiveWorkplaceID nil clears the selection only when no workplace remains;
// callers normally switch workplaces via the activate endpoint instead.
type UpdateSettingsRequest struct {
	Language               string  `json:"language" binding:"required,oneof=en ur hi"`
	Theme                  string  `json:"theme" binding:"required,oneof=light dark"`
	Currency               string  `json:"currency" binding:"required,oneof=PKR INR USD EUR GBP"`
	HasCompletedOnboarding *bool   `json:"hasCompletedOnboarding" binding:"required"`
	ActiveWorkplaceID      *string `json:"activeWorkplaceId,omitempty"`
}
