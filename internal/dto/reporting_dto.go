package dto

// ReportRequest selects the report window. StartDate/EndDate only apply to the
// custom period; when either is missing the window falls back to the current
// month, matching the dashboard app's behavior.
type ReportRequest struct {
	Period    string `form:"period" json:"period" binding:"required,oneof=week month custom"`
	StartDate string `form:"startDate" json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}
