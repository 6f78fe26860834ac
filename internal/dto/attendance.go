package dto

// MarkAttendanceRequest defines data for marking (or re-marking) attendance.
// Marking the same labor and date again replaces the earlier record.
type MarkAttendanceRequest struct {
	LaborID string `json:"laborId" binding:"required"`
	Date    string `json:"date" binding:"required,datetime=2006-01-02"`
	Status  string `json:"status" binding:"required,oneof=present absent half"`
}
