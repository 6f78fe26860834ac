package domain

import "time"

// BackupSchemaVersion tags exported backup documents.
const BackupSchemaVersion = "2.0"

// BackupDocument is the portable snapshot of the entire persisted state.
// Field names are part of the backup format and must stay stable. Documents
// produced before the multi-workplace schema may omit "workplaces"; importers
// treat any missing collection as empty and ignore unknown fields.
type BackupDocument struct {
	Workplaces []Workplace        `json:"workplaces"`
	Labors     []Labor            `json:"labors"`
	Attendance []AttendanceRecord `json:"attendance"`
	Payments   []PaymentRecord    `json:"payments"`
	Settings   *AppSettings       `json:"settings,omitempty"`
	ExportDate time.Time          `json:"exportDate"`
	Version    string             `json:"version"`
}
