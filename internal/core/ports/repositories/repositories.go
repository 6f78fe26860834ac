package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
// Two implementations exist: the PostgreSQL store and the in-memory store used
// for standalone mode and tests.
type RepositoryProvider struct {
	WorkplaceRepo  WorkplaceRepositoryFacade
	LaborRepo      LaborRepositoryFacade
	AttendanceRepo AttendanceRepositoryFacade
	PaymentRepo    PaymentRepositoryFacade
	SettingsRepo   SettingsRepository
	BackupRepo     BackupRepository
}
