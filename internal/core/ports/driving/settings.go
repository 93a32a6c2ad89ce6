package driving

import "github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the current settings, falling back to defaults
	// for anything not configured.
	Get() (*domain.AppSettings, error)

	// SetDailyHours updates the default daily study budget.
	SetDailyHours(hours float64) error

	// SetDataDir updates where the database is stored.
	SetDataDir(dir string) error

	// ConfigPath returns where settings are persisted.
	ConfigPath() string
}
