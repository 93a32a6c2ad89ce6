package domain

import (
	"fmt"
	"math"
)

// Daily study budget bounds.
const (
	DefaultDailyHours = 4.0
	MaxDailyHours     = 24.0
)

// PlannerSettings holds study planning preferences.
type PlannerSettings struct {
	// DailyHours is the default study budget used when none is given.
	DailyHours float64
}

// StorageSettings holds persistence configuration.
type StorageSettings struct {
	// DataDir is where the SQLite database lives.
	// Empty means the default ~/.smartstudy/data.
	DataDir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Planner holds planning preferences.
	Planner PlannerSettings

	// Storage holds persistence configuration.
	Storage StorageSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Planner: PlannerSettings{
			DailyHours: DefaultDailyHours,
		},
	}
}

// ValidateDailyHours checks a daily study budget.
func ValidateDailyHours(hours float64) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return fmt.Errorf("%w: daily hours must be positive, got %v", ErrInvalidInput, hours)
	}
	if hours > MaxDailyHours {
		return fmt.Errorf("%w: daily hours cannot exceed %v, got %v", ErrInvalidInput, MaxDailyHours, hours)
	}
	return nil
}
