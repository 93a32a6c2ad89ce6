package services

import (
	"fmt"
	"strings"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDailyHours = "planner.daily_hours"
	keyDataDir    = "storage.data_dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &settings, nil
	}

	if _, ok := s.configStore.Get(keyDailyHours); ok {
		hours := s.configStore.GetFloat(keyDailyHours)
		if domain.ValidateDailyHours(hours) == nil {
			settings.Planner.DailyHours = hours
		}
	}
	settings.Storage.DataDir = strings.TrimSpace(s.configStore.GetString(keyDataDir))

	return &settings, nil
}

// SetDailyHours updates the default daily study budget.
func (s *SettingsService) SetDailyHours(hours float64) error {
	if err := domain.ValidateDailyHours(hours); err != nil {
		return err
	}
	if s.configStore == nil {
		return fmt.Errorf("config store: %w", domain.ErrNotImplemented)
	}
	if err := s.configStore.Set(keyDailyHours, hours); err != nil {
		return fmt.Errorf("save daily hours: %w", err)
	}
	return nil
}

// SetDataDir updates where the database is stored.
// An empty dir restores the default location.
func (s *SettingsService) SetDataDir(dir string) error {
	if s.configStore == nil {
		return fmt.Errorf("config store: %w", domain.ErrNotImplemented)
	}
	if err := s.configStore.Set(keyDataDir, strings.TrimSpace(dir)); err != nil {
		return fmt.Errorf("save data dir: %w", err)
	}
	return nil
}

// ConfigPath returns the configuration file path.
func (s *SettingsService) ConfigPath() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}
