package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the default daily study hours and where data is stored.

Settings are kept in config.toml inside the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsHoursCmd = &cobra.Command{
	Use:   "hours H",
	Short: "Set the default daily study hours",
	Long:  `Set the study budget 'plan' uses when --hours is not given. Must be above 0 and at most 24.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsHours,
}

var settingsDataDirCmd = &cobra.Command{
	Use:   "data-dir DIR",
	Short: "Set the directory holding the database",
	Long:  `Set the directory holding the database. Takes effect on the next run.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsDataDir,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsHoursCmd)
	settingsCmd.AddCommand(settingsDataDirCmd)
	rootCmd.AddCommand(settingsCmd)
}

func requireSettings() (*Services, error) {
	s, err := requireServices()
	if err != nil {
		return nil, err
	}
	if s.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	return s, nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	s, err := requireSettings()
	if err != nil {
		return err
	}

	settings, err := s.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Println("[Planner]")
	cmd.Printf("  Daily hours: %s\n", formatHours(settings.Planner.DailyHours))
	cmd.Println()
	cmd.Println("[Storage]")
	cmd.Printf("  Data dir: %s\n", dataDir)
	cmd.Println()
	cmd.Printf("Config file: %s\n", s.Settings.ConfigPath())
	return nil
}

func runSettingsHours(cmd *cobra.Command, args []string) error {
	s, err := requireSettings()
	if err != nil {
		return err
	}

	hours, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, args[0])
	}

	if err := s.Settings.SetDailyHours(hours); err != nil {
		return fmt.Errorf("failed to set daily hours: %w", err)
	}

	cmd.Printf("Daily hours set to %s\n", formatHours(hours))
	return nil
}

func runSettingsDataDir(cmd *cobra.Command, args []string) error {
	s, err := requireSettings()
	if err != nil {
		return err
	}

	dir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", args[0], err)
	}

	if err := s.Settings.SetDataDir(dir); err != nil {
		return fmt.Errorf("failed to set data dir: %w", err)
	}

	cmd.Printf("Data dir set to %s\n", dir)
	return nil
}
