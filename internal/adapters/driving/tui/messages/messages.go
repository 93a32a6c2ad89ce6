// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// PlanLoaded carries a freshly computed plan and the exam countdowns.
type PlanLoaded struct {
	Hours      float64
	Plan       []domain.PlanEntry
	Countdowns []domain.ExamCountdown
	Err        error
}

// TopicToggled signals a completion change was stored.
type TopicToggled struct {
	Entry     domain.PlanEntry
	Completed bool
	Err       error
}
