// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// Theme is the dashboard palette, one colour per role.
type Theme struct {
	Accent lipgloss.Color
	Info   lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Done   lipgloss.Color
	Focus  lipgloss.Color
	Urgent lipgloss.Color
	Bar    lipgloss.Color
}

// DefaultTheme returns the default palette.
func DefaultTheme() *Theme {
	return &Theme{
		Accent: lipgloss.Color("#7C3AED"), // violet
		Info:   lipgloss.Color("#06B6D4"), // cyan
		Text:   lipgloss.Color("#CDD6F4"),
		Muted:  lipgloss.Color("#6C7086"),
		Done:   lipgloss.Color("#A6E3A1"), // green
		Focus:  lipgloss.Color("#F9E2AF"), // amber
		Urgent: lipgloss.Color("#F38BA8"), // red
		Bar:    lipgloss.Color("#181825"),
	}
}

// Styles are the lipgloss styles the dashboard renders with.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style

	// Selected highlights the row under the cursor.
	Selected lipgloss.Style

	// Done renders topics completed this session.
	Done lipgloss.Style

	// Error renders imminent exams and failures.
	Error lipgloss.Style

	// Warning renders focus topics and approaching exams.
	Warning lipgloss.Style

	StatusBar lipgloss.Style
}

// NewStyles builds styles from theme, or the default theme when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme:     theme,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Subtitle:  lipgloss.NewStyle().Bold(true).Foreground(theme.Info),
		Normal:    lipgloss.NewStyle().Foreground(theme.Text),
		Muted:     lipgloss.NewStyle().Foreground(theme.Muted),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Background(theme.Accent),
		Done:      lipgloss.NewStyle().Foreground(theme.Done).Strikethrough(true),
		Error:     lipgloss.NewStyle().Foreground(theme.Urgent),
		Warning:   lipgloss.NewStyle().Foreground(theme.Focus),
		StatusBar: lipgloss.NewStyle().Foreground(theme.Muted).Background(theme.Bar).Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(nil)
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Reason returns the style for a plan reason.
func (s *Styles) Reason(r domain.PlanReason) lipgloss.Style {
	switch r {
	case domain.ReasonImminent:
		return s.Error
	case domain.ReasonFocus:
		return s.Warning
	default:
		return s.Muted
	}
}

// Band returns the style for a countdown band.
func (s *Styles) Band(b domain.CountdownBand) lipgloss.Style {
	switch b {
	case domain.BandImminent:
		return s.Error
	case domain.BandApproaching:
		return s.Warning
	case domain.BandFinished:
		return s.Muted
	default:
		return s.Normal
	}
}
