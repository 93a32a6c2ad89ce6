// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// HoursStep is how much one +/- press changes the daily budget.
const HoursStep = 0.5

// KeyMap defines all keybindings for the plan dashboard.
type KeyMap struct {
	// Up moves the selection up.
	Up key.Binding

	// Down moves the selection down.
	Down key.Binding

	// Toggle marks the selected topic done, or pending again.
	Toggle key.Binding

	// MoreHours raises today's budget by HoursStep.
	MoreHours key.Binding

	// LessHours lowers today's budget by HoursStep.
	LessHours key.Binding

	// Refresh reloads subjects and recomputes the plan.
	Refresh key.Binding

	// Help toggles the full help view.
	Help key.Binding

	// Quit exits the application.
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "done/undo"),
		),
		MoreHours: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "+0.5h"),
		),
		LessHours: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "-0.5h"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.MoreHours, k.LessHours, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped in columns.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.MoreHours, k.LessHours, k.Refresh},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
