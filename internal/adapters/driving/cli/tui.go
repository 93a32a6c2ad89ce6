package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Nikhil-4404/ai-exam-planner/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive plan dashboard",
	Long: `Launch the interactive dashboard showing today's plan and the
exam countdown. Completing a topic recomputes the plan straight away.

Controls:
  ↑/k, ↓/j - Move selection
  space    - Mark topic done, or reopen it
  +, -     - Change today's hours by 0.5
  r        - Recompute the plan
  ?        - Toggle help
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	s, err := requireServices()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{
		Plans:    s.Plans,
		Subjects: s.Subjects,
		Settings: s.Settings,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
