package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

var examsJSON bool

var examsCmd = &cobra.Command{
	Use:   "exams",
	Short: "List upcoming exams with a countdown",
	Args:  cobra.NoArgs,
	RunE:  runExams,
}

func init() {
	examsCmd.Flags().BoolVar(&examsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(examsCmd)
}

func runExams(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	countdowns, err := s.Plans.Countdowns(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list exams: %w", err)
	}

	if examsJSON {
		return writeJSON(cmd, countdowns)
	}

	if len(countdowns) == 0 {
		cmd.Println("No exams scheduled.")
		return nil
	}

	p := newPalette(cmd.OutOrStdout())
	rows := make([][]string, 0, len(countdowns))
	for i := range countdowns {
		rows = append(rows, []string{
			countdowns[i].Subject,
			countdowns[i].ExamDate.Format(domain.DateLayout),
			formatDays(countdowns[i].DaysLeft),
			string(countdowns[i].Band),
		})
	}

	cmd.Println(p.table([]string{"Subject", "Exam", "When", "Band"}, rows, func(row, _ int) lipgloss.Style {
		if row < 0 || row >= len(countdowns) {
			return lipgloss.NewStyle()
		}
		return p.band(countdowns[row].Band)
	}))
	return nil
}
