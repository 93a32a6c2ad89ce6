package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

var (
	planHours float64
	planJSON  bool
	planCSV   string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show today's study plan",
	Long: `Allocate today's study hours across every pending topic.

Each topic gets a share of the budget proportional to its urgency score,
rounded to the nearest quarter hour. Topics whose share falls below a
quarter hour are left out.

The budget defaults to the configured daily hours (see 'settings hours').`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().Float64VarP(&planHours, "hours", "H", 0, "study hours available today (default from settings)")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "output as JSON")
	planCmd.Flags().StringVar(&planCSV, "csv", "", "write the plan as CSV to FILE ('-' for stdout)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	hours, err := resolveDailyHours(s, planHours, cmd.Flags().Changed("hours"))
	if err != nil {
		return err
	}

	plan, err := s.Plans.Generate(cmd.Context(), hours)
	if err != nil {
		return fmt.Errorf("failed to compute plan: %w", err)
	}

	switch {
	case planCSV == "-":
		return writePlanCSV(cmd.OutOrStdout(), plan)
	case planCSV != "":
		if err := writePlanCSVFile(planCSV, plan); err != nil {
			return err
		}
		cmd.Printf("Wrote %d plan entries to %s\n", len(plan), planCSV)
		return nil
	case planJSON:
		return writeJSON(cmd, plan)
	}

	if len(plan) == 0 {
		cmd.Println("Nothing to study today: no pending topics received a share.")
		return nil
	}

	p := newPalette(cmd.OutOrStdout())
	rows := make([][]string, 0, len(plan))
	for i := range plan {
		rows = append(rows, []string{
			plan[i].Subject,
			plan[i].Topic,
			formatHours(plan[i].AllocatedHours),
			strconv.FormatFloat(plan[i].UrgencyScore, 'f', 2, 64),
			plan[i].ExamDate.Format(domain.DateLayout),
			plan[i].Reason.String(),
		})
	}

	cmd.Printf("Study plan for %s of %s\n", formatHours(domain.TotalHours(plan)), formatHours(hours))
	cmd.Println(p.table(
		[]string{"Subject", "Topic", "Hours", "Score", "Exam", "Reason"},
		rows,
		func(row, col int) lipgloss.Style {
			if col == 5 && row >= 0 && row < len(plan) {
				return p.reason(plan[row].Reason)
			}
			return lipgloss.NewStyle()
		},
	))
	return nil
}

// resolveDailyHours returns the flag value when set, otherwise the
// configured default.
func resolveDailyHours(s *Services, flagValue float64, flagSet bool) (float64, error) {
	if flagSet {
		return flagValue, domain.ValidateDailyHours(flagValue)
	}
	if s.Settings == nil {
		return domain.DefaultDailyHours, nil
	}
	settings, err := s.Settings.Get()
	if err != nil {
		return 0, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings.Planner.DailyHours, nil
}

func writePlanCSVFile(path string, plan []domain.PlanEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := writePlanCSV(f, plan); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePlanCSV(w io.Writer, plan []domain.PlanEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"subject", "topic", "topic_id", "hours", "urgency_score", "exam_date", "reason"}); err != nil {
		return err
	}
	for i := range plan {
		record := []string{
			plan[i].Subject,
			plan[i].Topic,
			plan[i].TopicID,
			strconv.FormatFloat(plan[i].AllocatedHours, 'f', 2, 64),
			strconv.FormatFloat(plan[i].UrgencyScore, 'f', 2, 64),
			plan[i].ExamDate.Format(domain.DateLayout),
			plan[i].Reason.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
