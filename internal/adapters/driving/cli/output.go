package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// palette holds styles bound to one output stream. The renderer drops
// colour when the stream is not a terminal.
type palette struct {
	header   lipgloss.Style
	border   lipgloss.Style
	imminent lipgloss.Style
	focus    lipgloss.Style
	muted    lipgloss.Style
	width    int
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		border:   r.NewStyle().Foreground(lipgloss.Color("8")),
		imminent: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		focus:    r.NewStyle().Foreground(lipgloss.Color("11")),
		muted:    r.NewStyle().Foreground(lipgloss.Color("8")),
		width:    terminalWidth(w),
	}
}

// terminalWidth returns the column count of w, or 0 when w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func (p palette) table(headers []string, rows [][]string, style func(row, col int) lipgloss.Style) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.header.Padding(0, 1)
			}
			if style != nil {
				return style(row, col).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	if p.width > 0 {
		t = t.Width(p.width)
	}
	return t.String()
}

func (p palette) reason(r domain.PlanReason) lipgloss.Style {
	switch r {
	case domain.ReasonImminent:
		return p.imminent
	case domain.ReasonFocus:
		return p.focus
	default:
		return lipgloss.NewStyle()
	}
}

func (p palette) band(b domain.CountdownBand) lipgloss.Style {
	switch b {
	case domain.BandImminent:
		return p.imminent
	case domain.BandApproaching:
		return p.focus
	case domain.BandFinished:
		return p.muted
	default:
		return lipgloss.NewStyle()
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// formatHours prints 1.5 as "1.5h" and 2 as "2h".
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

func formatDays(days int) string {
	switch {
	case days == -1:
		return "yesterday"
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
