// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Nikhil-4404/ai-exam-planner/internal/adapters/driving/tui/styles"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// Row is one line of the plan list.
type Row struct {
	Entry domain.PlanEntry

	// Done marks a topic completed during this session. It no longer has
	// hours but stays listed so it can be undone.
	Done bool
}

// PlanList displays plan entries in a navigable list.
type PlanList struct {
	rows     []Row
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewPlanList creates a new plan list component.
func NewPlanList(s *styles.Styles) *PlanList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &PlanList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// View renders the plan list.
func (p *PlanList) View() string {
	if len(p.rows) == 0 {
		return p.styles.Muted.Render("Nothing to study today. Add subjects with 'smartstudy subject add'.")
	}

	visible := p.height
	if visible < 1 {
		visible = 1
	}

	start := 0
	if p.selected >= visible {
		start = p.selected - visible + 1
	}
	end := start + visible
	if end > len(p.rows) {
		end = len(p.rows)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, p.renderRow(i, &p.rows[i]))
	}
	return strings.Join(lines, "\n")
}

func (p *PlanList) renderRow(index int, row *Row) string {
	indicator := "  "
	if index == p.selected {
		indicator = "> "
	}

	check := "[ ]"
	hours := strconv.FormatFloat(row.Entry.AllocatedHours, 'f', 2, 64) + "h"
	if row.Done {
		check = "[x]"
		hours = "done"
	}

	nameWidth := p.width - 40
	if nameWidth < 16 {
		nameWidth = 16
	}
	name := truncate(row.Entry.Subject+" / "+row.Entry.Topic, nameWidth)

	text := fmt.Sprintf("%s%s %-*s %6s  %6.2f", indicator, check, nameWidth, name, hours, row.Entry.UrgencyScore)

	switch {
	case index == p.selected:
		return p.styles.Selected.Render(text)
	case row.Done:
		return p.styles.Done.Render(text)
	default:
		return p.styles.Normal.Render(text) + "  " + p.reason(row.Entry.Reason)
	}
}

func (p *PlanList) reason(r domain.PlanReason) string {
	return p.styles.Reason(r).Render(r.String())
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 || len(runes) <= 3 {
		return string(runes[:min(width, len(runes))])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// SetRows replaces the rows, keeping the selection in range.
func (p *PlanList) SetRows(rows []Row) {
	p.rows = rows
	if p.selected >= len(rows) {
		p.selected = len(rows) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

// Rows returns the current rows.
func (p *PlanList) Rows() []Row {
	return p.rows
}

// Selected returns the index of the selected row.
func (p *PlanList) Selected() int {
	return p.selected
}

// SelectedRow returns the currently selected row, or nil if none.
func (p *PlanList) SelectedRow() *Row {
	if p.selected < 0 || p.selected >= len(p.rows) {
		return nil
	}
	return &p.rows[p.selected]
}

// MoveUp moves selection up.
func (p *PlanList) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown moves selection down.
func (p *PlanList) MoveDown() {
	if p.selected < len(p.rows)-1 {
		p.selected++
	}
}

// SetDimensions sets the component dimensions.
func (p *PlanList) SetDimensions(width, height int) {
	p.width = width
	p.height = height
}

// Count returns the number of rows.
func (p *PlanList) Count() int {
	return len(p.rows)
}
