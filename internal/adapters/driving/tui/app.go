package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nikhil-4404/ai-exam-planner/internal/adapters/driving/tui/components/list"
	"github.com/Nikhil-4404/ai-exam-planner/internal/adapters/driving/tui/components/status"
	"github.com/Nikhil-4404/ai-exam-planner/internal/adapters/driving/tui/keymap"
	"github.com/Nikhil-4404/ai-exam-planner/internal/adapters/driving/tui/messages"
	"github.com/Nikhil-4404/ai-exam-planner/internal/adapters/driving/tui/styles"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// chromeHeight is the number of lines used by everything except the plan list.
const chromeHeight = 8

// App is the plan dashboard following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap
	help   help.Model

	planList  *list.PlanList
	statusBar *status.Bar

	// hours is today's budget. +/- change it for this session only.
	hours float64

	plan       []domain.PlanEntry
	countdowns []domain.ExamCountdown

	// done holds topics completed this session, in completion order.
	done []domain.PlanEntry

	err    error
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		keys:      km,
		help:      help.New(),
		planList:  list.NewPlanList(s),
		statusBar: status.NewBar(s, km),
		hours:     domain.DefaultDailyHours,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("smartstudy"),
		a.loadSettings(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.planList.SetDimensions(msg.Width, max(msg.Height-chromeHeight, 1))
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.SettingsLoaded:
		if msg.Err == nil && msg.Settings != nil && msg.Settings.Planner.DailyHours > 0 {
			a.hours = msg.Settings.Planner.DailyHours
		}
		return a, a.replan()

	case messages.PlanLoaded:
		if msg.Hours != a.hours {
			// Superseded by a later budget change.
			return a, nil
		}
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.err = nil
		a.plan = msg.Plan
		a.countdowns = msg.Countdowns
		a.refreshRows()
		a.statusBar.SetState(status.StateReady)
		a.statusBar.SetHours(domain.TotalHours(a.plan), a.hours)
		return a, nil

	case messages.TopicToggled:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		if msg.Completed {
			a.done = append(a.done, msg.Entry)
			a.statusBar.SetMessage("done: " + msg.Entry.Topic)
		} else {
			a.removeDone(msg.Entry.TopicID)
			a.statusBar.SetMessage("reopened: " + msg.Entry.Topic)
		}
		return a, a.replan()
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Up):
		a.planList.MoveUp()
	case key.Matches(msg, a.keys.Down):
		a.planList.MoveDown()
	case key.Matches(msg, a.keys.Toggle):
		return a, a.toggleSelected()
	case key.Matches(msg, a.keys.MoreHours):
		return a, a.adjustHours(keymap.HoursStep)
	case key.Matches(msg, a.keys.LessHours):
		return a, a.adjustHours(-keymap.HoursStep)
	case key.Matches(msg, a.keys.Refresh):
		a.statusBar.SetMessage("")
		return a, a.replan()
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

// adjustHours moves the budget by delta, staying within (0, MaxDailyHours].
func (a *App) adjustHours(delta float64) tea.Cmd {
	next := math.Round((a.hours+delta)*100) / 100
	if next <= 0 || next > domain.MaxDailyHours {
		return nil
	}
	a.hours = next
	return a.replan()
}

func (a *App) toggleSelected() tea.Cmd {
	row := a.planList.SelectedRow()
	if row == nil || row.Entry.TopicID == "" {
		return nil
	}

	entry := row.Entry
	completed := !row.Done
	subjects := a.ports.Subjects
	ctx := a.ctx

	return func() tea.Msg {
		err := subjects.SetTopicCompleted(ctx, entry.TopicID, completed)
		return messages.TopicToggled{Entry: entry, Completed: completed, Err: err}
	}
}

func (a *App) loadSettings() tea.Cmd {
	settings := a.ports.Settings
	if settings == nil {
		return a.replan()
	}
	return func() tea.Msg {
		s, err := settings.Get()
		return messages.SettingsLoaded{Settings: s, Err: err}
	}
}

// replan recomputes the plan for the current budget.
func (a *App) replan() tea.Cmd {
	a.statusBar.SetState(status.StateLoading)

	hours := a.hours
	plans := a.ports.Plans
	ctx := a.ctx

	return func() tea.Msg {
		plan, err := plans.Generate(ctx, hours)
		if err != nil {
			return messages.PlanLoaded{Hours: hours, Err: err}
		}
		countdowns, err := plans.Countdowns(ctx)
		return messages.PlanLoaded{Hours: hours, Plan: plan, Countdowns: countdowns, Err: err}
	}
}

func (a *App) refreshRows() {
	rows := make([]list.Row, 0, len(a.plan)+len(a.done))
	for i := range a.plan {
		rows = append(rows, list.Row{Entry: a.plan[i]})
	}
	for i := range a.done {
		rows = append(rows, list.Row{Entry: a.done[i], Done: true})
	}
	a.planList.SetRows(rows)
}

func (a *App) removeDone(topicID string) {
	kept := a.done[:0]
	for _, entry := range a.done {
		if entry.TopicID != topicID {
			kept = append(kept, entry)
		}
	}
	a.done = kept
}

func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("smartstudy"))
	b.WriteString(a.styles.Muted.Render(fmt.Sprintf("  today's plan for %sh", trimFloat(a.hours))))
	b.WriteString("\n\n")

	b.WriteString(a.planList.View())
	b.WriteString("\n\n")

	if exams := a.examsLine(); exams != "" {
		b.WriteString(exams)
		b.WriteString("\n")
	}

	if a.help.ShowAll {
		b.WriteString(a.help.View(a.keys))
		b.WriteString("\n")
	}
	b.WriteString(a.statusBar.View())

	return b.String()
}

func (a *App) examsLine() string {
	if len(a.countdowns) == 0 {
		return ""
	}

	parts := make([]string, 0, len(a.countdowns))
	for i := range a.countdowns {
		c := &a.countdowns[i]
		if c.Band == domain.BandFinished {
			continue
		}
		parts = append(parts, a.styles.Band(c.Band).Render(fmt.Sprintf("%s %dd", c.Subject, c.DaysLeft)))
	}
	if len(parts) == 0 {
		return ""
	}
	return a.styles.Subtitle.Render("Exams: ") + strings.Join(parts, a.styles.Muted.Render(" · "))
}

func trimFloat(f float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}

// Hours returns today's budget.
func (a *App) Hours() float64 {
	return a.hours
}

// Plan returns the current plan.
func (a *App) Plan() []domain.PlanEntry {
	return a.plan
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}
