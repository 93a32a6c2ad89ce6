package list

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

func testRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{Entry: domain.PlanEntry{
			Subject:        "Physics",
			Topic:          fmt.Sprintf("Topic %d", i),
			TopicID:        fmt.Sprintf("t%d", i),
			AllocatedHours: 1,
			UrgencyScore:   2.5,
			Reason:         domain.ReasonBalanced,
		}}
	}
	return rows
}

func TestPlanList_Empty(t *testing.T) {
	p := NewPlanList(nil)

	assert.Nil(t, p.SelectedRow())
	assert.Contains(t, p.View(), "Nothing to study today")
}

func TestPlanList_View(t *testing.T) {
	p := NewPlanList(nil)
	p.SetDimensions(100, 10)
	rows := testRows(2)
	rows[1].Done = true
	p.SetRows(rows)

	view := p.View()
	lines := strings.Split(view, "\n")

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "> [ ] Physics / Topic 0")
	assert.Contains(t, lines[0], "1.00h")
	assert.Contains(t, lines[1], "[x] Physics / Topic 1")
	assert.Contains(t, lines[1], "done")
	assert.NotContains(t, lines[1], "balanced review")
}

func TestPlanList_Navigation(t *testing.T) {
	p := NewPlanList(nil)
	p.SetRows(testRows(3))

	p.MoveUp()
	assert.Equal(t, 0, p.Selected())

	p.MoveDown()
	p.MoveDown()
	p.MoveDown()
	assert.Equal(t, 2, p.Selected())
	assert.Equal(t, "t2", p.SelectedRow().Entry.TopicID)
}

func TestPlanList_SetRowsClampsSelection(t *testing.T) {
	p := NewPlanList(nil)
	p.SetRows(testRows(3))
	p.MoveDown()
	p.MoveDown()

	p.SetRows(testRows(1))
	assert.Equal(t, 0, p.Selected())

	p.SetRows(nil)
	assert.Equal(t, 0, p.Selected())
	assert.Equal(t, 0, p.Count())
}

func TestPlanList_ScrollsToSelection(t *testing.T) {
	p := NewPlanList(nil)
	p.SetDimensions(100, 2)
	p.SetRows(testRows(5))

	for i := 0; i < 4; i++ {
		p.MoveDown()
	}
	view := p.View()

	assert.Equal(t, 2, strings.Count(view, "\n")+1)
	assert.Contains(t, view, "Topic 4")
	assert.NotContains(t, view, "Topic 0")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
