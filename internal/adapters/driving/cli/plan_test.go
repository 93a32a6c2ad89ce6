package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// seedPlanSubjects adds an imminent and a distant subject.
func seedPlanSubjects(t *testing.T) {
	t.Helper()
	addSubject(t, "Physics", "-d", "8", "-e", "2026-10-20", "-t", "Optics:2", "-t", "Waves")
	addSubject(t, "Math", "-d", "4", "-e", "2026-11-07", "-t", "Algebra")
}

func TestPlanCmd_Flags(t *testing.T) {
	flag := planCmd.Flags().Lookup("hours")
	require.NotNil(t, flag)
	assert.Equal(t, "H", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)

	require.NotNil(t, planCmd.Flags().Lookup("json"))
	require.NotNil(t, planCmd.Flags().Lookup("csv"))
}

func TestPlan_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "plan")

	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to study today")
}

func TestPlan_Table(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	seedPlanSubjects(t)

	out, err := execute(t, "plan", "--hours", "4")

	require.NoError(t, err)
	assert.Contains(t, out, "Study plan for 4h of 4h")
	assert.Contains(t, out, "Optics")
	assert.Contains(t, out, "Waves")
	assert.Contains(t, out, "Algebra")
	assert.Contains(t, out, string(domain.ReasonImminent))
	assert.Less(t, indexOf(out, "Optics"), indexOf(out, "Algebra"))
}

func TestPlan_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	seedPlanSubjects(t)

	out, err := execute(t, "plan", "-H", "4", "--json")
	require.NoError(t, err)

	var plan []domain.PlanEntry
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	require.Len(t, plan, 3)
	assert.Equal(t, "Optics", plan[0].Topic)
	assert.Equal(t, 2.5, plan[0].AllocatedHours)
	assert.Equal(t, domain.ReasonImminent, plan[0].Reason)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), plan[0].ExamDate)

	total := 0.0
	for _, entry := range plan {
		total += entry.AllocatedHours
	}
	assert.InDelta(t, 4.0, total, 0.25)
}

func TestPlan_UsesConfiguredHours(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	addSubject(t, "Physics", "-e", "2026-10-20", "-t", "Optics")

	_, err := execute(t, "settings", "hours", "2")
	require.NoError(t, err)

	out, err := execute(t, "plan", "--json")
	require.NoError(t, err)

	var plan []domain.PlanEntry
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	require.Len(t, plan, 1)
	assert.Equal(t, 2.0, plan[0].AllocatedHours)
}

func TestPlan_InvalidHours(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	for _, hours := range []string{"0", "-1", "25"} {
		_, err := execute(t, "plan", "--hours", hours)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "hours=%s", hours)
	}
}

func TestPlan_CSVStdout(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	seedPlanSubjects(t)

	out, err := execute(t, "plan", "-H", "4", "--csv", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "subject,topic,topic_id,hours,urgency_score,exam_date,reason", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Physics,Optics,"))
	assert.Contains(t, lines[1], ",2.50,")
	assert.Contains(t, lines[1], ",2026-10-20,")
}

func TestPlan_CSVFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	seedPlanSubjects(t)
	path := filepath.Join(t.TempDir(), "plan.csv")

	out, err := execute(t, "plan", "-H", "4", "--csv", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 3 plan entries to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(data), "\n"))
}

func TestPlan_CSVFileError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "plan", "--csv", filepath.Join(t.TempDir(), "missing", "plan.csv"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create")
}

func TestWritePlanCSV_QuotesFields(t *testing.T) {
	plan := []domain.PlanEntry{{
		Subject:        "Math",
		Topic:          "Limits, Continuity",
		TopicID:        "t1",
		AllocatedHours: 0.75,
		UrgencyScore:   1.234,
		ExamDate:       time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		Reason:         domain.ReasonFocus,
	}}
	buf := new(bytes.Buffer)

	require.NoError(t, writePlanCSV(buf, plan))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `Math,"Limits, Continuity",t1,0.75,1.23,2026-11-02,high difficulty/weight focus`, lines[1])
}

func TestResolveDailyHours(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	hours, err := resolveDailyHours(services, 6, true)
	require.NoError(t, err)
	assert.Equal(t, 6.0, hours)

	hours, err = resolveDailyHours(services, 0, false)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDailyHours, hours)

	hours, err = resolveDailyHours(&Services{}, 0, false)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDailyHours, hours)

	_, err = resolveDailyHours(services, 0, true)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
