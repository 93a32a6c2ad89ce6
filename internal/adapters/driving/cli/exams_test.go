package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

func TestExams_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "exams")

	require.NoError(t, err)
	assert.Contains(t, out, "No exams scheduled.")
}

func TestExams_Table(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	addSubject(t, "Math", "-e", "2026-11-07")
	addSubject(t, "Physics", "-e", "2026-10-20")
	addSubject(t, "History", "-e", "2026-10-17")

	out, err := execute(t, "exams")

	require.NoError(t, err)
	assert.Contains(t, out, "yesterday")
	assert.Contains(t, out, "in 2 days")
	assert.Contains(t, out, "in 20 days")
	assert.Contains(t, out, string(domain.BandImminent))
	assert.Less(t, indexOf(out, "History"), indexOf(out, "Physics"))
	assert.Less(t, indexOf(out, "Physics"), indexOf(out, "Math"))
}

func TestExams_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	addSubject(t, "Physics", "-e", "2026-10-20")

	out, err := execute(t, "exams", "--json")
	require.NoError(t, err)

	var countdowns []domain.ExamCountdown
	require.NoError(t, json.Unmarshal([]byte(out), &countdowns))
	require.Len(t, countdowns, 1)
	assert.Equal(t, "Physics", countdowns[0].Subject)
	assert.Equal(t, 2, countdowns[0].DaysLeft)
	assert.Equal(t, domain.BandImminent, countdowns[0].Band)
}
