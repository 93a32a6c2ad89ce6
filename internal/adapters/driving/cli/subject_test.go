package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

const physicsSyllabus = `Physics 101
UNIT I
1. Kinematics
2. Dynamics; Work and Energy
UNIT II
- Thermodynamics
- Optics
`

func writeSyllabus(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func showSubject(t *testing.T, id string) subjectView {
	t.Helper()
	out, err := execute(t, "subject", "show", id, "--json")
	require.NoError(t, err)

	var view subjectView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	return view
}

func TestSubjectAdd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "subject", "add", "Math", "-d", "6", "-e", "2026-11-02", "-t", "Algebra:2", "--topic", "Geometry")

	require.NoError(t, err)
	assert.Contains(t, out, "Added Math (")
	assert.Contains(t, out, "with 2 topic(s)")
}

func TestSubjectAdd_StoresTopics(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := addSubject(t, "Math", "--exam", "2026-11-02", "--topic", "Algebra:2", "--topic", "Ratio 3:2")
	view := showSubject(t, id)

	assert.Equal(t, "Math", view.Name)
	assert.Equal(t, 5, view.Difficulty)
	assert.Equal(t, "2026-11-02", view.ExamDate)
	require.Len(t, view.Topics, 2)
	assert.Equal(t, "Algebra", view.Topics[0].Name)
	assert.Equal(t, 2.0, view.Topics[0].Weightage)
	assert.Equal(t, "Ratio 3", view.Topics[1].Name)
	assert.Equal(t, 2.0, view.Topics[1].Weightage)
}

func TestSubjectAdd_Errors(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing exam", []string{"subject", "add", "Math"}, `required flag(s) "exam" not set`},
		{"bad date", []string{"subject", "add", "Math", "-e", "02/11/2026"}, "invalid input"},
		{"bad difficulty", []string{"subject", "add", "Math", "-e", "2026-11-02", "-d", "11"}, "difficulty"},
		{"bad weight", []string{"subject", "add", "Math", "-e", "2026-11-02", "-t", "Algebra:-1"}, "weightage"},
		{"no name", []string{"subject", "add"}, "accepts 1 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSubjectList(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "subject", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No subjects yet")

	addSubject(t, "Physics", "-e", "2026-10-20", "-t", "Optics")
	addSubject(t, "Chemistry", "-e", "2026-10-25")

	out, err = execute(t, "subject", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Physics")
	assert.Contains(t, out, "Chemistry")
	assert.Contains(t, out, "0/1")
	assert.Contains(t, out, "5 (medium)")
	assert.Less(t, indexOf(out, "Physics"), indexOf(out, "Chemistry"))
}

func TestSubjectList_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	addSubject(t, "Chemistry", "-e", "2026-10-25")
	addSubject(t, "Physics", "-e", "2026-10-20", "-t", "Optics")

	out, err := execute(t, "subject", "list", "--json")
	require.NoError(t, err)

	var views []subjectView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "Physics", views[0].Name)
	assert.Equal(t, "Chemistry", views[1].Name)
	assert.Equal(t, "medium", views[1].Band)
	assert.Empty(t, views[1].Topics)
}

func TestSubjectShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := addSubject(t, "Physics", "-d", "8", "-e", "2026-10-20", "-t", "Optics:1.5")

	out, err := execute(t, "subject", "show", id)

	require.NoError(t, err)
	assert.Contains(t, out, "Physics ("+id+")")
	assert.Contains(t, out, "Exam:       2026-10-20")
	assert.Contains(t, out, "Difficulty: 8 (hard)")
	assert.Contains(t, out, "Optics")
	assert.Contains(t, out, "1.5")
	assert.Contains(t, out, "pending")
}

func TestSubjectShow_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "subject", "show", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubjectDelete(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := addSubject(t, "Physics", "-e", "2026-10-20")

	out, err := execute(t, "subject", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted subject "+id)

	_, err = execute(t, "subject", "show", id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubjectImport_Yes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := addSubject(t, "Physics", "-e", "2026-10-20", "-t", "Optics")
	path := writeSyllabus(t, "physics.txt", physicsSyllabus)

	out, err := execute(t, "subject", "import", id, path, "--yes", "--weight", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Found 5 candidate topic(s) for Physics (structured pass)")
	assert.Contains(t, out, "  = Optics")
	assert.Contains(t, out, "    Kinematics")
	assert.Contains(t, out, "Added 4 topic(s) to Physics")

	view := showSubject(t, id)
	require.Len(t, view.Topics, 5)
	assert.Equal(t, 1.0, view.Topics[0].Weightage)
	assert.Equal(t, 2.0, view.Topics[1].Weightage)
}

func TestSubjectImport_Prompt(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := addSubject(t, "Physics", "-e", "2026-10-20")
	path := writeSyllabus(t, "physics.txt", physicsSyllabus)

	out, err := executeInput(t, "n\n", "subject", "import", id, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Add these topics? [y/N]")
	assert.Contains(t, out, "Nothing added.")
	assert.Empty(t, showSubject(t, id).Topics)

	out, err = executeInput(t, "yes\n", "subject", "import", id, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Added 5 topic(s)")
}

func TestSubjectImport_LowConfidence(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := addSubject(t, "Physics", "-e", "2026-10-20")
	path := writeSyllabus(t, "short.md", "# Physics\n\nUNIT 1\n- Optics\n- Waves\n")

	out, err := execute(t, "subject", "import", id, path, "-y")

	require.NoError(t, err)
	assert.Contains(t, out, "Warning: few topics were found")
	assert.Contains(t, out, "Added 2 topic(s)")
}

func TestSubjectImport_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := addSubject(t, "Physics", "-e", "2026-10-20")

	_, err := execute(t, "subject", "import", id, filepath.Join(t.TempDir(), "none.txt"), "-y")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestParseTopicFlag(t *testing.T) {
	tests := []struct {
		raw        string
		wantName   string
		wantWeight float64
		wantErr    bool
	}{
		{"Algebra", "Algebra", domain.DefaultWeightage, false},
		{"Algebra:2.5", "Algebra", 2.5, false},
		{" Algebra : 3 ", "Algebra", 3, false},
		{"Time: Space", "Time: Space", domain.DefaultWeightage, false},
		{"Ratio 3:2", "Ratio 3", 2, false},
		{":2", "", 0, true},
		{"Algebra:0", "Algebra", domain.DefaultWeightage, false},
		{"Algebra:-2", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			topic, err := parseTopicFlag(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, topic.Name)
			assert.Equal(t, tt.wantWeight, topic.Weightage)
		})
	}
}

func TestProgress(t *testing.T) {
	done, total := progress([]domain.Topic{{Completed: true}, {}, {Completed: true}})

	assert.Equal(t, 2, done)
	assert.Equal(t, 3, total)
}
