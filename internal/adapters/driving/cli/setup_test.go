package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Nikhil-4404/ai-exam-planner/internal/adapters/driven/storage/memory"
	"github.com/Nikhil-4404/ai-exam-planner/internal/connectors/filesystem"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
	core "github.com/Nikhil-4404/ai-exam-planner/internal/core/services"
	"github.com/Nikhil-4404/ai-exam-planner/internal/normalisers/markdown"
	"github.com/Nikhil-4404/ai-exam-planner/internal/normalisers/plaintext"
)

// testToday is the fixed "today" used by the plan service in tests.
var testToday = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

// setupTestServices installs real services over in-memory stores and
// returns a cleanup function restoring the previous state.
func setupTestServices() func() {
	store := memory.NewSubjectStore()
	planner := core.NewPlanner()

	SetServices(&Services{
		Subjects: core.NewSubjectService(store),
		Plans:    core.NewPlanService(store, planner, func() time.Time { return testToday }),
		Syllabus: core.NewSyllabusService(core.NewNormaliserRegistry(plaintext.New(), markdown.New())),
		Settings: core.NewSettingsService(memory.NewConfigStore()),
		Planner:  planner,
		OpenSource: func(dir string) driven.SyllabusSource {
			return filesystem.New(dir)
		},
	})

	return func() {
		SetServices(nil)
	}
}

// execute runs the root command with args and returns everything written
// to stdout and stderr. Flags are reset afterwards.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(context.Background(), t, "", args...)
}

// executeInput is execute with input available on stdin.
func executeInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	return executeContext(context.Background(), t, input, args...)
}

func executeContext(ctx context.Context, t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.ExecuteContext(ctx)
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// addSubject creates a subject through the CLI and returns its ID.
func addSubject(t *testing.T, args ...string) string {
	t.Helper()

	out, err := execute(t, append([]string{"subject", "add"}, args...)...)
	if err != nil {
		t.Fatalf("subject add: %v\n%s", err, out)
	}
	open := strings.Index(out, "(")
	end := strings.Index(out, ")")
	if open < 0 || end < open {
		t.Fatalf("no subject ID in %q", out)
	}
	return out[open+1 : end]
}

func indexOf(s, substr string) int {
	return strings.Index(s, substr)
}
