package services

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

var plannerToday = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func examIn(days int) time.Time {
	return domain.DateOf(plannerToday).AddDate(0, 0, days)
}

func mathAndPhysics() []domain.Subject {
	return []domain.Subject{
		{
			ID:         "math",
			Name:       "Math",
			Difficulty: 8,
			ExamDate:   examIn(5),
			Topics: []domain.Topic{
				{ID: "t-alg", Name: "Algebra", Weightage: 1.5},
				{ID: "t-geo", Name: "Geometry", Weightage: 1.0, Completed: true},
			},
		},
		{
			ID:         "phys",
			Name:       "Physics",
			Difficulty: 5,
			ExamDate:   examIn(10),
			Topics: []domain.Topic{
				{ID: "t-kin", Name: "Kinematics", Weightage: 1.0},
			},
		},
	}
}

func TestNewPlanner(t *testing.T) {
	p := NewPlanner()

	require.NotNil(t, p)
	assert.NotNil(t, p.now)
}

func TestPlanner_ComputePlanAt_MathAndPhysics(t *testing.T) {
	p := NewPlanner()

	plan, err := p.ComputePlanAt(mathAndPhysics(), 6, plannerToday)

	require.NoError(t, err)
	require.Len(t, plan, 2)

	assert.Equal(t, "Math", plan[0].Subject)
	assert.Equal(t, "Algebra", plan[0].Topic)
	assert.Equal(t, "t-alg", plan[0].TopicID)
	assert.InDelta(t, 4.25, plan[0].AllocatedHours, 1e-9)
	assert.InDelta(t, 12.07, plan[0].UrgencyScore, 1e-9)
	assert.Equal(t, domain.ReasonFocus, plan[0].Reason)
	assert.Equal(t, examIn(5), plan[0].ExamDate)

	assert.Equal(t, "Physics", plan[1].Subject)
	assert.Equal(t, "Kinematics", plan[1].Topic)
	assert.InDelta(t, 1.75, plan[1].AllocatedHours, 1e-9)
	assert.InDelta(t, 4.74, plan[1].UrgencyScore, 1e-9)
	assert.Equal(t, domain.ReasonFocus, plan[1].Reason)

	assert.InDelta(t, 6.0, domain.TotalHours(plan), 1e-9)
}

func TestPlanner_ComputePlan_UsesClock(t *testing.T) {
	p := NewPlanner(WithClock(func() time.Time { return plannerToday }))

	got, err := p.ComputePlan(mathAndPhysics(), 6)
	require.NoError(t, err)

	want, err := p.ComputePlanAt(mathAndPhysics(), 6, plannerToday)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestWithClock_NilKeepsDefault(t *testing.T) {
	p := NewPlanner(WithClock(nil))

	assert.NotNil(t, p.now)
}

func TestPlanner_ComputePlanAt_EmptyInputs(t *testing.T) {
	p := NewPlanner()

	tests := []struct {
		name     string
		subjects []domain.Subject
	}{
		{"no subjects", nil},
		{"subject without topics", []domain.Subject{{Name: "Chemistry", Difficulty: 3, ExamDate: examIn(4)}}},
		{"all topics completed", []domain.Subject{{
			Name:       "Chemistry",
			Difficulty: 3,
			ExamDate:   examIn(4),
			Topics:     []domain.Topic{{Name: "Acids", Weightage: 1, Completed: true}},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := p.ComputePlanAt(tt.subjects, 4, plannerToday)

			require.NoError(t, err)
			assert.NotNil(t, plan)
			assert.Empty(t, plan)
		})
	}
}

func TestPlanner_ComputePlanAt_InvalidHours(t *testing.T) {
	p := NewPlanner()

	for _, hours := range []float64{0, -1, math.NaN(), math.Inf(1), 24.5} {
		_, err := p.ComputePlanAt(mathAndPhysics(), hours, plannerToday)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "hours=%v", hours)
	}
}

func TestPlanner_ComputePlanAt_InvalidSubjects(t *testing.T) {
	p := NewPlanner()

	tests := []struct {
		name    string
		subject domain.Subject
	}{
		{"difficulty too high", domain.Subject{Name: "Math", Difficulty: 11, ExamDate: examIn(3)}},
		{"negative difficulty", domain.Subject{Name: "Math", Difficulty: -1, ExamDate: examIn(3)}},
		{"missing exam date", domain.Subject{Name: "Math", Difficulty: 5}},
		{"zero weightage", domain.Subject{
			Name: "Math", Difficulty: 5, ExamDate: examIn(3),
			Topics: []domain.Topic{{Name: "Algebra", Weightage: 0}},
		}},
		{"negative weightage", domain.Subject{
			Name: "Math", Difficulty: 5, ExamDate: examIn(3),
			Topics: []domain.Topic{{Name: "Algebra", Weightage: -2}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ComputePlanAt([]domain.Subject{tt.subject}, 4, plannerToday)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestPlanner_ComputePlanAt_PastExamIsImminent(t *testing.T) {
	p := NewPlanner()
	subjects := []domain.Subject{{
		Name:       "History",
		Difficulty: 0,
		ExamDate:   examIn(-3),
		Topics:     []domain.Topic{{Name: "Renaissance", Weightage: 1}},
	}}

	plan, err := p.ComputePlanAt(subjects, 2, plannerToday)

	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.InDelta(t, 2.0, plan[0].AllocatedHours, 1e-9)
	assert.InDelta(t, 10.0, plan[0].UrgencyScore, 1e-9)
	assert.Equal(t, domain.ReasonImminent, plan[0].Reason)
}

func TestPlanner_ComputePlanAt_Reasons(t *testing.T) {
	p := NewPlanner()

	tests := []struct {
		name      string
		days      int
		weightage float64
		want      domain.PlanReason
	}{
		{"three days is imminent", 3, 0.1, domain.ReasonImminent},
		{"four days with high score", 4, 1, domain.ReasonFocus},
		{"distant low weight", 100, 0.1, domain.ReasonBalanced},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subjects := []domain.Subject{{
				Name:     "Biology",
				ExamDate: examIn(tt.days),
				Topics:   []domain.Topic{{Name: "Cells", Weightage: tt.weightage}},
			}}

			plan, err := p.ComputePlanAt(subjects, 1, plannerToday)

			require.NoError(t, err)
			require.Len(t, plan, 1)
			assert.Equal(t, tt.want, plan[0].Reason)
		})
	}
}

func TestPlanner_ComputePlanAt_DropsTinyShares(t *testing.T) {
	p := NewPlanner()
	subjects := []domain.Subject{
		{
			Name:       "Urgent",
			Difficulty: 10,
			ExamDate:   examIn(1),
			Topics:     []domain.Topic{{Name: "Everything", Weightage: 10}},
		},
		{
			Name:     "Later",
			ExamDate: examIn(100),
			Topics:   []domain.Topic{{Name: "Trivia", Weightage: 0.1}},
		},
	}

	plan, err := p.ComputePlanAt(subjects, 2, plannerToday)

	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "Everything", plan[0].Topic)
	assert.InDelta(t, 2.0, plan[0].AllocatedHours, 1e-9)
}

func TestPlanner_ComputePlanAt_TieBreak(t *testing.T) {
	p := NewPlanner()
	subject := func(name string, topics ...string) domain.Subject {
		s := domain.Subject{Name: name, Difficulty: 5, ExamDate: examIn(9)}
		for _, topic := range topics {
			s.Topics = append(s.Topics, domain.Topic{ID: name + "/" + topic, Name: topic, Weightage: 1})
		}
		return s
	}
	subjects := []domain.Subject{
		subject("Beta", "Zeta", "Eta"),
		subject("Alpha", "Omega"),
	}

	plan, err := p.ComputePlanAt(subjects, 3, plannerToday)

	require.NoError(t, err)
	require.Len(t, plan, 3)
	assert.Equal(t, []string{"Alpha/Omega", "Beta/Eta", "Beta/Zeta"},
		[]string{plan[0].TopicID, plan[1].TopicID, plan[2].TopicID})
	for _, entry := range plan {
		assert.InDelta(t, 1.0, entry.AllocatedHours, 1e-9)
	}
}

func TestPlanner_ComputePlanAt_Idempotent(t *testing.T) {
	p := NewPlanner()

	first, err := p.ComputePlanAt(mathAndPhysics(), 5.5, plannerToday)
	require.NoError(t, err)
	second, err := p.ComputePlanAt(mathAndPhysics(), 5.5, plannerToday)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlanner_ComputePlanAt_DoesNotMutateInput(t *testing.T) {
	p := NewPlanner()
	subjects := mathAndPhysics()
	before := mathAndPhysics()

	_, err := p.ComputePlanAt(subjects, 6, plannerToday)

	require.NoError(t, err)
	assert.Equal(t, before, subjects)
}

func TestPlanner_ComputePlanAt_Invariants(t *testing.T) {
	p := NewPlanner()
	subjects := []domain.Subject{
		{Name: "Math", Difficulty: 8, ExamDate: examIn(2), Topics: []domain.Topic{
			{Name: "Algebra", Weightage: 1.5}, {Name: "Calculus", Weightage: 2}, {Name: "Sets", Weightage: 0.5},
		}},
		{Name: "Physics", Difficulty: 6, ExamDate: examIn(12), Topics: []domain.Topic{
			{Name: "Optics", Weightage: 1}, {Name: "Waves", Weightage: 1.2},
		}},
		{Name: "History", Difficulty: 2, ExamDate: examIn(40), Topics: []domain.Topic{
			{Name: "Empires", Weightage: 1},
		}},
	}

	for _, hours := range []float64{0.5, 1, 2.75, 4, 7.5, 12} {
		plan, err := p.ComputePlanAt(subjects, hours, plannerToday)
		require.NoError(t, err)

		for i, entry := range plan {
			assert.Positive(t, entry.AllocatedHours)
			assert.InDelta(t, 0, math.Mod(entry.AllocatedHours, AllocationQuantum), 1e-9)
			if i > 0 {
				assert.GreaterOrEqual(t, plan[i-1].UrgencyScore, entry.UrgencyScore)
			}
		}
		// Rounding can overshoot by at most half a quantum per entry.
		assert.LessOrEqual(t, domain.TotalHours(plan), hours+float64(len(plan))*AllocationQuantum/2+1e-9)
	}
}

func TestPlanner_ComputePlanAt_MonotoneInWeightage(t *testing.T) {
	p := NewPlanner()
	build := func(w float64) []domain.Subject {
		return []domain.Subject{
			{Name: "Math", Difficulty: 5, ExamDate: examIn(6), Topics: []domain.Topic{
				{ID: "focus", Name: "Probability", Weightage: w},
				{ID: "other", Name: "Algebra", Weightage: 1},
			}},
			{Name: "Physics", Difficulty: 5, ExamDate: examIn(6), Topics: []domain.Topic{
				{ID: "phys", Name: "Optics", Weightage: 1},
			}},
		}
	}
	position := func(plan []domain.PlanEntry) (int, float64) {
		for i, entry := range plan {
			if entry.TopicID == "focus" {
				return i, entry.AllocatedHours
			}
		}
		return len(plan), 0
	}

	prevRank, prevHours := position(mustPlan(t, p, build(0.5)))
	for _, w := range []float64{0.75, 1, 1.5, 2, 4} {
		rank, hours := position(mustPlan(t, p, build(w)))
		assert.LessOrEqual(t, rank, prevRank, "weightage=%v", w)
		assert.GreaterOrEqual(t, hours, prevHours, "weightage=%v", w)
		prevRank, prevHours = rank, hours
	}
}

func mustPlan(t *testing.T, p *Planner, subjects []domain.Subject) []domain.PlanEntry {
	t.Helper()
	plan, err := p.ComputePlanAt(subjects, 4, plannerToday)
	require.NoError(t, err)
	return plan
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.25, 0.25},
		{0.3, 0.25},
		{0.374, 0.25},
		{0.375, 0.5},
		{0.625, 0.75},
		{1.1, 1.0},
		{1.125, 1.25},
		{4.3077, 4.25},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Quantize(tt.in), 1e-9, "in=%v", tt.in)
	}
}
