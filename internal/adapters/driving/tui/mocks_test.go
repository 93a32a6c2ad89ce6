package tui

import (
	"context"
	"time"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

type mockPlanService struct {
	plan       []domain.PlanEntry
	countdowns []domain.ExamCountdown
	err        error
	gotHours   []float64
}

func (m *mockPlanService) Generate(_ context.Context, dailyHours float64) ([]domain.PlanEntry, error) {
	m.gotHours = append(m.gotHours, dailyHours)
	if m.err != nil {
		return nil, m.err
	}
	return m.plan, nil
}

func (m *mockPlanService) Countdowns(_ context.Context) ([]domain.ExamCountdown, error) {
	return m.countdowns, nil
}

type toggle struct {
	topicID   string
	completed bool
}

type mockSubjectService struct {
	toggles []toggle
	err     error
}

func (m *mockSubjectService) Create(_ context.Context, s domain.Subject) (*domain.Subject, error) {
	return &s, nil
}

func (m *mockSubjectService) Get(_ context.Context, _ string) (*domain.Subject, error) {
	return nil, domain.ErrNotFound
}

func (m *mockSubjectService) List(_ context.Context) ([]domain.Subject, error) {
	return nil, nil
}

func (m *mockSubjectService) Delete(_ context.Context, _ string) error {
	return nil
}

func (m *mockSubjectService) AddTopics(_ context.Context, _ string, _ []string, _ float64) ([]domain.Topic, error) {
	return nil, nil
}

func (m *mockSubjectService) SetTopicCompleted(_ context.Context, topicID string, completed bool) error {
	if m.err != nil {
		return m.err
	}
	m.toggles = append(m.toggles, toggle{topicID: topicID, completed: completed})
	return nil
}

type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.settings, nil
}

func (m *mockSettingsService) SetDailyHours(_ float64) error { return nil }
func (m *mockSettingsService) SetDataDir(_ string) error { return nil }
func (m *mockSettingsService) ConfigPath() string { return "" }

func samplePlan() []domain.PlanEntry {
	return []domain.PlanEntry{
		{Subject: "Physics", Topic: "Optics", TopicID: "t1", AllocatedHours: 2.5, UrgencyScore: 7.5, Reason: domain.ReasonImminent},
		{Subject: "Math", Topic: "Algebra", TopicID: "t2", AllocatedHours: 1.5, UrgencyScore: 2.1, Reason: domain.ReasonFocus},
	}
}

func sampleCountdowns() []domain.ExamCountdown {
	exam := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	return []domain.ExamCountdown{
		{SubjectID: "s1", Subject: "Physics", ExamDate: exam, DaysLeft: 2, Band: domain.BandImminent},
		{SubjectID: "s0", Subject: "History", ExamDate: exam, DaysLeft: -3, Band: domain.BandFinished},
	}
}
