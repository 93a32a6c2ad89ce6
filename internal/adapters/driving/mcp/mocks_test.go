package mcp

import (
	"context"
	"time"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// mockPlanService is a mock implementation of driving.PlanService.
type mockPlanService struct {
	plan       []domain.PlanEntry
	countdowns []domain.ExamCountdown
	err        error
	gotHours   float64
}

func (m *mockPlanService) Generate(_ context.Context, dailyHours float64) ([]domain.PlanEntry, error) {
	m.gotHours = dailyHours
	return m.plan, m.err
}

func (m *mockPlanService) Countdowns(_ context.Context) ([]domain.ExamCountdown, error) {
	return m.countdowns, m.err
}

// mockPlanner is a mock implementation of driving.Planner.
type mockPlanner struct {
	plan        []domain.PlanEntry
	err         error
	gotSubjects []domain.Subject
	gotHours    float64
}

func (m *mockPlanner) ComputePlan(subjects []domain.Subject, dailyHours float64) ([]domain.PlanEntry, error) {
	m.gotSubjects = subjects
	m.gotHours = dailyHours
	return m.plan, m.err
}

func (m *mockPlanner) ComputePlanAt(subjects []domain.Subject, dailyHours float64, _ time.Time) ([]domain.PlanEntry, error) {
	return m.ComputePlan(subjects, dailyHours)
}

// mockSyllabusService is a mock implementation of driving.SyllabusService.
type mockSyllabusService struct {
	result  domain.ExtractionResult
	err     error
	gotText string
}

func (m *mockSyllabusService) ExtractTopics(_ context.Context, _ *domain.RawDocument) (domain.ExtractionResult, error) {
	return m.result, m.err
}

func (m *mockSyllabusService) ExtractText(_ context.Context, text string) (domain.ExtractionResult, error) {
	m.gotText = text
	return m.result, m.err
}

// mockSubjectService is a mock implementation of driving.SubjectService.
type mockSubjectService struct {
	subjects []domain.Subject
	subject  *domain.Subject
	err      error
}

func (m *mockSubjectService) Create(_ context.Context, subject domain.Subject) (*domain.Subject, error) {
	return &subject, m.err
}

func (m *mockSubjectService) Get(_ context.Context, _ string) (*domain.Subject, error) {
	return m.subject, m.err
}

func (m *mockSubjectService) List(_ context.Context) ([]domain.Subject, error) {
	return m.subjects, m.err
}

func (m *mockSubjectService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockSubjectService) AddTopics(_ context.Context, _ string, _ []string, _ float64) ([]domain.Topic, error) {
	return nil, m.err
}

func (m *mockSubjectService) SetTopicCompleted(_ context.Context, _ string, _ bool) error {
	return m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &m.settings, nil
}

func (m *mockSettingsService) SetDailyHours(_ float64) error { return m.err }

func (m *mockSettingsService) SetDataDir(_ string) error { return m.err }

func (m *mockSettingsService) ConfigPath() string { return ":memory:" }

func validPorts() *Ports {
	return &Ports{
		Plans:    &mockPlanService{},
		Planner:  &mockPlanner{},
		Syllabus: &mockSyllabusService{},
	}
}
