package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driving"
)

// Ensure PlanService implements the interface.
var _ driving.PlanService = (*PlanService)(nil)

// PlanService plans study time over the stored subjects.
type PlanService struct {
	store   driven.SubjectStore
	planner driving.Planner
	now     func() time.Time
}

// NewPlanService creates a plan service. A nil clock uses time.Now.
func NewPlanService(store driven.SubjectStore, planner driving.Planner, now func() time.Time) *PlanService {
	if now == nil {
		now = time.Now
	}
	return &PlanService{store: store, planner: planner, now: now}
}

// Generate computes today's plan across every stored subject.
func (s *PlanService) Generate(ctx context.Context, dailyHours float64) ([]domain.PlanEntry, error) {
	subjects, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return s.planner.ComputePlanAt(subjects, dailyHours, s.now())
}

// Countdowns lists every stored exam ordered by date, then subject name.
func (s *PlanService) Countdowns(ctx context.Context) ([]domain.ExamCountdown, error) {
	subjects, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	today := s.now()
	countdowns := make([]domain.ExamCountdown, 0, len(subjects))
	for i := range subjects {
		days := domain.DaysBetween(today, subjects[i].ExamDate)
		countdowns = append(countdowns, domain.ExamCountdown{
			SubjectID: subjects[i].ID,
			Subject:   subjects[i].Name,
			ExamDate:  subjects[i].ExamDate,
			DaysLeft:  days,
			Band:      domain.BandFor(days),
		})
	}
	sort.SliceStable(countdowns, func(i, j int) bool {
		if !countdowns[i].ExamDate.Equal(countdowns[j].ExamDate) {
			return countdowns[i].ExamDate.Before(countdowns[j].ExamDate)
		}
		return countdowns[i].Subject < countdowns[j].Subject
	})
	return countdowns, nil
}
