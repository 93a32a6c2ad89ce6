package driving

import (
	"context"
	"time"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// Planner computes a same-day study plan from explicit inputs.
// It holds no state between calls.
type Planner interface {
	// ComputePlan allocates dailyHours across the pending topics of subjects
	// for today. Returns an empty plan when nothing is pending.
	ComputePlan(subjects []domain.Subject, dailyHours float64) ([]domain.PlanEntry, error)

	// ComputePlanAt is ComputePlan for an explicit "today".
	ComputePlanAt(subjects []domain.Subject, dailyHours float64, today time.Time) ([]domain.PlanEntry, error)
}

// PlanService builds plans and countdowns from stored subjects.
type PlanService interface {
	// Generate computes today's plan for every stored subject.
	Generate(ctx context.Context, dailyHours float64) ([]domain.PlanEntry, error)

	// Countdowns lists every stored exam ordered by date.
	Countdowns(ctx context.Context) ([]domain.ExamCountdown, error)
}
