package services

import (
	"math"
	"sort"
	"time"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driving"
	"github.com/Nikhil-4404/ai-exam-planner/internal/logger"
)

// Ensure Planner implements the interface.
var _ driving.Planner = (*Planner)(nil)

// Allocation policy.
const (
	// MinAllocation is the smallest useful study slot in hours.
	// Shorter proportional shares are dropped.
	MinAllocation = 0.25

	// AllocationQuantum is the step allocations are rounded to.
	AllocationQuantum = 0.25
)

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithClock sets the source of "today". Defaults to time.Now.
func WithClock(now func() time.Time) PlannerOption {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

// Planner allocates a daily study budget across pending topics.
type Planner struct {
	now func() time.Time
}

// NewPlanner creates a planner.
func NewPlanner(opts ...PlannerOption) *Planner {
	p := &Planner{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ComputePlan allocates dailyHours across every pending topic for today.
func (p *Planner) ComputePlan(subjects []domain.Subject, dailyHours float64) ([]domain.PlanEntry, error) {
	return p.ComputePlanAt(subjects, dailyHours, p.now())
}

// ComputePlanAt allocates dailyHours across every pending topic as of today.
//
// Scores are normalised globally across all subjects. Shares under
// MinAllocation are dropped, the rest are rounded half away from zero to
// AllocationQuantum. Entries keep descending-urgency order.
func (p *Planner) ComputePlanAt(subjects []domain.Subject, dailyHours float64, today time.Time) ([]domain.PlanEntry, error) {
	if err := domain.ValidateDailyHours(dailyHours); err != nil {
		return nil, err
	}
	for i := range subjects {
		if err := subjects[i].Validate(); err != nil {
			return nil, err
		}
	}

	logger.Section("Study Plan")
	items, total := scorePending(subjects, today)
	logger.Debug("Pending topics: %d, total urgency: %.4f, budget: %.2fh", len(items), total, dailyHours)

	plan := make([]domain.PlanEntry, 0, len(items))
	if len(items) == 0 || total <= 0 {
		logger.Info("Nothing pending")
		return plan, nil
	}

	sortByUrgency(items)

	for i := range items {
		item := &items[i]
		share := item.Score / total * dailyHours
		if share < MinAllocation {
			logger.Debug("Dropped %s/%s: share %.3fh below minimum", item.SubjectName, item.TopicName, share)
			continue
		}
		hours := Quantize(share)
		if hours <= 0 {
			continue
		}
		plan = append(plan, domain.PlanEntry{
			Subject:        item.SubjectName,
			Topic:          item.TopicName,
			TopicID:        item.TopicID,
			AllocatedHours: hours,
			UrgencyScore:   roundScore(item.Score),
			ExamDate:       item.ExamDate,
			Reason:         reasonFor(item),
		})
	}

	logger.Info("Planned %d topics, %.2fh of %.2fh", len(plan), domain.TotalHours(plan), dailyHours)
	return plan, nil
}

// scorePending scores every non-completed topic and returns the global total.
func scorePending(subjects []domain.Subject, today time.Time) ([]domain.ScoredItem, float64) {
	var items []domain.ScoredItem
	var total float64
	for i := range subjects {
		sub := &subjects[i]
		days := DaysRemaining(sub.ExamDate, today)
		for _, topic := range sub.Topics {
			if topic.Completed {
				continue
			}
			score := UrgencyScore(topic, sub.Difficulty, days)
			total += score
			items = append(items, domain.ScoredItem{
				SubjectName:   sub.Name,
				TopicName:     topic.Name,
				TopicID:       topic.ID,
				Score:         score,
				ExamDate:      sub.ExamDate,
				DaysRemaining: days,
			})
		}
	}
	return items, total
}

// sortByUrgency orders items by score descending.
// Equal scores fall back to subject name, topic name, then topic ID.
func sortByUrgency(items []domain.ScoredItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := &items[i], &items[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.SubjectName != b.SubjectName {
			return a.SubjectName < b.SubjectName
		}
		if a.TopicName != b.TopicName {
			return a.TopicName < b.TopicName
		}
		return a.TopicID < b.TopicID
	})
}

// Quantize rounds hours to the nearest AllocationQuantum, halves away from zero.
func Quantize(hours float64) float64 {
	return math.Round(hours/AllocationQuantum) * AllocationQuantum
}

func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}

func reasonFor(item *domain.ScoredItem) domain.PlanReason {
	switch {
	case item.DaysRemaining <= domain.ImminentDays:
		return domain.ReasonImminent
	case item.Score > domain.FocusScore:
		return domain.ReasonFocus
	default:
		return domain.ReasonBalanced
	}
}
