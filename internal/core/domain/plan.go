package domain

import "time"

// PlanReason is the human-readable explanation attached to a plan entry.
type PlanReason string

// Plan reasons, checked in this order.
const (
	// ReasonImminent marks a topic whose exam is at most ImminentDays away.
	ReasonImminent PlanReason = "urgent — exam imminent"

	// ReasonFocus marks a topic whose urgency score exceeds FocusScore.
	ReasonFocus PlanReason = "high difficulty/weight focus"

	// ReasonBalanced marks every other topic.
	ReasonBalanced PlanReason = "balanced review"
)

// Fixed thresholds for reason tagging.
const (
	ImminentDays = 3
	FocusScore   = 1.0
)

// String returns the reason text.
func (r PlanReason) String() string {
	return string(r)
}

// ScoredItem is a pending topic with its urgency score.
// It only lives for the duration of one allocation run.
type ScoredItem struct {
	SubjectName   string
	TopicName     string
	TopicID       string
	Score         float64
	ExamDate      time.Time
	DaysRemaining int
}

// PlanEntry is one line of today's study plan.
type PlanEntry struct {
	// Subject is the owning subject's name.
	Subject string `json:"subject"`

	// Topic is the topic name.
	Topic string `json:"topic"`

	// TopicID references the source topic, for completion toggles.
	TopicID string `json:"topic_id,omitempty"`

	// AllocatedHours is a positive multiple of 0.25.
	AllocatedHours float64 `json:"allocated_hours"`

	// UrgencyScore is rounded to two decimals.
	UrgencyScore float64 `json:"urgency_score"`

	// ExamDate is the subject's exam date.
	ExamDate time.Time `json:"exam_date"`

	// Reason explains why the topic was scheduled.
	Reason PlanReason `json:"reason"`
}

// TotalHours sums the allocated hours of a plan.
func TotalHours(plan []PlanEntry) float64 {
	var total float64
	for i := range plan {
		total += plan[i].AllocatedHours
	}
	return total
}

// CountdownBand groups exams by how soon they happen.
type CountdownBand string

// Countdown bands, from most to least pressing.
const (
	BandFinished    CountdownBand = "finished"
	BandImminent    CountdownBand = "imminent"
	BandApproaching CountdownBand = "approaching"
	BandDistant     CountdownBand = "distant"
)

// BandFor classifies the number of days left before an exam.
func BandFor(daysLeft int) CountdownBand {
	switch {
	case daysLeft < 0:
		return BandFinished
	case daysLeft < 7:
		return BandImminent
	case daysLeft < 30:
		return BandApproaching
	default:
		return BandDistant
	}
}

// ExamCountdown reports how far away a subject's exam is.
type ExamCountdown struct {
	SubjectID string        `json:"subject_id"`
	Subject   string        `json:"subject"`
	ExamDate  time.Time     `json:"exam_date"`
	DaysLeft  int           `json:"days_left"`
	Band      CountdownBand `json:"band"`
}
