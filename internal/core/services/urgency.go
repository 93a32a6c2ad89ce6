package services

import (
	"math"
	"time"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// urgencyScale lifts root-urgency scores into a readable range.
const urgencyScale = 10.0

// DaysRemaining returns the calendar days until the exam, clamped to at least 1.
// Exams today or in the past count as one day away.
func DaysRemaining(examDate, today time.Time) int {
	return max(1, domain.DaysBetween(today, examDate))
}

// DifficultyMultiplier maps a 0-10 difficulty onto [1.0, 2.0].
func DifficultyMultiplier(difficulty int) float64 {
	return 1.0 + float64(difficulty)/10.0
}

// UrgencyScore computes a topic's priority with the root-urgency law:
//
//	weightage × (1 + difficulty/10) × 10/√days
//
// daysRemaining below 1 is treated as 1.
func UrgencyScore(topic domain.Topic, difficulty, daysRemaining int) float64 {
	days := float64(max(1, daysRemaining))
	return topic.Weightage * DifficultyMultiplier(difficulty) * (urgencyScale / math.Sqrt(days))
}
