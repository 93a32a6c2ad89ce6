package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Difficulty bounds for a subject.
const (
	MinDifficulty = 0
	MaxDifficulty = 10
)

// DifficultyBand groups subject difficulty for summaries.
type DifficultyBand string

const (
	BandEasy   DifficultyBand = "easy"
	BandMedium DifficultyBand = "medium"
	BandHard   DifficultyBand = "hard"
)

// BandOf returns the band for a difficulty: easy up to 4, medium up to 7, hard above.
func BandOf(difficulty int) DifficultyBand {
	switch {
	case difficulty <= 4:
		return BandEasy
	case difficulty <= 7:
		return BandMedium
	default:
		return BandHard
	}
}

// DefaultWeightage is the relative importance given to a topic when none is set.
const DefaultWeightage = 1.0

// Topic is a unit of study within a subject.
type Topic struct {
	// ID is the opaque identifier. Empty until the topic is persisted.
	ID string

	// Name is the topic title.
	Name string

	// Weightage is the relative importance within the owning subject.
	Weightage float64

	// Completed marks the topic as done; completed topics are never scheduled.
	Completed bool
}

// NewTopic creates a pending topic. A zero weightage selects DefaultWeightage.
func NewTopic(name string, weightage float64) (Topic, error) {
	if weightage == 0 {
		weightage = DefaultWeightage
	}
	t := Topic{Name: strings.TrimSpace(name), Weightage: weightage}
	if err := t.Validate(); err != nil {
		return Topic{}, err
	}
	return t, nil
}

// Validate checks the topic invariants.
func (t *Topic) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: topic name is required", ErrInvalidInput)
	}
	if t.Weightage <= 0 || math.IsNaN(t.Weightage) || math.IsInf(t.Weightage, 0) {
		return fmt.Errorf("%w: topic %q weightage must be positive, got %v", ErrInvalidInput, t.Name, t.Weightage)
	}
	return nil
}

// Subject is an examinable subject. It exclusively owns its topics.
type Subject struct {
	// ID is the opaque identifier. Empty until the subject is persisted.
	ID string

	// Name is the subject title.
	Name string

	// Difficulty ranges from MinDifficulty to MaxDifficulty.
	Difficulty int

	// ExamDate is the calendar date of the exam. It may lie in the past.
	ExamDate time.Time

	// Topics are the units of study for this subject.
	Topics []Topic

	// CreatedAt is when the subject was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the subject was last stored.
	UpdatedAt time.Time
}

// NewSubject creates a subject and enforces its invariants.
func NewSubject(name string, difficulty int, examDate time.Time, topics ...Topic) (Subject, error) {
	s := Subject{
		Name:       strings.TrimSpace(name),
		Difficulty: difficulty,
		ExamDate:   DateOf(examDate),
		Topics:     topics,
	}
	if err := s.Validate(); err != nil {
		return Subject{}, err
	}
	return s, nil
}

// Validate checks the subject invariants, including those of every topic.
func (s *Subject) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: subject name is required", ErrInvalidInput)
	}
	if s.Difficulty < MinDifficulty || s.Difficulty > MaxDifficulty {
		return fmt.Errorf("%w: subject %q difficulty must be within [%d, %d], got %d",
			ErrInvalidInput, s.Name, MinDifficulty, MaxDifficulty, s.Difficulty)
	}
	if s.ExamDate.IsZero() {
		return fmt.Errorf("%w: subject %q has no exam date", ErrInvalidInput, s.Name)
	}
	for i := range s.Topics {
		if err := s.Topics[i].Validate(); err != nil {
			return fmt.Errorf("subject %q: %w", s.Name, err)
		}
	}
	return nil
}

// PendingTopics returns the topics not yet completed, in stored order.
func (s *Subject) PendingTopics() []Topic {
	pending := make([]Topic, 0, len(s.Topics))
	for _, t := range s.Topics {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	return pending
}

// HasTopic reports whether a topic with the given name already exists.
// Comparison ignores case and surrounding whitespace.
func (s *Subject) HasTopic(name string) bool {
	name = strings.TrimSpace(name)
	for _, t := range s.Topics {
		if strings.EqualFold(strings.TrimSpace(t.Name), name) {
			return true
		}
	}
	return false
}
