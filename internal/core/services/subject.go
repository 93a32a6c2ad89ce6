package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driving"
	"github.com/Nikhil-4404/ai-exam-planner/internal/logger"
)

// Ensure SubjectService implements the interface.
var _ driving.SubjectService = (*SubjectService)(nil)

// SubjectService manages subjects and the topics they own.
type SubjectService struct {
	store driven.SubjectStore
	now   func() time.Time
}

// NewSubjectService creates a new subject service.
func NewSubjectService(store driven.SubjectStore) *SubjectService {
	return &SubjectService{store: store, now: time.Now}
}

// Create validates a subject, assigns IDs and stores it.
func (s *SubjectService) Create(ctx context.Context, subject domain.Subject) (*domain.Subject, error) {
	subject.Name = strings.TrimSpace(subject.Name)
	subject.ExamDate = domain.DateOf(subject.ExamDate)
	subject.Topics = append([]domain.Topic(nil), subject.Topics...)
	for i := range subject.Topics {
		subject.Topics[i].Name = strings.TrimSpace(subject.Topics[i].Name)
		if subject.Topics[i].Weightage == 0 {
			subject.Topics[i].Weightage = domain.DefaultWeightage
		}
	}
	if err := subject.Validate(); err != nil {
		return nil, err
	}

	if subject.ID == "" {
		subject.ID = uuid.New().String()
	}
	for i := range subject.Topics {
		if subject.Topics[i].ID == "" {
			subject.Topics[i].ID = uuid.New().String()
		}
	}
	now := s.now()
	subject.CreatedAt = now
	subject.UpdatedAt = now

	if err := s.store.Save(ctx, &subject); err != nil {
		return nil, fmt.Errorf("save subject: %w", err)
	}
	logger.Debug("Created subject %s (%s) with %d topics", subject.Name, subject.ID, len(subject.Topics))
	return &subject, nil
}

// Get retrieves a subject by ID.
func (s *SubjectService) Get(ctx context.Context, id string) (*domain.Subject, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: subject ID is required", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}

// List returns all subjects ordered by exam date.
func (s *SubjectService) List(ctx context.Context) ([]domain.Subject, error) {
	return s.store.List(ctx)
}

// Delete removes a subject and its topics.
func (s *SubjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	return nil
}

// AddTopics appends topics by name, skipping blanks and names already present.
// A zero weightage selects domain.DefaultWeightage.
func (s *SubjectService) AddTopics(ctx context.Context, subjectID string, names []string, weightage float64) ([]domain.Topic, error) {
	subject, err := s.Get(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	added := make([]domain.Topic, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || subject.HasTopic(name) {
			continue
		}
		topic, err := domain.NewTopic(name, weightage)
		if err != nil {
			return nil, err
		}
		topic.ID = uuid.New().String()
		subject.Topics = append(subject.Topics, topic)
		added = append(added, topic)
	}
	if len(added) == 0 {
		return added, nil
	}

	subject.UpdatedAt = s.now()
	if err := s.store.Save(ctx, subject); err != nil {
		return nil, fmt.Errorf("save subject: %w", err)
	}
	logger.Debug("Added %d topics to %s", len(added), subject.Name)
	return added, nil
}

// SetTopicCompleted marks a topic done or pending.
func (s *SubjectService) SetTopicCompleted(ctx context.Context, topicID string, completed bool) error {
	if topicID == "" {
		return fmt.Errorf("%w: topic ID is required", domain.ErrInvalidInput)
	}
	return s.store.SetTopicCompleted(ctx, topicID, completed)
}
