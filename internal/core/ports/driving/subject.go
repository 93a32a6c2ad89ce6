package driving

import (
	"context"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// SubjectService manages subjects and their topics.
type SubjectService interface {
	// Create validates and stores a new subject, assigning IDs.
	Create(ctx context.Context, subject domain.Subject) (*domain.Subject, error)

	// Get retrieves a subject by ID.
	Get(ctx context.Context, id string) (*domain.Subject, error)

	// List returns all subjects ordered by exam date.
	List(ctx context.Context) ([]domain.Subject, error)

	// Delete removes a subject and its topics.
	Delete(ctx context.Context, id string) error

	// AddTopics appends reviewed topic names to a subject.
	// Names already present are skipped. Returns the topics added.
	AddTopics(ctx context.Context, subjectID string, names []string, weightage float64) ([]domain.Topic, error)

	// SetTopicCompleted marks a topic done or pending.
	SetTopicCompleted(ctx context.Context, topicID string, completed bool) error
}
