package driven

import (
	"context"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// SubjectStore persists subjects together with the topics they own.
type SubjectStore interface {
	// Save stores or updates a subject and replaces its topic set.
	// Subject and topic IDs must already be assigned.
	Save(ctx context.Context, subject *domain.Subject) error

	// Get retrieves a subject with its topics.
	// Returns domain.ErrNotFound if the subject does not exist.
	Get(ctx context.Context, id string) (*domain.Subject, error)

	// List returns all subjects with their topics, ordered by exam date then name.
	List(ctx context.Context) ([]domain.Subject, error)

	// Delete removes a subject and every topic it owns.
	Delete(ctx context.Context, id string) error

	// SetTopicCompleted updates a topic's completion flag.
	// Returns domain.ErrNotFound if the topic does not exist.
	SetTopicCompleted(ctx context.Context, topicID string, completed bool) error
}
