package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
)

// Ensure SubjectStore implements the interface.
var _ driven.SubjectStore = (*SubjectStore)(nil)

// SubjectStore is an in-memory implementation of driven.SubjectStore.
type SubjectStore struct {
	mu       sync.RWMutex
	subjects map[string]domain.Subject
	// topicOwner maps topic IDs to the owning subject ID.
	topicOwner map[string]string
}

// NewSubjectStore creates a new in-memory subject store.
func NewSubjectStore() *SubjectStore {
	return &SubjectStore{
		subjects:   make(map[string]domain.Subject),
		topicOwner: make(map[string]string),
	}
}

// Save stores or updates a subject and replaces its topics.
func (s *SubjectStore) Save(_ context.Context, subject *domain.Subject) error {
	if subject == nil || subject.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dropTopics(subject.ID)
	stored := cloneSubject(*subject)
	for _, t := range stored.Topics {
		s.topicOwner[t.ID] = stored.ID
	}
	s.subjects[stored.ID] = stored
	return nil
}

// Get retrieves a subject by ID.
func (s *SubjectStore) Get(_ context.Context, id string) (*domain.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	subject, ok := s.subjects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneSubject(subject)
	return &out, nil
}

// List returns all subjects ordered by exam date then name.
func (s *SubjectStore) List(_ context.Context) ([]domain.Subject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Subject, 0, len(s.subjects))
	for _, subject := range s.subjects {
		result = append(result, cloneSubject(subject))
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].ExamDate.Equal(result[j].ExamDate) {
			return result[i].ExamDate.Before(result[j].ExamDate)
		}
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Delete removes a subject and its topics.
func (s *SubjectStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropTopics(id)
	delete(s.subjects, id)
	return nil
}

// SetTopicCompleted updates a topic's completion flag.
func (s *SubjectStore) SetTopicCompleted(_ context.Context, topicID string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner, ok := s.topicOwner[topicID]
	if !ok {
		return domain.ErrNotFound
	}
	subject := s.subjects[owner]
	for i := range subject.Topics {
		if subject.Topics[i].ID == topicID {
			subject.Topics[i].Completed = completed
		}
	}
	s.subjects[owner] = subject
	return nil
}

// dropTopics forgets the topic index of a subject. Caller holds the lock.
func (s *SubjectStore) dropTopics(subjectID string) {
	existing, ok := s.subjects[subjectID]
	if !ok {
		return
	}
	for _, t := range existing.Topics {
		delete(s.topicOwner, t.ID)
	}
}

func cloneSubject(subject domain.Subject) domain.Subject {
	out := subject
	out.Topics = append([]domain.Topic(nil), subject.Topics...)
	return out
}
