package driven

import (
	"context"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// SyllabusSource reads syllabus documents from a location such as a folder.
type SyllabusSource interface {
	// Read loads a single document. The underlying handle is released
	// before Read returns.
	Read(ctx context.Context, path string) (*domain.RawDocument, error)

	// List returns the paths of every visible document under the source.
	List(ctx context.Context) ([]string, error)

	// Watch listens for real-time changes until ctx is cancelled.
	// The returned channel is closed when watching stops.
	Watch(ctx context.Context) (<-chan domain.RawDocumentChange, error)

	// Close releases resources.
	Close() error
}
