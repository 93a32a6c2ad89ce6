package driving

import (
	"context"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// SyllabusService turns syllabus documents into candidate topic lists.
// Failures are returned as *domain.ExtractionError, never as panics.
type SyllabusService interface {
	// ExtractTopics normalises a document and extracts candidate topics.
	ExtractTopics(ctx context.Context, raw *domain.RawDocument) (domain.ExtractionResult, error)

	// ExtractText extracts candidate topics from already-decoded text.
	ExtractText(ctx context.Context, text string) (domain.ExtractionResult, error)
}
