package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driving"
	"github.com/Nikhil-4404/ai-exam-planner/internal/logger"
)

// Ensure SyllabusService implements the interface.
var _ driving.SyllabusService = (*SyllabusService)(nil)

// SyllabusService decodes syllabus documents and extracts candidate topics.
type SyllabusService struct {
	registry  driven.NormaliserRegistry
	extractor *SyllabusExtractor
}

// NewSyllabusService creates a syllabus service.
// The registry may be nil when only ExtractText is needed.
func NewSyllabusService(registry driven.NormaliserRegistry) *SyllabusService {
	return &SyllabusService{
		registry:  registry,
		extractor: NewSyllabusExtractor(),
	}
}

// ExtractTopics normalises raw into text and extracts topics from it.
// Decoder failures, including panics, surface as unreadable extraction errors.
func (s *SyllabusService) ExtractTopics(ctx context.Context, raw *domain.RawDocument) (result domain.ExtractionResult, err error) {
	if raw == nil {
		return domain.ExtractionResult{}, domain.NewExtractionError(domain.ExtractionUnreadable,
			"no document provided", domain.ErrInvalidInput)
	}
	if s.registry == nil {
		return domain.ExtractionResult{}, domain.NewExtractionError(domain.ExtractionUnreadable,
			"no document decoders configured", domain.ErrNotImplemented)
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Decoder panicked on %s: %v", raw.URI, r)
			result = domain.ExtractionResult{}
			err = domain.NewExtractionError(domain.ExtractionUnreadable,
				fmt.Sprintf("could not decode %s", displayName(raw)), fmt.Errorf("panic: %v", r))
		}
	}()

	logger.Section("Syllabus Extraction")
	logger.Debug("Decoding %s (%s)", raw.URI, raw.MIMEType)

	normalised, nerr := s.registry.Normalise(ctx, raw)
	if nerr != nil {
		return domain.ExtractionResult{}, domain.NewExtractionError(domain.ExtractionUnreadable,
			fmt.Sprintf("could not decode %s", displayName(raw)), nerr)
	}

	return s.extract(normalised.Document.Content)
}

// ExtractText extracts topics from already-decoded text.
func (s *SyllabusService) ExtractText(_ context.Context, text string) (domain.ExtractionResult, error) {
	return s.extract(text)
}

func (s *SyllabusService) extract(text string) (domain.ExtractionResult, error) {
	result, err := s.extractor.Extract(text)
	if err != nil {
		logger.Debug("Extraction failed: %v", err)
		return domain.ExtractionResult{}, err
	}
	logger.Info("Extracted %d topics (%s)", len(result.Topics), result.Strategy)
	if result.LowConfidence {
		logger.Warn("Only %d topics found; review before saving", len(result.Topics))
	}
	return result, nil
}

func displayName(raw *domain.RawDocument) string {
	if name := strings.TrimSpace(raw.URI); name != "" {
		return name
	}
	return "document"
}
