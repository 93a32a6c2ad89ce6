package domain

import "fmt"

// ExtractionStrategy names the pass that produced an extraction result.
type ExtractionStrategy string

// Extraction strategies.
const (
	// StrategyStructured only accepts lines inside UNIT/MODULE/CHAPTER/SECTION blocks.
	StrategyStructured ExtractionStrategy = "structured"

	// StrategyFallback accepts any plausible line regardless of block state.
	StrategyFallback ExtractionStrategy = "fallback"
)

// MinConfidentTopics is the number of topics below which an extraction
// needs human review.
const MinConfidentTopics = 5

// ExtractionResult holds candidate topics recovered from a syllabus.
// The caller is expected to review them before they become topics.
type ExtractionResult struct {
	// Topics are deduplicated candidates in order of first appearance.
	Topics []string `json:"topics"`

	// Strategy is the pass that produced Topics.
	Strategy ExtractionStrategy `json:"strategy"`

	// LowConfidence is set when fewer than MinConfidentTopics were found.
	LowConfidence bool `json:"low_confidence"`
}

// ExtractionReason classifies an extraction failure.
type ExtractionReason string

// Extraction failure reasons.
const (
	// ExtractionNoText means the document held no recoverable text,
	// e.g. a scanned, image-only PDF.
	ExtractionNoText ExtractionReason = "no_text"

	// ExtractionUnreadable means the document could not be decoded.
	ExtractionUnreadable ExtractionReason = "unreadable"

	// ExtractionNoTopics means text was present but every strategy came up empty.
	ExtractionNoTopics ExtractionReason = "no_topics"
)

// ExtractionError is the tagged failure outcome of syllabus extraction.
type ExtractionError struct {
	Reason  ExtractionReason
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed (%s): %s: %v", e.Reason, e.Message, e.Err)
	}
	return fmt.Sprintf("extraction failed (%s): %s", e.Reason, e.Message)
}

// Unwrap returns the lower-level cause, if any.
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is makes every ExtractionError match ErrExtractionFailed.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtractionFailed
}

// NewExtractionError builds an ExtractionError.
func NewExtractionError(reason ExtractionReason, message string, cause error) *ExtractionError {
	return &ExtractionError{Reason: reason, Message: message, Err: cause}
}
