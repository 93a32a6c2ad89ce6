package services

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/logger"
)

// Extraction limits.
const (
	// MaxTopics caps how many candidates one extraction returns.
	MaxTopics = 100

	// minLineRunes is the shortest line worth inspecting.
	minLineRunes = 4

	// Topic name length bounds after cleanup, in runes.
	minTopicRunes = 3
	maxTopicRunes = 60

	// Line length bounds for the fallback pass, exclusive.
	minLooseLineRunes = 5
	maxLooseLineRunes = 100
)

var (
	// blockMarker opens a topic block: UNIT 1, Module-II, Chapter 3:, SECTION.
	blockMarker = regexp.MustCompile(`(?i)^(unit|module|chapter|section)(\s*[-:.]?\s*([0-9]+|x{0,3}(ix|iv|v?i{1,3}|v)|x{1,3})\b|\s*[-:.]|\s*$)`)

	// pageNumber matches "12", "Page 3", "3 of 10", "4/12".
	pageNumber = regexp.MustCompile(`(?i)^(page\s*)?\d+(\s*(of|/)\s*\d+)?$`)

	// noiseLine matches objective statements and bare headings.
	noiseLine = regexp.MustCompile(`(?i)^(to\s+(understand|learn|study|enable|impart|provide|introduce|develop)\b` +
		`|course\s+objectives?\b|objectives?\b|students\s+(will|should|shall)\b|(up)?on\s+completion\b` +
		`|prerequisites?\b|introduction\s*[-:.]?\s*$)`)

	// bulletPrefix matches one list marker: numbering, lettering, roman numerals or glyphs.
	bulletPrefix = regexp.MustCompile(`^(\(?\d+(\.\d+)*[.)]?|\(?[a-zA-Z][.)]|\(?(?i:i{1,3}|iv|vi{0,3}|ix|x)[.)]|[•●○◦▪■□‣∙·►▸➢✓\x{f0b7}\x{f0a7}*+–—-])\s+`)

	// fillerPrefix matches phrasing that adds nothing to a topic name.
	fillerPrefix = regexp.MustCompile(`(?i)^(introduction\s+to|basics\s+of|concepts?\s+of|overview\s+of|principles\s+of|fundamentals\s+of)\s+`)

	// conjunctionPrefix matches a leading "and"/"or" left over after splitting.
	conjunctionPrefix = regexp.MustCompile(`(?i)^(and|or)\s+`)
)

// stopPrefixes close a topic block. Compared against the lower-cased line.
var stopPrefixes = []string{
	"text books",
	"textbooks",
	"text book",
	"reference books",
	"references",
	"course outcomes",
	"credits",
	"suggested readings",
	"recommended books",
}

// SyllabusExtractor recovers candidate topic names from syllabus text.
// It is a pure function of its input and safe for concurrent use.
type SyllabusExtractor struct {
	maxTopics int
}

// NewSyllabusExtractor creates an extractor capped at MaxTopics.
func NewSyllabusExtractor() *SyllabusExtractor {
	return &SyllabusExtractor{maxTopics: MaxTopics}
}

// Extract runs the structured pass and, when that finds nothing,
// the fallback pass.
//
// A structured result with fewer than domain.MinConfidentTopics topics is
// kept but flagged LowConfidence. Text with no recoverable topics yields an
// *domain.ExtractionError.
func (e *SyllabusExtractor) Extract(text string) (domain.ExtractionResult, error) {
	text = normaliseText(text)
	if strings.TrimSpace(text) == "" {
		return domain.ExtractionResult{}, domain.NewExtractionError(domain.ExtractionNoText,
			"document contains no extractable text; it may be a scanned image", nil)
	}

	lines := strings.Split(text, "\n")

	structured := e.structuredPass(lines)
	logger.Debug("Structured pass found %d topics", len(structured))
	if len(structured) > 0 {
		return domain.ExtractionResult{
			Topics:        structured,
			Strategy:      domain.StrategyStructured,
			LowConfidence: len(structured) < domain.MinConfidentTopics,
		}, nil
	}

	loose := e.fallbackPass(lines)
	logger.Debug("Fallback pass found %d topics", len(loose))
	if len(loose) == 0 {
		return domain.ExtractionResult{}, domain.NewExtractionError(domain.ExtractionNoTopics,
			"no topic-like lines found; add topics manually", nil)
	}
	return domain.ExtractionResult{
		Topics:        loose,
		Strategy:      domain.StrategyFallback,
		LowConfidence: len(loose) < domain.MinConfidentTopics,
	}, nil
}

// structuredPass only accepts lines between a block marker and a stop marker.
func (e *SyllabusExtractor) structuredPass(lines []string) []string {
	topics := newTopicSet(e.maxTopics)
	inside := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			continue
		case blockMarker.MatchString(line):
			inside = true
			continue
		case isStopLine(line):
			inside = false
			continue
		case !inside:
			continue
		}
		if topics.addAll(candidatesFromLine(line)) {
			break
		}
	}
	return topics.list()
}

// fallbackPass accepts any plausible line regardless of block state.
// Marker and stop lines are structural and never become topics.
func (e *SyllabusExtractor) fallbackPass(lines []string) []string {
	topics := newTopicSet(e.maxTopics)
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		n := utf8.RuneCountInString(line)
		if n <= minLooseLineRunes || n >= maxLooseLineRunes {
			continue
		}
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "page") || blockMarker.MatchString(line) || isStopLine(line) {
			continue
		}
		if topics.addAll(candidatesFromLine(line)) {
			break
		}
	}
	return topics.list()
}

// candidatesFromLine filters, cleans and splits one line into topic names.
func candidatesFromLine(line string) []string {
	if utf8.RuneCountInString(line) < minLineRunes || pageNumber.MatchString(line) {
		return nil
	}
	stripped := stripBullets(line)
	if noiseLine.MatchString(stripped) {
		return nil
	}

	var out []string
	for _, part := range splitTopics(cleanTopic(stripped)) {
		part = conjunctionPrefix.ReplaceAllString(strings.TrimSpace(part), "")
		part = cleanTopic(part)
		if isTopicLike(part) {
			out = append(out, part)
		}
	}
	return out
}

// splitTopics splits on commas and semicolons outside parentheses and brackets.
func splitTopics(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ',', ';':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// stripBullets removes stacked list markers such as "1.2 a) ".
func stripBullets(s string) string {
	s = strings.TrimSpace(s)
	for {
		next := strings.TrimSpace(bulletPrefix.ReplaceAllString(s, ""))
		if next == s {
			return s
		}
		s = next
	}
}

// cleanTopic drops bullets, filler prefixes and trailing punctuation.
func cleanTopic(s string) string {
	s = stripBullets(s)
	s = strings.TrimSpace(fillerPrefix.ReplaceAllString(s, ""))
	return strings.TrimSpace(strings.TrimRight(s, ".:;,- \t"))
}

// isTopicLike is the final quality gate: a bounded length and at least one capital.
func isTopicLike(s string) bool {
	n := utf8.RuneCountInString(s)
	if n <= minTopicRunes || n > maxTopicRunes {
		return false
	}
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func isStopLine(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, prefix := range stopPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// normaliseText applies NFKC and unifies line endings.
func normaliseText(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// topicSet keeps first-seen order, drops exact duplicates and enforces a cap.
type topicSet struct {
	limit int
	seen  map[string]struct{}
	order []string
}

func newTopicSet(limit int) *topicSet {
	return &topicSet{limit: limit, seen: make(map[string]struct{})}
}

// addAll adds names until the cap is reached. Returns true once full.
func (s *topicSet) addAll(names []string) bool {
	for _, name := range names {
		if len(s.order) >= s.limit {
			return true
		}
		if _, ok := s.seen[name]; ok {
			continue
		}
		s.seen[name] = struct{}{}
		s.order = append(s.order, name)
	}
	return len(s.order) >= s.limit
}

func (s *topicSet) list() []string {
	return s.order
}
