package markdown

import (
	"context"
	"regexp"
	"strings"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
	"github.com/Nikhil-4404/ai-exam-planner/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

var (
	codeBlock     = regexp.MustCompile("(?s)```.*?```")
	inlineCode    = regexp.MustCompile("`([^`]+)`")
	images        = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	links         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headings      = regexp.MustCompile(`(?m)^[ \t]{0,3}#{1,6}[ \t]+`)
	emphasis      = regexp.MustCompile(`(\*\*|__|\*|_)(\S(.*?\S)?)(\*\*|__|\*|_)`)
	blockquote    = regexp.MustCompile(`(?m)^>[ \t]?`)
	horizontal    = regexp.MustCompile(`(?m)^[ \t]*([-*_][ \t]*){3,}$`)
	tableRule     = regexp.MustCompile(`(?m)^[ \t]*\|?[ \t]*:?-{3,}:?[ \t]*(\|[ \t]*:?-{3,}:?[ \t]*)*\|?[ \t]*$\n?`)
	tablePipes    = regexp.MustCompile(`[ \t]*\|[ \t]*`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// Normaliser handles Markdown syllabi.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// Normalise strips Markdown formatting. List markers are kept so the
// extractor can tell list items from prose.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	source := strings.ReplaceAll(string(raw.Content), "\r\n", "\n")
	title := firstHeading(source)
	content := stripMarkdown(source)

	return &driven.NormaliseResult{
		Document: normalisers.NewDocument(raw, title, content, "markdown"),
	}, nil
}

// firstHeading returns the text of the first H1, if any.
func firstHeading(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}
	return ""
}

// stripMarkdown removes Markdown syntax while keeping one line per block.
func stripMarkdown(content string) string {
	content = codeBlock.ReplaceAllString(content, "")
	content = images.ReplaceAllString(content, "")
	content = links.ReplaceAllString(content, "$1")
	content = inlineCode.ReplaceAllString(content, "$1")
	content = horizontal.ReplaceAllString(content, "")
	content = tableRule.ReplaceAllString(content, "")
	content = headings.ReplaceAllString(content, "")
	content = blockquote.ReplaceAllString(content, "")
	content = emphasis.ReplaceAllString(content, "$2")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.Contains(line, "|") {
			line = strings.Trim(tablePipes.ReplaceAllString(line, ", "), ", ")
		}
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")

	content = multiNewlines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
