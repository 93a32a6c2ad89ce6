package html

import (
	"bytes"
	"context"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
	"github.com/Nikhil-4404/ai-exam-planner/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// skipped elements contribute no text.
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Head:     true,
	atom.Svg:      true,
	atom.Template: true,
}

// blocks start and end on their own line.
var blocks = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Hr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Li: true, atom.Ul: true, atom.Ol: true, atom.Tr: true, atom.Table: true,
	atom.Blockquote: true, atom.Pre: true, atom.Section: true, atom.Article: true,
	atom.Header: true, atom.Footer: true, atom.Main: true, atom.Nav: true, atom.Dt: true, atom.Dd: true,
}

// Normaliser handles HTML syllabi.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// Normalise strips markup and returns the readable text.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	title, content := extractText(raw.Content)

	return &driven.NormaliseResult{
		Document: normalisers.NewDocument(raw, title, content, "html"),
	}, nil
}

// stripHTML returns only the readable text of an HTML fragment.
func stripHTML(content string) string {
	_, text := extractText([]byte(content))
	return text
}

// extractText walks the token stream once, collecting the <title> and body text.
func extractText(content []byte) (title, text string) {
	z := xhtml.NewTokenizer(bytes.NewReader(content))

	var (
		out       textBuilder
		titleText strings.Builder
		skipDepth int
		inTitle   bool
		cellCount int
	)

	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			// io.EOF or malformed input: keep whatever was recovered.
			return cleanTitle(titleText.String()), out.String()

		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if a == atom.Title {
				inTitle = tt == xhtml.StartTagToken
				continue
			}
			if a == atom.Body {
				// An unclosed <head> ends where the body starts.
				skipDepth = 0
			}
			if skipped[a] && tt == xhtml.StartTagToken {
				skipDepth++
				continue
			}
			switch {
			case a == atom.Tr:
				cellCount = 0
				out.newline()
			case a == atom.Td || a == atom.Th:
				if cellCount > 0 {
					out.write(", ")
				}
				cellCount++
			case blocks[a]:
				out.newline()
			}

		case xhtml.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if a == atom.Title {
				inTitle = false
				continue
			}
			if skipped[a] {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if blocks[a] {
				out.newline()
			}

		case xhtml.TextToken:
			raw := string(z.Text())
			if inTitle {
				titleText.WriteString(raw)
				continue
			}
			if skipDepth > 0 {
				continue
			}
			out.write(raw)
		}
	}
}

func cleanTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// textBuilder collapses whitespace within lines and drops empty lines.
type textBuilder struct {
	lines   []string
	current strings.Builder
}

func (b *textBuilder) write(s string) {
	b.current.WriteString(s)
}

func (b *textBuilder) newline() {
	line := strings.Join(strings.Fields(b.current.String()), " ")
	b.current.Reset()
	if line != "" {
		b.lines = append(b.lines, line)
	}
}

func (b *textBuilder) String() string {
	b.newline()
	return strings.Join(b.lines, "\n")
}
