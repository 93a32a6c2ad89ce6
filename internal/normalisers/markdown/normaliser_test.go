package markdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestSupportedMIMETypes(t *testing.T) {
	mimeTypes := New().SupportedMIMETypes()

	assert.Equal(t, []string{"text/markdown", "text/x-markdown"}, mimeTypes)
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 50, New().Priority())
}

func TestNormalise_Success(t *testing.T) {
	raw := &domain.RawDocument{
		URI:      "/syllabi/compilers.md",
		MIMEType: "text/markdown",
		Content:  []byte("# Compiler Design\r\n\r\n## Unit 1: Lexing\r\n- **Regular** expressions\r\n- [Automata](http://x)\r\n"),
	}

	result, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)
	require.NotNil(t, result)

	doc := result.Document
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, raw.URI, doc.URI)
	assert.Equal(t, "Compiler Design", doc.Title)
	assert.Equal(t, "Compiler Design\n\nUnit 1: Lexing\n- Regular expressions\n- Automata", doc.Content)
	assert.Equal(t, "text/markdown", doc.Metadata["mime_type"])
	assert.Equal(t, "markdown", doc.Metadata["format"])
}

func TestNormalise_TitleFallsBackToFilename(t *testing.T) {
	raw := &domain.RawDocument{URI: "/x/operating_systems.md", MIMEType: "text/markdown", Content: []byte("Unit 1")}

	result, err := New().Normalise(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, "operating systems", result.Document.Title)
}

func TestNormalise_NilDocument(t *testing.T) {
	result, err := New().Normalise(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"code block", "Before\n```go\nfunc main() {}\n```\nAfter", "Before\n\nAfter"},
		{"inline code", "Use `malloc` carefully", "Use malloc carefully"},
		{"image", "![diagram](d.png)Trees", "Trees"},
		{"blockquote", "> Quoted Topic", "Quoted Topic"},
		{"horizontal rule", "Above\n---\nBelow", "Above\n\nBelow"},
		{"emphasis", "*Graphs* and __Trees__", "Graphs and Trees"},
		{"snake case survives", "Use page_table entries", "Use page_table entries"},
		{"table", "| Unit | Topics |\n|---|---|\n| 1 | Sorting |", "Unit, Topics\n1, Sorting"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripMarkdown(tt.in))
		})
	}
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Normaliser = (*Normaliser)(nil)
}
