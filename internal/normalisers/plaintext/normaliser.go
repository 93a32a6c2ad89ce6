package plaintext

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
	"github.com/Nikhil-4404/ai-exam-planner/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Byte order marks.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Normaliser handles plain text syllabi.
// It is also the fallback for any text/* type without a dedicated normaliser.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{
		"text/plain",
		"text/csv",
		"text/tab-separated-values",
	}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise decodes the raw bytes as text.
// UTF-16 input is detected by its byte order mark; invalid UTF-8 is replaced.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content, err := decode(raw.Content)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", raw.URI, err)
	}

	return &driven.NormaliseResult{
		Document: normalisers.NewDocument(raw, "", content, "text"),
	}, nil
}

// decode converts raw bytes to a UTF-8 string.
func decode(b []byte) (string, error) {
	switch {
	case bytes.HasPrefix(b, bomUTF16LE), bytes.HasPrefix(b, bomUTF16BE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, err := dec.Bytes(b)
		if err != nil {
			return "", err
		}
		return string(out), nil
	case bytes.HasPrefix(b, bomUTF8):
		b = b[len(bomUTF8):]
	}
	return strings.ToValidUTF8(string(b), "�"), nil
}
