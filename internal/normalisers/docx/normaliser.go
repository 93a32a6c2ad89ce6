package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
	"github.com/Nikhil-4404/ai-exam-planner/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// MIMEType is the Office Open XML word-processing type.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Package parts read by the normaliser.
const (
	partDocument = "word/document.xml"
	partCore     = "docProps/core.xml"
)

// maxPartSize bounds how much of a single XML part is decompressed.
const maxPartSize = 32 << 20

// Normaliser handles DOCX syllabi.
type Normaliser struct{}

// New creates a new DOCX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{MIMEType}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser
}

// Normalise extracts paragraph text from word/document.xml.
// Each paragraph, including those inside table cells, becomes one line.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	reader, err := zip.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a DOCX archive: %v", domain.ErrInvalidInput, err)
	}

	var content string
	if part, err := readPart(reader, partDocument); err != nil {
		return nil, err
	} else if part != nil {
		if content, err = paragraphText(part); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, partDocument, err)
		}
	}

	return &driven.NormaliseResult{
		Document: normalisers.NewDocument(raw, coreTitle(reader), content, "docx"),
	}, nil
}

// readPart returns the bytes of a named part, or nil if it is absent.
func readPart(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %v", domain.ErrInvalidInput, name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(io.LimitReader(rc, maxPartSize))
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", domain.ErrInvalidInput, name, err)
		}
		return data, nil
	}
	return nil, nil
}

// paragraphText streams the document XML collecting <w:t> runs.
// <w:tab/> becomes a space and <w:br/> a line break.
func paragraphText(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		lines   []string
		current strings.Builder
		inText  bool
	)
	flush := func() {
		if line := strings.TrimSpace(current.String()); line != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				current.WriteByte(' ')
			case "br", "cr":
				flush()
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				flush()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	flush()
	return strings.Join(lines, "\n"), nil
}

// coreXML represents the parts of docProps/core.xml we read.
type coreXML struct {
	Title string `xml:"title"`
}

// coreTitle returns the document title property, if set.
func coreTitle(reader *zip.Reader) string {
	data, err := readPart(reader, partCore)
	if err != nil || data == nil {
		return ""
	}
	var core coreXML
	if err := xml.Unmarshal(data, &core); err != nil {
		return ""
	}
	return strings.TrimSpace(core.Title)
}
