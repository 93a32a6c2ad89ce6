package normalisers

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// NewDocument builds the normalised form of raw.
// An empty title falls back to the metadata title, then to the file name.
func NewDocument(raw *domain.RawDocument, title, content, format string) domain.Document {
	if strings.TrimSpace(title) == "" {
		title = TitleFor(raw)
	}
	metadata := CopyMetadata(raw.Metadata)
	if metadata == nil {
		metadata = make(map[string]any)
	}
	metadata["mime_type"] = raw.MIMEType
	if format != "" {
		metadata["format"] = format
	}
	return domain.Document{
		ID:        uuid.New().String(),
		URI:       raw.URI,
		Title:     strings.TrimSpace(title),
		Content:   content,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}
}

// TitleFor prefers Metadata["title"] and falls back to the URI.
func TitleFor(raw *domain.RawDocument) string {
	if title, ok := raw.Metadata["title"].(string); ok && strings.TrimSpace(title) != "" {
		return title
	}
	return TitleFromURI(raw.URI)
}

// TitleFromURI turns "/syllabi/data_structures-2026.pdf" into "data structures 2026".
func TitleFromURI(uri string) string {
	if uri == "" {
		return ""
	}
	name := filepath.Base(uri)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.NewReplacer("_", " ", "-", " ").Replace(name)
}

// CopyMetadata creates a shallow copy of metadata.
func CopyMetadata(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
