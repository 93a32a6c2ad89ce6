package services

import (
	"context"
	"fmt"
	"mime"
	"sort"
	"strings"
	"sync"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driven"
)

// Ensure NormaliserRegistry implements the interface.
var _ driven.NormaliserRegistry = (*NormaliserRegistry)(nil)

// fallbackTextMIME handles any text/* type without a dedicated normaliser.
const fallbackTextMIME = "text/plain"

// NormaliserRegistry dispatches documents to the highest-priority
// normaliser registered for their MIME type.
type NormaliserRegistry struct {
	mu          sync.RWMutex
	normalisers []driven.Normaliser
}

// NewNormaliserRegistry creates a registry pre-loaded with normalisers.
func NewNormaliserRegistry(normalisers ...driven.Normaliser) *NormaliserRegistry {
	r := &NormaliserRegistry{}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Register adds a normaliser. Higher priorities are tried first.
func (r *NormaliserRegistry) Register(normaliser driven.Normaliser) {
	if normaliser == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.normalisers = append(r.normalisers, normaliser)
	sort.SliceStable(r.normalisers, func(i, j int) bool {
		return r.normalisers[i].Priority() > r.normalisers[j].Priority()
	})
}

// Normalise transforms raw using the best matching normaliser.
// Returns domain.ErrUnsupportedType when nothing handles the MIME type.
func (r *NormaliserRegistry) Normalise(ctx context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}
	mimeType := baseMIMEType(raw.MIMEType)

	n := r.find(mimeType)
	if n == nil && strings.HasPrefix(mimeType, "text/") {
		n = r.find(fallbackTextMIME)
	}
	if n == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, raw.MIMEType)
	}
	return n.Normalise(ctx, raw)
}

// SupportedMIMETypes returns every MIME type with a registered normaliser, sorted.
func (r *NormaliserRegistry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var types []string
	for _, n := range r.normalisers {
		for _, t := range n.SupportedMIMETypes() {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			types = append(types, t)
		}
	}
	sort.Strings(types)
	return types
}

func (r *NormaliserRegistry) find(mimeType string) driven.Normaliser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.normalisers {
		for _, t := range n.SupportedMIMETypes() {
			if t == mimeType {
				return n
			}
		}
	}
	return nil
}

// baseMIMEType strips parameters such as "; charset=utf-8".
func baseMIMEType(mimeType string) string {
	if parsed, _, err := mime.ParseMediaType(mimeType); err == nil {
		return parsed
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
