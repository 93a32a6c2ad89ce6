package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// uriScheme is the custom URI scheme for smartstudy resources.
const uriScheme = "smartstudy://"

// registerResources registers the subject resources when a subject service is present.
func (s *Server) registerResources() {
	if s.ports.Subjects == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "subjects",
		Name:        "subjects",
		Description: "All stored subjects ordered by exam date",
		MIMEType:    "application/json",
	}, s.handleSubjectsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "subjects/{subjectId}",
		Name:        "subject",
		Description: "A stored subject with its topics",
		MIMEType:    "application/json",
	}, s.handleSubjectResource)
}

type topicInfo struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Weightage float64 `json:"weightage"`
	Completed bool    `json:"completed"`
}

type subjectInfo struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Difficulty int         `json:"difficulty"`
	ExamDate   string      `json:"exam_date"`
	Topics     []topicInfo `json:"topics,omitempty"`
}

func newSubjectInfo(subject *domain.Subject, withTopics bool) subjectInfo {
	info := subjectInfo{
		ID:         subject.ID,
		Name:       subject.Name,
		Difficulty: subject.Difficulty,
		ExamDate:   subject.ExamDate.Format(domain.DateLayout),
	}
	if withTopics {
		info.Topics = make([]topicInfo, len(subject.Topics))
		for i, t := range subject.Topics {
			info.Topics[i] = topicInfo{ID: t.ID, Name: t.Name, Weightage: t.Weightage, Completed: t.Completed}
		}
	}
	return info
}

// handleSubjectsResource returns every stored subject without topics.
func (s *Server) handleSubjectsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	subjects, err := s.ports.Subjects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}

	infos := make([]subjectInfo, len(subjects))
	for i := range subjects {
		infos[i] = newSubjectInfo(&subjects[i], false)
	}

	return jsonResource(req.Params.URI, infos)
}

// handleSubjectResource returns one subject with its topics.
func (s *Server) handleSubjectResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// smartstudy://subjects/{subjectId}
	subjectID := extractSubjectID(req.Params.URI)
	if subjectID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	subject, err := s.ports.Subjects.Get(ctx, subjectID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting subject: %w", err)
	}

	return jsonResource(req.Params.URI, newSubjectInfo(subject, true))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractSubjectID extracts the subject ID from a URI like smartstudy://subjects/{subjectId}.
func extractSubjectID(uri string) string {
	const prefix = uriScheme + "subjects/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
