package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Nikhil-4404/ai-exam-planner/internal/core/domain"
)

// ComputePlanInput is the input schema for the compute_plan tool.
type ComputePlanInput struct {
	DailyHours *float64       `json:"daily_hours,omitempty" jsonschema:"study hours available today, above 0 and at most 24 (default from settings)"`
	Subjects   []SubjectInput `json:"subjects,omitempty" jsonschema:"subjects to plan for; stored subjects are used when omitted"`
}

// SubjectInput describes a subject passed inline to compute_plan.
type SubjectInput struct {
	Name       string       `json:"name" jsonschema:"subject name"`
	Difficulty int          `json:"difficulty" jsonschema:"difficulty from 0 to 10"`
	ExamDate   string       `json:"exam_date" jsonschema:"exam date as YYYY-MM-DD"`
	Topics     []TopicInput `json:"topics" jsonschema:"topics of the subject"`
}

// TopicInput describes a topic passed inline to compute_plan.
type TopicInput struct {
	Name      string  `json:"name" jsonschema:"topic name"`
	Weightage float64 `json:"weightage,omitempty" jsonschema:"relative importance (default 1)"`
	Completed bool    `json:"completed,omitempty" jsonschema:"completed topics are not scheduled"`
}

// ComputePlanOutput is the output schema for the compute_plan tool.
type ComputePlanOutput struct {
	Entries    []PlanEntryOutput `json:"entries"`
	TotalHours float64           `json:"total_hours"`
	DailyHours float64           `json:"daily_hours"`
}

// PlanEntryOutput is one line of the plan.
type PlanEntryOutput struct {
	Subject        string  `json:"subject"`
	Topic          string  `json:"topic"`
	TopicID        string  `json:"topic_id,omitempty"`
	AllocatedHours float64 `json:"allocated_hours"`
	UrgencyScore   float64 `json:"urgency_score"`
	ExamDate       string  `json:"exam_date"`
	Reason         string  `json:"reason"`
}

// ExtractTopicsInput is the input schema for the extract_topics tool.
type ExtractTopicsInput struct {
	Text string `json:"text" jsonschema:"syllabus text to scan for topics"`
}

// ExtractTopicsOutput is the output schema for the extract_topics tool.
type ExtractTopicsOutput struct {
	Topics        []string `json:"topics"`
	Strategy      string   `json:"strategy"`
	LowConfidence bool     `json:"low_confidence"`
}

// ListExamsInput is the (empty) input schema for the list_exams tool.
type ListExamsInput struct{}

// ListExamsOutput is the output schema for the list_exams tool.
type ListExamsOutput struct {
	Exams []ExamOutput `json:"exams"`
}

// ExamOutput is one exam countdown.
type ExamOutput struct {
	SubjectID string `json:"subject_id"`
	Subject   string `json:"subject"`
	ExamDate  string `json:"exam_date"`
	DaysLeft  int    `json:"days_left"`
	Band      string `json:"band"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "compute_plan",
		Description: "Allocate today's study hours across pending topics by urgency",
	}, s.handleComputePlan)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_topics",
		Description: "Extract candidate study topics from syllabus text",
	}, s.handleExtractTopics)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_exams",
		Description: "List stored exams with days remaining",
	}, s.handleListExams)
}

// handleComputePlan handles the compute_plan tool invocation.
func (s *Server) handleComputePlan(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ComputePlanInput,
) (*mcp.CallToolResult, ComputePlanOutput, error) {
	hours, err := s.dailyHours(input.DailyHours)
	if err != nil {
		return nil, ComputePlanOutput{}, err
	}

	var plan []domain.PlanEntry
	if len(input.Subjects) > 0 {
		subjects, err := toSubjects(input.Subjects)
		if err != nil {
			return nil, ComputePlanOutput{}, err
		}
		plan, err = s.ports.Planner.ComputePlan(subjects, hours)
		if err != nil {
			return nil, ComputePlanOutput{}, err
		}
	} else {
		plan, err = s.ports.Plans.Generate(ctx, hours)
		if err != nil {
			return nil, ComputePlanOutput{}, err
		}
	}

	entries := make([]PlanEntryOutput, len(plan))
	for i := range plan {
		entries[i] = PlanEntryOutput{
			Subject:        plan[i].Subject,
			Topic:          plan[i].Topic,
			TopicID:        plan[i].TopicID,
			AllocatedHours: plan[i].AllocatedHours,
			UrgencyScore:   plan[i].UrgencyScore,
			ExamDate:       plan[i].ExamDate.Format(domain.DateLayout),
			Reason:         plan[i].Reason.String(),
		}
	}

	return nil, ComputePlanOutput{
		Entries:    entries,
		TotalHours: domain.TotalHours(plan),
		DailyHours: hours,
	}, nil
}

// handleExtractTopics handles the extract_topics tool invocation.
func (s *Server) handleExtractTopics(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractTopicsInput,
) (*mcp.CallToolResult, ExtractTopicsOutput, error) {
	result, err := s.ports.Syllabus.ExtractText(ctx, input.Text)
	if err != nil {
		return nil, ExtractTopicsOutput{}, err
	}

	return nil, ExtractTopicsOutput{
		Topics:        result.Topics,
		Strategy:      string(result.Strategy),
		LowConfidence: result.LowConfidence,
	}, nil
}

// handleListExams handles the list_exams tool invocation.
func (s *Server) handleListExams(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListExamsInput,
) (*mcp.CallToolResult, ListExamsOutput, error) {
	countdowns, err := s.ports.Plans.Countdowns(ctx)
	if err != nil {
		return nil, ListExamsOutput{}, err
	}
	exams := make([]ExamOutput, len(countdowns))
	for i := range countdowns {
		exams[i] = ExamOutput{
			SubjectID: countdowns[i].SubjectID,
			Subject:   countdowns[i].Subject,
			ExamDate:  countdowns[i].ExamDate.Format(domain.DateLayout),
			DaysLeft:  countdowns[i].DaysLeft,
			Band:      string(countdowns[i].Band),
		}
	}
	return nil, ListExamsOutput{Exams: exams}, nil
}

// dailyHours returns the requested budget, or the configured default when
// none was given.
func (s *Server) dailyHours(requested *float64) (float64, error) {
	if requested != nil {
		return *requested, domain.ValidateDailyHours(*requested)
	}
	if s.ports.Settings == nil {
		return domain.DefaultDailyHours, nil
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return 0, fmt.Errorf("getting settings: %w", err)
	}
	return settings.Planner.DailyHours, nil
}

func toSubjects(inputs []SubjectInput) ([]domain.Subject, error) {
	subjects := make([]domain.Subject, 0, len(inputs))
	for _, in := range inputs {
		examDate, err := domain.ParseDate(in.ExamDate)
		if err != nil {
			return nil, fmt.Errorf("subject %q: %w", in.Name, err)
		}

		topics := make([]domain.Topic, 0, len(in.Topics))
		for _, t := range in.Topics {
			topic, err := domain.NewTopic(t.Name, t.Weightage)
			if err != nil {
				return nil, fmt.Errorf("subject %q: %w", in.Name, err)
			}
			topic.Completed = t.Completed
			topics = append(topics, topic)
		}

		subjects = append(subjects, domain.Subject{
			Name:       in.Name,
			Difficulty: in.Difficulty,
			ExamDate:   examDate,
			Topics:     topics,
		})
	}
	return subjects, nil
}
