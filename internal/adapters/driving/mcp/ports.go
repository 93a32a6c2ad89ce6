package mcp

import (
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server uses.
type Ports struct {
	// Plans builds plans and countdowns from stored subjects.
	Plans driving.PlanService

	// Planner computes plans for subjects passed inline.
	Planner driving.Planner

	// Syllabus extracts candidate topics from text.
	Syllabus driving.SyllabusService

	// Subjects backs the subject resources. Optional.
	Subjects driving.SubjectService

	// Settings supplies the default daily hours. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	switch {
	case p.Plans == nil:
		return ErrMissingPlanService
	case p.Planner == nil:
		return ErrMissingPlanner
	case p.Syllabus == nil:
		return ErrMissingSyllabusService
	}
	return nil
}
