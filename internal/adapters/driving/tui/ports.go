// Package tui provides the interactive plan dashboard for smartstudy.
// It is a driving adapter built on Bubbletea.
package tui

import (
	"github.com/Nikhil-4404/ai-exam-planner/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Plans computes the plan and exam countdowns.
	Plans driving.PlanService

	// Subjects stores topic completion.
	Subjects driving.SubjectService

	// Settings supplies the starting daily hours. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Plans == nil {
		return ErrMissingPlanService
	}
	if p.Subjects == nil {
		return ErrMissingSubjectService
	}
	return nil
}
