// Package mcp provides an MCP (Model Context Protocol) server adapter for smartstudy.
// It lets AI assistants compute study plans, extract syllabus topics and
// read stored subjects.
package mcp

import "errors"

// Errors returned when a required port is missing.
var (
	ErrMissingPlanService     = errors.New("mcp: plan service is required")
	ErrMissingPlanner         = errors.New("mcp: planner is required")
	ErrMissingSyllabusService = errors.New("mcp: syllabus service is required")
)
