package tui

import "errors"

// ErrMissingPlanService is returned when the plan service is not provided.
var ErrMissingPlanService = errors.New("tui: plan service is required")

// ErrMissingSubjectService is returned when the subject service is not provided.
var ErrMissingSubjectService = errors.New("tui: subject service is required")
