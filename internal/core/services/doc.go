// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The planner and the syllabus extractor are pure: they hold no state
// between calls, perform no I/O, and may be used concurrently with
// independent inputs.
package services
