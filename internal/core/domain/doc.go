// Package domain defines the core business entities for SmartStudy.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Subject: An examinable subject with difficulty and exam date
//   - Topic: A unit of study owned by exactly one Subject
//   - PlanEntry: One line of today's study plan
//   - ExtractionResult: Candidate topics recovered from a syllabus
//   - RawDocument: Opaque syllabus bytes before normalisation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
