package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	// Planner and subject operations reject such input before any computation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown document or normaliser type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrExtractionFailed indicates no topics could be recovered from a syllabus.
	// Every *ExtractionError matches it via errors.Is.
	ErrExtractionFailed = errors.New("extraction failed")
)
