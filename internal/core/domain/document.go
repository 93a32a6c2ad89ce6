package domain

import "time"

// Document is a syllabus after normalisation: plain text plus a title.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the original location (file path, upload name).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the full text recovered from the source format.
	Content string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was normalised.
	CreatedAt time.Time
}
