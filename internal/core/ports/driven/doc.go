// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - SubjectStore: Subject and topic persistence (SQLite, memory)
//   - ConfigStore: Application configuration (TOML, memory)
//   - Normaliser: Turns syllabus bytes of one format into plain text
//   - NormaliserRegistry: Selects the appropriate normaliser
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
