// Package memory provides in-memory implementations of the driven ports.
// They back service tests and ephemeral sessions; nothing is persisted.
package memory
