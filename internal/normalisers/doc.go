// Package normalisers provides implementations of the Normaliser interface
// for the syllabus formats students actually receive. Each normaliser knows
// how to recover plain text from a specific MIME type, keeping one logical
// line per output line so block markers survive.
//
// Normalisers are registered with the NormaliserRegistry at startup.
package normalisers
