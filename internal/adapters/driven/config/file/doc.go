// Package file provides the TOML-backed configuration store.
//
// Keys use dot notation ("planner.daily_hours"). On disk they are written
// as nested TOML tables and flattened again when loaded.
package file
