// Package sqlite provides a SQLite-based implementation of the run history
// store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files. Two tables are kept: runs (one row per dump) and run_samples (one
// row per sample written, ordered by position).
//
// # Data Location
//
// By default, the database is stored at ~/.samplelist/data/history.db
package sqlite
