// Package domain defines the core entities for samplelist.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Sample: A short name paired with a catalog dataset identifier
//   - Registry: The ordered, merged set of samples driving a dump
//   - FileRecord: One file entry returned by the catalog
//   - Run: Bookkeeping for one dump invocation
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
