// Package domain defines the core business entities for plantsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: A searchable plant or environment from the dashboard dataset
//   - ScoredResult: A Record annotated with a score and its matches
//   - Resolution: The outcome of resolving an item ID to a page
//   - AppSettings: User configuration
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
