// Package domain defines the core business entities for Ansa.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A corpus document supplied by the operator
//   - Passage: A scoring unit produced by chunking a document
//   - Answer: The outcome of a question, generated or extractive
//   - FeedItem: A normalised RSS/Atom entry before import
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
