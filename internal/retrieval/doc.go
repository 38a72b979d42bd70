// Package retrieval implements the local retrieval engine: the
// tokenizer, chunker, term-statistics index, TF-IDF scorer, context
// budgeter, and the extractive fallback summariser.
//
// Everything here is a pure computation over immutable inputs. The
// package performs no I/O, starts no goroutines, and holds no shared
// state: an Index is immutable once built, so any number of queries
// may score against it concurrently without coordination. When the
// document set changes the caller rebuilds from scratch via
// BuildPassages and BuildIndex.
//
// # Import Rules
//
//   - Can Import: Standard library, internal/core/domain
//   - Cannot Import: ports, services, adapters
package retrieval
