// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentStore: Corpus document persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - GenerationService: Turns selected passages into prose. Without it,
//     answers come from the extractive fallback.
//   - LLMClient: Raw completion backend used by the built-in generation
//     service. Without it, the same fallback applies.
//   - FeedFetcher: RSS/Atom retrieval. Without it, feed import is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
