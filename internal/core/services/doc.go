// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The retrieval pipeline itself lives in internal/retrieval;
// services wire it to storage, generation, and feed adapters.
package services
