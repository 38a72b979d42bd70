package mcp

import (
	"github.com/custodia-labs/ansa-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ask answers questions and ranks passages.
	Ask driving.AskService

	// Corpus manages the corpus document set.
	Corpus driving.CorpusService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAskService
	}
	// Corpus is optional; document resources degrade without it
	return nil
}
