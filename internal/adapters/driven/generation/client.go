// Package generation provides a client for a remote answer endpoint.
//
// The endpoint speaks the same contract the HTTP API serves: POST a
// JSON body of {question, contexts} and receive {answer, used}. This
// lets one machine's ask pipeline consume another machine's answer
// service instead of holding an LLM key locally.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
	"github.com/custodia-labs/ansa-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.GenerationService = (*Client)(nil)

// DefaultTimeout is the request timeout when none is configured.
const DefaultTimeout = 60 * time.Second

// maxResponseBytes caps how much of an answer response is read.
const maxResponseBytes = 1 << 20

// Config holds configuration for the remote answer client.
type Config struct {
	// URL is the answer endpoint (required).
	URL string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// Client calls a remote answer endpoint.
type Client struct {
	client *http.Client
	url    string
}

// answerRequest is the wire format sent to the endpoint.
type answerRequest struct {
	Question string               `json:"question"`
	Contexts []domain.ContextItem `json:"contexts"`
}

// NewClient creates a new remote answer client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("generation: endpoint URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		url: cfg.URL,
	}, nil
}

// Answer sends the question and contexts to the endpoint and decodes
// the generated answer. All failures wrap ErrGenerationFailed so the
// caller can fall back to the extractive path.
func (c *Client) Answer(ctx context.Context, question string, contexts []domain.ContextItem) (*domain.GenerationResult, error) {
	body, err := json.Marshal(answerRequest{
		Question: question,
		Contexts: contexts,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", domain.ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrGenerationFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: endpoint returned status %d", domain.ErrGenerationFailed, resp.StatusCode)
	}

	var result domain.GenerationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrGenerationFailed, err)
	}

	// An endpoint that omits "used" is assumed to have accepted
	// everything it was offered.
	if result.Used == nil {
		result.Used = contexts
	}

	return &result, nil
}
