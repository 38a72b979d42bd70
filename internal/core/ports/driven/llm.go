package driven

import "context"

// LLMClient provides raw text completion for the built-in generation
// service. This is an optional service - when nil, answering degrades
// gracefully to the extractive path.
//
// Implementations may include:
//   - OpenAI chat completions
//   - Ollama or LM Studio via their OpenAI-compatible endpoints
type LLMClient interface {
	// Complete produces a completion for the prompt.
	Complete(ctx context.Context, prompt string, opts CompleteOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the backend is reachable with a lightweight
	// request. On-demand health check only; whether generation is on
	// is decided by configuration, not reachability.
	Ping(ctx context.Context) error
}

// CompleteOptions configures text generation behaviour.
type CompleteOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}
