package domain

const unknownDescription = "Unknown"

// GenerationMode selects how answers are produced.
type GenerationMode string

// Available generation modes.
const (
	// GenerationOff disables generation entirely; every answer comes
	// from the extractive path.
	GenerationOff GenerationMode = "off"

	// GenerationLLM uses the built-in answer service over a
	// completion backend.
	GenerationLLM GenerationMode = "llm"

	// GenerationRemote posts {question, contexts} to a remote answer
	// endpoint.
	GenerationRemote GenerationMode = "remote"
)

// IsValid returns true if the generation mode is recognised.
func (m GenerationMode) IsValid() bool {
	switch m {
	case GenerationOff, GenerationLLM, GenerationRemote:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m GenerationMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m GenerationMode) Description() string {
	switch m {
	case GenerationOff:
		return "Off (extractive answers only)"
	case GenerationLLM:
		return "LLM (built-in answer service)"
	case GenerationRemote:
		return "Remote (external answer endpoint)"
	default:
		return unknownDescription
	}
}

// ChunkSettings holds passage chunking configuration.
type ChunkSettings struct {
	// MaxLen is the passage length target in runes.
	MaxLen int

	// Overlap is the number of trailing runes carried between passages.
	Overlap int
}

// BudgetSettings holds context budgeting configuration.
type BudgetSettings struct {
	// ItemChars truncates each context item's text to this many runes.
	ItemChars int

	// TotalBytes is the ceiling on the summed serialized context size.
	TotalBytes int
}

// AskSettings holds question answering configuration.
type AskSettings struct {
	// TopK is how many ranked passages are offered to the budgeter.
	TopK int
}

// GenerationSettings holds generation backend configuration.
type GenerationSettings struct {
	// Mode selects the generation path.
	Mode GenerationMode

	// Model is the completion model name (llm mode).
	Model string

	// BaseURL is the completion API endpoint (llm mode).
	BaseURL string

	// URL is the remote answer endpoint (remote mode).
	URL string

	// TimeoutSecs bounds one generation request.
	TimeoutSecs int
}

// IsConfigured returns true if the selected mode has what it needs.
func (g GenerationSettings) IsConfigured() bool {
	switch g.Mode {
	case GenerationLLM:
		return g.BaseURL != ""
	case GenerationRemote:
		return g.URL != ""
	default:
		return false
	}
}

// ServerSettings holds the HTTP daemon configuration.
type ServerSettings struct {
	// Addr is the listen address for serve mode.
	Addr string
}

// FeedSettings holds feed import configuration.
type FeedSettings struct {
	// URLs are feeds imported by "import" with no arguments.
	URLs []string

	// TimeoutSecs bounds one feed fetch.
	TimeoutSecs int
}

// Settings holds all application settings.
type Settings struct {
	// Chunk holds passage chunking settings.
	Chunk ChunkSettings

	// Budget holds context budgeting settings.
	Budget BudgetSettings

	// Ask holds question answering settings.
	Ask AskSettings

	// Generation holds generation backend settings.
	Generation GenerationSettings

	// Server holds HTTP daemon settings.
	Server ServerSettings

	// Feed holds feed import settings.
	Feed FeedSettings
}

// DefaultSettings returns settings with sensible defaults.
// Generation is off by default; users enable it explicitly once a
// backend is available.
func DefaultSettings() Settings {
	return Settings{
		Chunk: ChunkSettings{
			MaxLen:  420,
			Overlap: 60,
		},
		Budget: BudgetSettings{
			ItemChars:  1500,
			TotalBytes: 8000,
		},
		Ask: AskSettings{
			TopK: 6,
		},
		Generation: GenerationSettings{
			Mode:        GenerationOff,
			Model:       "gpt-4o-mini",
			TimeoutSecs: 60,
		},
		Server: ServerSettings{
			Addr: "127.0.0.1:8745",
		},
		Feed: FeedSettings{
			TimeoutSecs: 30,
		},
	}
}

// AllGenerationModes returns all available generation modes.
func AllGenerationModes() []GenerationMode {
	return []GenerationMode{
		GenerationOff,
		GenerationLLM,
		GenerationRemote,
	}
}
