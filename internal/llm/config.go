// Package llm provides the generation backend abstraction and the
// structured extractor built on top of it.
package llm

// Provider identifies a generation backend. The set is closed: a
// provider is selected once at construction and never branched on
// downstream.
type Provider string

const (
	// ProviderGemini is the Google generative-model backend.
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI-compatible backend.
	ProviderOpenAI Provider = "openai"
	// ProviderOllama is a local model served through an OpenAI-compatible API.
	ProviderOllama Provider = "ollama"
)

// Config holds the backend selection and model names for one client.
type Config struct {
	Provider       Provider
	Model          string
	EmbeddingModel string
	// BaseURL overrides the API endpoint; used for local models.
	BaseURL string
}

// DefaultConfig returns the default backend configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:       ProviderGemini,
		Model:          "gemini-1.5-flash",
		EmbeddingModel: "text-embedding-004",
	}
}

// ConfigFor returns the default configuration for a provider.
func ConfigFor(provider Provider) *Config {
	switch provider {
	case ProviderOpenAI:
		return &Config{
			Provider:       ProviderOpenAI,
			Model:          "gpt-4o-mini",
			EmbeddingModel: "text-embedding-3-small",
		}
	case ProviderOllama:
		return &Config{
			Provider:       ProviderOllama,
			Model:          "llama3.1",
			EmbeddingModel: "bge-m3",
			BaseURL:        "http://localhost:11434/v1",
		}
	default:
		return DefaultConfig()
	}
}

// WithModel returns a copy of the config using the given model name.
func (c *Config) WithModel(model string) *Config {
	out := *c
	if model != "" {
		out.Model = model
	}
	return &out
}
