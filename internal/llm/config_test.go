package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-1.5-flash", config.Model)
	assert.Equal(t, "text-embedding-004", config.EmbeddingModel)
	assert.Empty(t, config.BaseURL)
}

func TestConfigFor(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
		model    string
		baseURL  string
	}{
		{name: "gemini", provider: ProviderGemini, model: "gemini-1.5-flash"},
		{name: "openai", provider: ProviderOpenAI, model: "gpt-4o-mini"},
		{name: "ollama", provider: ProviderOllama, model: "llama3.1", baseURL: "http://localhost:11434/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := ConfigFor(tt.provider)
			assert.Equal(t, tt.provider, config.Provider)
			assert.Equal(t, tt.model, config.Model)
			assert.Equal(t, tt.baseURL, config.BaseURL)
		})
	}
}

func TestConfigFor_UnknownProvider(t *testing.T) {
	config := ConfigFor(Provider("mystery"))
	assert.Equal(t, ProviderGemini, config.Provider)
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel("custom-model")

	// Original is unchanged.
	assert.Equal(t, "gemini-1.5-flash", config.Model)
	assert.Equal(t, "custom-model", newConfig.Model)

	// Empty override keeps the existing model.
	assert.Equal(t, "gemini-1.5-flash", config.WithModel("").Model)
}
