package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// longOutputMaxTokens is the completion budget for full-document
// generations (whole resume, cover letter).
const longOutputMaxTokens = 4000

// OpenAIClient implements Client for OpenAI-compatible APIs. With a
// custom BaseURL it also serves local models (Ollama exposes the same
// surface).
type OpenAIClient struct {
	client *openai.Client
	config *Config
}

// NewOpenAIClient creates a client for an OpenAI-compatible backend.
// The API key may be empty only for local backends.
func NewOpenAIClient(config *Config, apiKey string) (*OpenAIClient, error) {
	if apiKey == "" && config.Provider != ProviderOllama {
		return nil, fmt.Errorf("API key is required for the %s backend", config.Provider)
	}
	if apiKey == "" {
		apiKey = "ollama" // the local server ignores the key but the SDK requires one
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// GenerateContent generates free-form text.
func (c *OpenAIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, prompt, false, false)
}

// GenerateJSON generates a JSON payload using JSON-mode completion.
func (c *OpenAIClient) GenerateJSON(ctx context.Context, prompt string, longOutput bool) (string, error) {
	text, err := c.complete(ctx, prompt, true, longOutput)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

func (c *OpenAIClient) complete(ctx context.Context, prompt string, jsonMode, longOutput bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	if longOutput {
		req.MaxTokens = longOutputMaxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}

// Embed returns embedding vectors for the given texts.
func (c *OpenAIClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: texts,
		Model: openai.EmbeddingModel(c.config.EmbeddingModel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to embed contents: %w", err)
	}

	vectors := make([][]float32, 0, len(resp.Data))
	for _, item := range resp.Data {
		vectors = append(vectors, item.Embedding)
	}
	return vectors, nil
}

// Close releases resources held by the client.
func (c *OpenAIClient) Close() error { return nil }
