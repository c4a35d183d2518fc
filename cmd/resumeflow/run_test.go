package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := newClient(context.Background(), mergedClientConfig("gemini", "", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestNewClientOllamaNeedsNoKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	client, err := newClient(context.Background(), mergedClientConfig("ollama", "", ""))
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}

func TestNewClientEnvFallback(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	client, err := newClient(context.Background(), mergedClientConfig("openai", "gpt-4o", ""))
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}
