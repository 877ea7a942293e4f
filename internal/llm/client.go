// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between providers without touching the
// generation flows.
package llm

import (
	"context"
)

// Request carries a composed instruction and the generation parameters for a
// single upstream call.
type Request struct {
	// System is the fixed system-role instruction.
	System string
	// Prompt is the user instruction composed from the request fields.
	Prompt string
	// Temperature controls sampling randomness.
	Temperature float32
	// MaxTokens is the output token ceiling; zero means provider default.
	MaxTokens int32
}

// Client is an abstraction over LLM providers
type Client interface {
	// Generate produces raw generated text for the given instruction.
	// Transport and upstream-service failures are returned as *GenerationError.
	Generate(ctx context.Context, req Request) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderOpenAI:
		return NewOpenAIClient(config, apiKey)
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}
