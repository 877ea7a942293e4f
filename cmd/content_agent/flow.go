package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/marketops/content-engine/internal/db"
	"github.com/marketops/content-engine/internal/llm"
	"github.com/marketops/content-engine/internal/pipeline"
	"github.com/marketops/content-engine/internal/schemas"
)

// newEngine builds a pipeline engine from environment configuration. The
// returned cleanup function closes the LLM client and database connection.
func newEngine(ctx context.Context, apiKeyFlag string) (*pipeline.Engine, func(), error) {
	llmConfig := llm.DefaultConfig()
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		llmConfig = &llm.Config{Provider: llm.Provider(provider), Model: llm.DefaultModel(llm.Provider(provider))}
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		llmConfig = llmConfig.WithModel(model)
	}

	apiKey := apiKeyFlag
	if apiKey == "" {
		apiKey = apiKeyForProvider(string(llmConfig.Provider))
	}
	if apiKey == "" {
		return nil, nil, fmt.Errorf("API key is required (set GEMINI_API_KEY or OPENAI_API_KEY, or use --api-key)")
	}

	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	var store pipeline.Store
	var database *db.DB
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		database, err = db.Connect(ctx, databaseURL)
		if err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		store = database
	}

	cleanup := func() {
		if database != nil {
			database.Close()
		}
		_ = client.Close()
	}
	return pipeline.New(client, store), cleanup, nil
}

// readRequestFile reads and decodes a JSON request file into target.
func readRequestFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse input JSON: %w", err)
	}
	return nil
}

// writeResponse marshals a flow response, validates it against its schema
// (warning only), and writes it to outPath or stdout.
func writeResponse(kind schemas.Kind, resp any, outPath string) error {
	jsonBytes, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := schemas.ValidateResponse(kind, jsonBytes); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: response does not validate against schema: %v\n", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate response against schema: %v\n", err)
		}
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outPath)
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
	return nil
}
