package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marketops/content-engine/internal/config"
	"github.com/marketops/content-engine/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the content generation endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	fileCfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		fileCfg = loaded
	}

	merged := fileCfg.MergeWithDefaults(config.Config{
		Port:        servePort,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Provider:    os.Getenv("LLM_PROVIDER"),
		Model:       os.Getenv("LLM_MODEL"),
	})

	if merged.APIKey == "" {
		merged.APIKey = apiKeyForProvider(merged.Provider)
	}
	if merged.APIKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY or OPENAI_API_KEY)")
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:        merged.Port,
		DatabaseURL: merged.DatabaseURL,
		APIKey:      merged.APIKey,
		Provider:    merged.Provider,
		Model:       merged.Model,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// apiKeyForProvider reads the provider-specific API key from the environment.
func apiKeyForProvider(provider string) string {
	if provider == "openai" {
		return os.Getenv("OPENAI_API_KEY")
	}
	return os.Getenv("GEMINI_API_KEY")
}
