package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marketops/content-engine/internal/schemas"
	"github.com/marketops/content-engine/internal/types"
)

var createContentCmd = &cobra.Command{
	Use:   "create-content",
	Short: "Generate a structured content document from a request file",
	Long:  "Generate a scored content document (title, body, call to action, tags) from a JSON request file describing the topic, audience, and platform.",
	RunE:  runCreateContent,
}

var (
	contentInputFile  string
	contentOutputFile string
	contentAPIKey     string
)

func init() {
	createContentCmd.Flags().StringVarP(&contentInputFile, "in", "i", "", "Path to JSON request file (required)")
	createContentCmd.Flags().StringVarP(&contentOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	createContentCmd.Flags().StringVar(&contentAPIKey, "api-key", "", "Provider API key (overrides environment)")
	_ = createContentCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(createContentCmd)
}

func runCreateContent(_ *cobra.Command, _ []string) error {
	var req types.CreateContentRequest
	if err := readRequestFile(contentInputFile, &req); err != nil {
		return err
	}

	ctx := context.Background()
	engine, cleanup, err := newEngine(ctx, contentAPIKey)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := engine.CreateContent(ctx, &req)
	if err != nil {
		return fmt.Errorf("failed to create content: %w", err)
	}

	return writeResponse(schemas.KindContent, resp, contentOutputFile)
}
