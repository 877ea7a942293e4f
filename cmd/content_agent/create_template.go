package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marketops/content-engine/internal/schemas"
	"github.com/marketops/content-engine/internal/types"
)

var createTemplateCmd = &cobra.Command{
	Use:   "create-template",
	Short: "Generate an email template from a request file",
	Long:  "Generate an email template (subject, HTML body, plain-text body, personalization variables) from a JSON request file describing the email type and content brief.",
	RunE:  runCreateTemplate,
}

var (
	templateInputFile  string
	templateOutputFile string
	templateAPIKey     string
)

func init() {
	createTemplateCmd.Flags().StringVarP(&templateInputFile, "in", "i", "", "Path to JSON request file (required)")
	createTemplateCmd.Flags().StringVarP(&templateOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	createTemplateCmd.Flags().StringVar(&templateAPIKey, "api-key", "", "Provider API key (overrides environment)")
	_ = createTemplateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(createTemplateCmd)
}

func runCreateTemplate(_ *cobra.Command, _ []string) error {
	var req types.CreateTemplateRequest
	if err := readRequestFile(templateInputFile, &req); err != nil {
		return err
	}

	ctx := context.Background()
	engine, cleanup, err := newEngine(ctx, templateAPIKey)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := engine.CreateTemplate(ctx, &req)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}

	return writeResponse(schemas.KindTemplate, resp, templateOutputFile)
}
