package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marketops/content-engine/internal/schemas"
	"github.com/marketops/content-engine/internal/types"
)

var optimizePostCmd = &cobra.Command{
	Use:   "optimize-post",
	Short: "Optimize a social post for its target platform",
	Long:  "Optimize a draft social post from a JSON request file, enforcing the target platform's character limit, and schedule it for the requested time.",
	RunE:  runOptimizePost,
}

var (
	postInputFile  string
	postOutputFile string
	postAPIKey     string
)

func init() {
	optimizePostCmd.Flags().StringVarP(&postInputFile, "in", "i", "", "Path to JSON request file (required)")
	optimizePostCmd.Flags().StringVarP(&postOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	optimizePostCmd.Flags().StringVar(&postAPIKey, "api-key", "", "Provider API key (overrides environment)")
	_ = optimizePostCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(optimizePostCmd)
}

func runOptimizePost(_ *cobra.Command, _ []string) error {
	var req types.OptimizePostRequest
	if err := readRequestFile(postInputFile, &req); err != nil {
		return err
	}

	ctx := context.Background()
	engine, cleanup, err := newEngine(ctx, postAPIKey)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := engine.OptimizePost(ctx, &req)
	if err != nil {
		return fmt.Errorf("failed to optimize post: %w", err)
	}

	return writeResponse(schemas.KindPost, resp, postOutputFile)
}
