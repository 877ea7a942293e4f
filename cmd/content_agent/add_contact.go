package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marketops/content-engine/internal/db"
	"github.com/marketops/content-engine/internal/pipeline"
	"github.com/marketops/content-engine/internal/schemas"
	"github.com/marketops/content-engine/internal/types"
)

var addContactCmd = &cobra.Command{
	Use:   "add-contact",
	Short: "Register an email contact from a request file",
	Long:  "Register an email contact from a JSON request file. No generation call is involved; the contact is assigned an ID and persisted when a database is configured.",
	RunE:  runAddContact,
}

var (
	contactInputFile  string
	contactOutputFile string
)

func init() {
	addContactCmd.Flags().StringVarP(&contactInputFile, "in", "i", "", "Path to JSON request file (required)")
	addContactCmd.Flags().StringVarP(&contactOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = addContactCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(addContactCmd)
}

func runAddContact(_ *cobra.Command, _ []string) error {
	var req types.AddContactRequest
	if err := readRequestFile(contactInputFile, &req); err != nil {
		return err
	}

	ctx := context.Background()

	// Contact registration never calls the generation provider.
	var store pipeline.Store
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		store = database
	}

	resp, err := pipeline.New(nil, store).AddContact(ctx, &req)
	if err != nil {
		return fmt.Errorf("failed to add contact: %w", err)
	}

	return writeResponse(schemas.KindContact, resp, contactOutputFile)
}
