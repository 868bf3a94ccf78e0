package cmd

import (
	"fmt"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and load the default exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		// Opening the store runs the migrations.
		cat, err := current.Catalog(ctx)
		if err != nil {
			return err
		}

		seeded, err := cat.Seed(ctx)
		if err != nil {
			return fmt.Errorf("Failed to seed exercises: %w", err)
		}

		fmt.Printf("✅ Database initialized at %s\n", current.cfg.DB.ConnectionString)
		if seeded {
			fmt.Printf("✅ Loaded %d default exercises\n", len(catalog.Defaults()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
