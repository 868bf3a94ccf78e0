package cmd

import (
	"fmt"

	"github.com/misterclayt0n/liftlog/internal/config"
	"github.com/misterclayt0n/liftlog/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export all the database data to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		var outputFile string
		if len(args) == 1 {
			outputFile = args[0]
		} else {
			dir, err := config.GetConfigDir()
			if err != nil {
				return err
			}
			outputFile = storage.DefaultExportPath(dir)
		}

		st, err := current.Store(ctx)
		if err != nil {
			return err
		}
		if err := st.Export(ctx, outputFile); err != nil {
			return fmt.Errorf("error exporting database: %w", err)
		}

		fmt.Printf("✅ Database exported successfully to %s\n", outputFile)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:     "import [dump-file]",
	Aliases: []string{"build-db"},
	Short:   "Replace the database contents with the given TOML dump file",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := current.Store(ctx)
		if err != nil {
			return err
		}
		if err := st.Import(ctx, args[0]); err != nil {
			return fmt.Errorf("Failed to build database: %w", err)
		}
		fmt.Println("✅ Database built successfully from TOML dump.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
