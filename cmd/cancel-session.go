package cmd

import (
	"fmt"

	"github.com/misterclayt0n/liftlog/internal/utils"
	"github.com/spf13/cobra"
)

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel-session",
	Short: "Cancel the current workout without saving any data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists(current.cfg.Session.Path) {
			return fmt.Errorf("No active session to cancel")
		}

		if err := current.clearSession(); err != nil {
			return err
		}

		fmt.Println("✅ Session cancelled successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelSessionCmd)
}
