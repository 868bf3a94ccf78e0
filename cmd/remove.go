package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [exercise-index]",
	Short: "Remove an exercise and its sets from the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := current.loadSession()
		if err != nil {
			return err
		}
		_, name, err := exerciseAt(s, args[0])
		if err != nil {
			return err
		}

		s.DeleteExercise(name)
		if err := current.saveSession(s); err != nil {
			return err
		}

		fmt.Printf("✅ Removed %s\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
