package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var swapExerciseCmd = &cobra.Command{
	Use:   "swap [exercise-index] [new-exercise-name]",
	Short: "Swap an exercise in the current session with another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := current.loadSession()
		if err != nil {
			return err
		}
		idx, _, err := exerciseAt(s, args[0])
		if err != nil {
			return err
		}

		cat, err := current.Catalog(ctx)
		if err != nil {
			return err
		}
		known, err := cat.List(ctx)
		if err != nil {
			return fmt.Errorf("Failed to load exercises: %w", err)
		}
		newName, ok := catalogName(known, args[1])
		if !ok {
			return fmt.Errorf("Failed to find exercise %s", args[1])
		}
		for _, name := range s.Exercises() {
			if name == newName {
				return fmt.Errorf("%s is already in the session", newName)
			}
		}

		st, err := current.Store(ctx)
		if err != nil {
			return err
		}
		old, err := s.SwapExercise(ctx, idx, newName, st)
		if err != nil {
			return fmt.Errorf("Failed to get previous sets for new exercise: %w", err)
		}

		if err := current.saveSession(s); err != nil {
			return err
		}

		fmt.Printf("✅ Swapped %s to %s\n", old, newName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swapExerciseCmd)
}
