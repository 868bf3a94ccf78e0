package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/misterclayt0n/liftlog/internal/storage"
	"github.com/misterclayt0n/liftlog/internal/utils"
	"github.com/spf13/cobra"
)

var deleteWorkoutCmd = &cobra.Command{
	Use:   "delete-workout [workout-id]",
	Short: "Delete a saved workout with all its exercises and sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("Invalid workout id %q", args[0])
		}

		st, err := current.Store(ctx)
		if err != nil {
			return err
		}
		if err := st.DeleteWorkout(ctx, id); err != nil {
			if errors.Is(err, storage.ErrWorkoutNotFound) {
				return fmt.Errorf("No workout with id %d", id)
			}
			return fmt.Errorf("Failed to delete workout: %w", err)
		}
		fmt.Printf("✅ Workout %d deleted successfully\n", id)

		// A session redoing this workout goes with it.
		if !utils.SessionExists(current.cfg.Session.Path) {
			return nil
		}
		s, err := current.loadSession()
		if err != nil {
			return err
		}
		if s.WorkoutDeleted(id) {
			if err := current.clearSession(); err != nil {
				return err
			}
			fmt.Println("Active session was a redo of that workout and was discarded")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteWorkoutCmd)
}
