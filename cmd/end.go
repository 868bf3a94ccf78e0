package cmd

import (
	"fmt"

	"github.com/misterclayt0n/liftlog/internal/session"
	"github.com/spf13/cobra"
)

var (
	workoutName string
	workoutNote string
	confirmEnd  bool
)

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "Save the current workout and end the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := current.loadSession()
		if err != nil {
			return err
		}
		if !s.IsFullyDone() && !confirmEnd {
			return fmt.Errorf("Not every set is marked done, use --yes to save anyway")
		}

		st, err := current.Store(ctx)
		if err != nil {
			return err
		}

		name := workoutName
		if name == "" {
			workouts, err := st.AllWorkouts(ctx)
			if err != nil {
				return fmt.Errorf("Failed to load workouts: %w", err)
			}
			name = session.NextWorkoutName(workouts)
		}

		// On failure the session file is left alone so nothing is lost.
		w, err := s.Finish(ctx, st, name, workoutNote)
		if err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		if err := current.clearSession(); err != nil {
			return err
		}

		fmt.Printf("✅ Saved '%s' (id %d): %d sets in %s\n", w.Name, w.ID, w.SetCount(), w.Duration)
		return nil
	},
}

func init() {
	endSessionCmd.Flags().StringVarP(&workoutName, "name", "n", "", "Workout name (defaults to the next 'Workout N')")
	endSessionCmd.Flags().StringVar(&workoutNote, "note", "", "Note for the whole workout")
	endSessionCmd.Flags().BoolVarP(&confirmEnd, "yes", "y", false, "Save even if some sets are not done")
	rootCmd.AddCommand(endSessionCmd)
}
