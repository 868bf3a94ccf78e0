package cmd

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/liftlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	fromWorkout  string
	forceRestart bool
)

var startCmd = &cobra.Command{
	Use:   "start-session",
	Short: "Starts a new workout, empty or as a redo of a past one",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if utils.SessionExists(current.cfg.Session.Path) && !forceRestart {
			return fmt.Errorf("A session is already active, finish it or use --force")
		}

		s := current.newSession()
		if fromWorkout == "" {
			s.StartWorkout(nil, nil)
		} else {
			id, err := strconv.ParseInt(fromWorkout, 10, 64)
			if err != nil {
				return fmt.Errorf("Invalid workout id %q", fromWorkout)
			}
			st, err := current.Store(ctx)
			if err != nil {
				return err
			}
			w, err := st.Workout(ctx, id)
			if err != nil {
				return fmt.Errorf("Failed to load workout: %w", err)
			}
			s.StartFrom(*w)
		}

		if err := current.saveSession(s); err != nil {
			return err
		}

		if fromWorkout != "" {
			fmt.Printf("✅ Started session from workout %s (%d exercises)\n", fromWorkout, len(s.Exercises()))
		} else {
			fmt.Println("✅ Started session")
		}
		return nil
	},
}

func init() {
	// Registers the command as a subcommand of rootCmd.
	rootCmd.AddCommand(startCmd)

	// Define flags.
	startCmd.Flags().StringVarP(&fromWorkout, "from", "f", "", "Redo the workout with this id")
	startCmd.Flags().BoolVar(&forceRestart, "force", false, "Discard the active session")
}
