package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	newSetKg   int
	newSetReps int
	newSetRIR  int
)

var addSetCmd = &cobra.Command{
	Use:   "add-set [exercise-index]",
	Short: "Add a new set to an exercise in the current session",
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

		if _, ok := s.AddSet(name); !ok {
			return fmt.Errorf("Exercise '%s' has no sets yet", name)
		}
		idx := len(s.Sets(name)) - 1
		if cmd.Flags().Changed("kg") || cmd.Flags().Changed("reps") || cmd.Flags().Changed("rir") {
			s.UpdateSet(name, idx, newSetKg, newSetReps, newSetRIR)
		}

		if err := current.saveSession(s); err != nil {
			return err
		}

		fmt.Printf("✅ Added set %d to exercise '%s'\n", idx+1, name)
		return nil
	},
}

func init() {
	addSetCmd.Flags().IntVarP(&newSetKg, "kg", "k", 0, "Weight in kg for the new set")
	addSetCmd.Flags().IntVarP(&newSetReps, "reps", "r", 0, "Number of reps for the new set")
	addSetCmd.Flags().IntVar(&newSetRIR, "rir", 0, "Reps in reserve for the new set")
	rootCmd.AddCommand(addSetCmd)
}
