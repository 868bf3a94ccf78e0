package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	setKg   int
	setReps int
	setRIR  int
)

var editSetCmd = &cobra.Command{
	Use:   "edit-set [exercise-index] [set-index]",
	Short: "Edit a set in the current session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := current.loadSession()
		if err != nil {
			return err
		}
		_, name, err := exerciseAt(s, args[0])
		if err != nil {
			return err
		}
		idx, set, err := setAt(s, name, args[1])
		if err != nil {
			return err
		}

		// Only the flags given replace the current values.
		kg, reps, rir := set.Kg, set.Reps, set.RIR
		if cmd.Flags().Changed("kg") {
			kg = setKg
		}
		if cmd.Flags().Changed("reps") {
			reps = setReps
		}
		if cmd.Flags().Changed("rir") {
			rir = setRIR
		}
		s.UpdateSet(name, idx, kg, reps, rir)

		if err := current.saveSession(s); err != nil {
			return err
		}

		updated := s.Sets(name)[idx]
		fmt.Printf("✅ Set updated: %dkg × %d @ %d RIR\n", updated.Kg, updated.Reps, updated.RIR)
		return nil
	},
}

func init() {
	editSetCmd.Flags().IntVarP(&setKg, "kg", "k", 0, "Weight in kg")
	editSetCmd.Flags().IntVarP(&setReps, "reps", "r", 0, "Reps performed")
	editSetCmd.Flags().IntVar(&setRIR, "rir", 0, "Reps in reserve")
	editSetCmd.MarkFlagsOneRequired("kg", "reps", "rir")

	rootCmd.AddCommand(editSetCmd)
}
