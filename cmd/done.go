package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	restText string
	noTimer  bool
)

var doneCmd = &cobra.Command{
	Use:   "done [exercise-index] [set-index]",
	Short: "Mark a set done (or not done) and start its rest timer",
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

		if cmd.Flags().Changed("rest") && !s.SetRestDuration(set.ID, restText) {
			fmt.Println("Rest time can't change while the set is done")
		}
		s.ToggleSelection(name, set.ID)

		if err := current.saveSession(s); err != nil {
			return err
		}

		if !s.IsSelected(set.ID) {
			fmt.Printf("↩️  Set %d of %s marked not done\n", idx+1, name)
			return nil
		}
		fmt.Printf("✅ Set %d of %s done\n", idx+1, name)

		active, _ := s.ActiveTimer()
		if active != set.ID {
			return nil
		}
		fmt.Printf("⏱️  %s\n", restSummary(s, active))
		if noTimer {
			return nil
		}
		return watchRest(cmd.Context(), s)
	},
}

func init() {
	doneCmd.Flags().StringVar(&restText, "rest", "", "Rest time as mmss digits, e.g. 0130")
	doneCmd.Flags().BoolVar(&noTimer, "no-timer", false, "Don't show the countdown")
	doneCmd.Flags().BoolVar(&plainRest, "plain", false, "Print the countdown as plain text")
	rootCmd.AddCommand(doneCmd)
}
