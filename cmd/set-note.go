package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var noteText string

var setNoteCmd = &cobra.Command{
	Use:   "set-note [exercise-index]",
	Short: "Set a note for a specific exercise in the current session",
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

		s.SetNote(name, noteText)

		if err := current.saveSession(s); err != nil {
			return err
		}

		fmt.Println("✅ Note set successfully")
		return nil
	},
}

func init() {
	setNoteCmd.Flags().StringVarP(&noteText, "note", "n", "", "Note text to set for the exercise")
	setNoteCmd.MarkFlagRequired("note")
	rootCmd.AddCommand(setNoteCmd)
}
