package cmd

import (
	"fmt"
	"strings"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [exercise-name...]",
	Short: "Add catalog exercises to the current session",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := current.loadSession()
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
		st, err := current.Store(ctx)
		if err != nil {
			return err
		}

		for _, arg := range args {
			name, ok := catalogName(known, arg)
			if !ok {
				return fmt.Errorf("Exercise %q not found, create it with 'liftlog add-exercise'", arg)
			}
			if !s.AddExercise(name) {
				fmt.Printf("%s is already in the session\n", name)
				continue
			}
			if err := s.InitializeExercise(ctx, name, st); err != nil {
				return fmt.Errorf("Failed to load history for %s: %w", name, err)
			}
			fmt.Printf("✅ Added %s with %d sets\n", name, len(s.Sets(name)))
		}

		return current.saveSession(s)
	},
}

// catalogName returns the catalog spelling of name.
func catalogName(known []models.Exercise, name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, ex := range known {
		if strings.EqualFold(ex.Name, name) {
			return ex.Name, true
		}
	}
	return "", false
}

func init() {
	rootCmd.AddCommand(addCmd)
}
