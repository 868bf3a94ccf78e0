package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	limitSessions int
	historyOnly   bool
)

var showExCmd = &cobra.Command{
	Use:   "show-ex [exercise-name]",
	Short: "Display detailed information and training history for a particular exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cat, err := current.Catalog(ctx)
		if err != nil {
			return err
		}
		known, err := cat.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to get exercise: %w", err)
		}
		name, ok := catalogName(known, args[0])
		if !ok {
			// Exercises can outlive their catalog entry, keep looking in history.
			name = strings.TrimSpace(args[0])
		}

		st, err := current.Store(ctx)
		if err != nil {
			return err
		}
		workouts, err := st.AllWorkouts(ctx)
		if err != nil {
			return fmt.Errorf("failed to retrieve workout history: %w", err)
		}
		performed := workoutsWith(workouts, name)

		// Define color functions.
		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		blue := color.New(color.FgBlue).SprintFunc()

		if !historyOnly {
			bodyPart, err := cat.BodyPartOf(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to get exercise: %w", err)
			}
			previous, err := st.ExerciseHistory(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to get previous stats: %w", err)
			}

			fmt.Println(boldGreen("Exercise Information:"))
			fmt.Printf("  %s: %s\n", boldCyan("Name"), name)
			if bodyPart != "" {
				fmt.Printf("  %s: %s\n", boldCyan("Body Part"), bodyPart)
			}
			if best, ok := bestSet(performed, name); ok {
				fmt.Printf("  %s: %dkg × %d (%s: %.1fkg)\n",
					boldCyan("All-time PR"),
					best.Kg, best.Reps,
					yellow("Calculated 1RM"), utils.CalculateEpley1RM(best.Kg, best.Reps))
			}
			if len(previous) > 0 {
				parts := make([]string, len(previous))
				for i, p := range previous {
					parts[i] = formatSet(p.Kg, p.Reps, p.RIR)
				}
				fmt.Printf("  %s: %s\n", boldCyan("Last time"), strings.Join(parts, ", "))
			}
			fmt.Println()
		}

		fmt.Printf("%s %s:\n", boldGreen("History for"), name)
		if len(performed) == 0 {
			fmt.Println(magenta("  No workouts found."))
			return nil
		}
		if limitSessions > 0 && len(performed) > limitSessions {
			performed = performed[:limitSessions]
		}
		for i, w := range performed {
			fmt.Printf("\n%s %d. %s (#%d)\n", boldGreen("Workout"), i+1, w.Name, w.ID)
			fmt.Printf("   %s: %s\n", blue("Date"), w.Date.In(time.Local).Format(time.RFC1123))
			for _, ex := range w.Exercises {
				if ex.Name != name {
					continue
				}
				if ex.Note != "" {
					fmt.Printf("   %s: %s\n", magenta("Notes"), ex.Note)
				}
				fmt.Printf("      %-4s | %-8s | %-5s | %-3s\n", "Set", "Kg", "Reps", "RIR")
				fmt.Println("      " + strings.Repeat("─", 30))
				for j, set := range ex.Sets {
					fmt.Printf("      %-4d | %-8d | %-5d | %-3d\n", j+1, set.Kg, set.Reps, set.RIR)
				}
			}
		}

		return nil
	},
}

// workoutsWith keeps the workouts that include the named exercise.
func workoutsWith(workouts []models.Workout, name string) []models.Workout {
	var out []models.Workout
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if ex.Name == name {
				out = append(out, w)
				break
			}
		}
	}
	return out
}

// bestSet returns the set of name with the highest estimated 1RM.
func bestSet(workouts []models.Workout, name string) (models.Set, bool) {
	var best models.Set
	found := false
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if ex.Name != name {
				continue
			}
			for _, set := range ex.Sets {
				if !found || utils.CalculateEpley1RM(set.Kg, set.Reps) > utils.CalculateEpley1RM(best.Kg, best.Reps) {
					best = set
					found = true
				}
			}
		}
	}
	return best, found
}

func init() {
	rootCmd.AddCommand(showExCmd)
	showExCmd.Flags().IntVarP(&limitSessions, "limit", "l", 5, "Number of workouts to display")
	showExCmd.Flags().BoolVarP(&historyOnly, "history-only", "H", false, "Display only history without exercise details")
}
