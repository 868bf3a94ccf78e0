package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/storage"
	"github.com/spf13/cobra"
)

var dateStr string

var lookSessionCmd = &cobra.Command{
	Use:   "look [workout-id]",
	Short: "Display a saved workout by its ID, or every workout of a day using --date",
	// Allow 0 or 1 argument.
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := current.Store(ctx)
		if err != nil {
			return err
		}

		if dateStr != "" {
			day, err := parseDay(dateStr)
			if err != nil {
				return err
			}
			workouts, err := st.WorkoutsBetween(ctx, day, day.AddDate(0, 0, 1))
			if err != nil {
				return fmt.Errorf("Failed to retrieve workouts for %s: %w", day.Format("2006-01-02"), err)
			}
			if len(workouts) == 0 {
				fmt.Println(color.MagentaString("No workouts found on that date."))
				return nil
			}
			for i := len(workouts) - 1; i >= 0; i-- {
				printWorkout(workouts[i])
			}
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("Please provide a workout ID or use the --date flag")
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("Invalid workout id %q", args[0])
		}
		w, err := st.Workout(ctx, id)
		if errors.Is(err, storage.ErrWorkoutNotFound) {
			return fmt.Errorf("No workout with id %d", id)
		}
		if err != nil {
			return fmt.Errorf("Failed to retrieve workout: %w", err)
		}
		printWorkout(*w)
		return nil
	},
}

func printWorkout(w models.Workout) {
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()
	magenta := color.New(color.FgMagenta).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Println(boldGreen(w.Name))
	fmt.Printf("  %s: %d\n", cyan("Workout ID"), w.ID)
	fmt.Printf("  %s: %s\n", blue("Date"), w.Date.In(time.Local).Format(time.RFC1123))
	fmt.Printf("  %s: %s\n", red("Duration"), w.Duration)
	if w.Note != "" {
		fmt.Printf("  %s: %s\n", magenta("Notes"), w.Note)
	}
	fmt.Println(strings.Repeat("=", 50))

	if len(w.Exercises) == 0 {
		fmt.Println(magenta("No exercises found in this workout."))
		return
	}
	for i, ex := range w.Exercises {
		fmt.Printf("%s %d. %s\n", boldGreen("Exercise"), i+1, ex.Name)
		if ex.Note != "" {
			fmt.Printf("   %s: %s\n", magenta("Notes"), ex.Note)
		}
		fmt.Printf("      %-4s | %-8s | %-5s | %-3s\n", "Set", "Kg", "Reps", "RIR")
		fmt.Println("      " + strings.Repeat("─", 30))
		for j, set := range ex.Sets {
			fmt.Printf("      %-4d | %-8d | %-5d | %-3d\n", j+1, set.Kg, set.Reps, set.RIR)
		}
		fmt.Println()
	}
}

func init() {
	rootCmd.AddCommand(lookSessionCmd)
	lookSessionCmd.Flags().StringVarP(&dateStr, "date", "d", "", "Show every workout of a day (YYYY-MM-DD or DD/MM/YY)")
}
