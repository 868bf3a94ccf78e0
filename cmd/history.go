package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	filterDay    string
	historyLimit int
)

// historyCmd lists saved workouts grouped by day, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display saved workouts, optionally filtered by day",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := current.Store(ctx)
		if err != nil {
			return err
		}

		var workouts []models.Workout
		if filterDay != "" {
			day, err := parseDay(filterDay)
			if err != nil {
				return err
			}
			workouts, err = st.WorkoutsBetween(ctx, day, day.AddDate(0, 0, 1))
			if err != nil {
				return fmt.Errorf("failed to retrieve workouts: %w", err)
			}
		} else {
			workouts, err = st.AllWorkouts(ctx)
			if err != nil {
				return fmt.Errorf("failed to retrieve workouts: %w", err)
			}
		}
		if historyLimit > 0 && len(workouts) > historyLimit {
			workouts = workouts[:historyLimit]
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		var lastDay time.Time
		for _, w := range workouts {
			if lastDay.IsZero() || !utils.SameDay(lastDay, w.Date) {
				fmt.Printf("%s\n", boldGreen(w.Date.In(time.Local).Format("Mon, 02 Jan 2006")))
				lastDay = w.Date
			}
			fmt.Printf("  #%d %s | Start: %s | Duration: %s | %d sets | %d kg\n",
				w.ID,
				w.Name,
				w.Date.In(time.Local).Format("15:04"),
				w.Duration,
				w.SetCount(),
				w.Volume(),
			)
		}
		return nil
	},
}

// parseDay accepts 2025-02-07 or 07/02/25 and returns local midnight.
func parseDay(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "02/01/06"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse day %q, use YYYY-MM-DD or DD/MM/YY", s)
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 0, "Only show the latest N workouts")
}
