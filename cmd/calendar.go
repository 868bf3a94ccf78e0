package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/spf13/cobra"
)

// details is a flag to enable verbose workout details.
var details bool

// calendarCmd prints the calendar grid. Days with workouts are coloured by
// the body part trained the most that day, with a legend below.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of training days coloured by main body part",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		nextMonth := firstOfMonth.AddDate(0, 1, 0)
		lastDay := nextMonth.AddDate(0, 0, -1).Day()

		st, err := current.Store(ctx)
		if err != nil {
			return err
		}
		workouts, err := st.WorkoutsBetween(ctx, firstOfMonth, nextMonth)
		if err != nil {
			return fmt.Errorf("failed to get workouts: %w", err)
		}
		cat, err := current.Catalog(ctx)
		if err != nil {
			return err
		}
		known, err := cat.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to get exercises: %w", err)
		}
		bodyParts := make(map[string]string, len(known))
		for _, ex := range known {
			bodyParts[ex.Name] = ex.BodyPart
		}

		workoutsByDay := make(map[int][]models.Workout)
		for _, w := range workouts {
			day := w.Date.In(time.Local).Day()
			workoutsByDay[day] = append(workoutsByDay[day], w)
		}
		dayParts := make(map[int]string, len(workoutsByDay))
		var legend []string
		for day, list := range workoutsByDay {
			part := mainBodyPart(list, bodyParts)
			dayParts[day] = part
			if !containsString(legend, part) {
				legend = append(legend, part)
			}
		}
		sort.Strings(legend)

		colorPalette := []color.Attribute{
			color.FgRed, color.FgGreen, color.FgYellow,
			color.FgBlue, color.FgMagenta, color.FgCyan,
		}
		partColors := make(map[string]func(a ...interface{}) string)
		for i, part := range legend {
			partColors[part] = color.New(colorPalette[i%len(colorPalette)]).SprintFunc()
		}

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastDay; day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if part, ok := dayParts[day]; ok {
				dayStr = partColors[part](dayStr + "*")
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		if len(legend) > 0 {
			fmt.Println("Legend:")
			for _, part := range legend {
				fmt.Printf("  %s: %s\n", partColors[part]("██"), part)
			}
		}

		if details {
			fmt.Println("\nWorkout Details:")
			var days []int
			for d := range workoutsByDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				list := workoutsByDay[day]
				for i := len(list) - 1; i >= 0; i-- {
					w := list[i]
					fmt.Printf("  #%d %s at %s (%s)\n", w.ID, w.Name, w.Date.In(time.Local).Format("15:04"), w.Duration)
				}
			}
		}

		return nil
	},
}

// mainBodyPart returns the body part with the most sets across workouts.
// Ties go to the alphabetically first one. Exercises missing from the
// catalog count as "Other".
func mainBodyPart(workouts []models.Workout, bodyParts map[string]string) string {
	counts := make(map[string]int)
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			part := bodyParts[ex.Name]
			if part == "" {
				part = "Other"
			}
			counts[part] += len(ex.Sets)
		}
	}
	best, bestCount := "Other", -1
	for part, n := range counts {
		if n > bestCount || (n == bestCount && part < best) {
			best, bestCount = part, n
		}
	}
	return best
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print additional workout details")
}
