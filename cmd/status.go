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

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show total weight lifted, workout count, gym hours, week streak and sets per body part (current week)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := current.Store(ctx)
		if err != nil {
			return err
		}
		workouts, err := st.AllWorkouts(ctx)
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}
		cat, err := current.Catalog(ctx)
		if err != nil {
			return err
		}
		known, err := cat.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to retrieve exercises: %w", err)
		}
		bodyParts := make(map[string]string, len(known))
		for _, ex := range known {
			bodyParts[ex.Name] = ex.BodyPart
		}

		sum := summarize(workouts, bodyParts, time.Now())

		printBoxedHeader("STATUS")
		printMetric("Total weight lifted", fmt.Sprintf("%d kg", sum.volume))
		printMetric("Total workouts", len(workouts))
		printMetric("Total time at gym", sum.duration.Round(time.Minute))
		printMetric("Week streak", fmt.Sprintf("%d weeks", sum.weekStreak))
		fmt.Println()

		header := color.New(color.FgGreen, color.Bold).Sprintf("Sets per body part (current week):")
		fmt.Println(header)
		var parts []string
		for p := range sum.setsThisWeek {
			parts = append(parts, p)
		}
		sort.Strings(parts)
		for _, p := range parts {
			fmt.Printf("  • %s: %d sets\n", color.New(color.FgMagenta, color.Bold).Sprint(p), sum.setsThisWeek[p])
		}
		fmt.Println()

		return nil
	},
}

type summary struct {
	volume       int
	duration     time.Duration
	weekStreak   int
	setsThisWeek map[string]int
}

func summarize(workouts []models.Workout, bodyParts map[string]string, now time.Time) summary {
	sum := summary{setsThisWeek: make(map[string]int)}
	currentYear, currentWeek := now.ISOWeek()
	dates := make([]time.Time, 0, len(workouts))

	for _, w := range workouts {
		sum.volume += w.Volume()
		sum.duration += parseWorkoutDuration(w.Duration)
		dates = append(dates, w.Date)

		year, week := w.Date.In(now.Location()).ISOWeek()
		if year != currentYear || week != currentWeek {
			continue
		}
		for _, ex := range w.Exercises {
			part := bodyParts[ex.Name]
			if part == "" {
				part = "Other"
			}
			sum.setsThisWeek[part] += len(ex.Sets)
		}
	}
	sum.weekStreak = computeWeekStreak(dates, now)
	return sum
}

// parseWorkoutDuration reads the "mm:ss" duration stored on a workout.
// Anything else counts as zero.
func parseWorkoutDuration(s string) time.Duration {
	mins, secs, ok := strings.Cut(s, ":")
	if !ok {
		return 0
	}
	m, err1 := strconv.Atoi(mins)
	sec, err2 := strconv.Atoi(secs)
	if err1 != nil || err2 != nil || m < 0 || sec < 0 {
		return 0
	}
	return time.Duration(m)*time.Minute + time.Duration(sec)*time.Second
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText2(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText2(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

// computeWeekStreak computes how many consecutive ISO weeks (ending with the
// week of now) have at least one workout.
func computeWeekStreak(dates []time.Time, now time.Time) int {
	weekSet := make(map[string]bool)
	for _, d := range dates {
		year, week := d.In(now.Location()).ISOWeek()
		weekSet[fmt.Sprintf("%d-%02d", year, week)] = true
	}

	streak := 0
	year, week := now.ISOWeek()
	for weekSet[fmt.Sprintf("%d-%02d", year, week)] {
		streak++
		now = now.AddDate(0, 0, -7)
		year, week = now.ISOWeek()
	}
	return streak
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
