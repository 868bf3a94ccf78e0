package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/session"
	"github.com/misterclayt0n/liftlog/internal/timer"
	"github.com/misterclayt0n/liftlog/internal/utils"
	"github.com/spf13/cobra"
)

const tableIndent = "   "

// Set, Current, Prev Session, Done, Rest.
var setColWidths = []int{6, 18, 18, 6, 12}

var showSessionCmd = &cobra.Command{
	Use:   "show-session",
	Short: "Show current session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := current.loadSession()
		if err != nil {
			return err
		}
		st, err := current.Store(ctx)
		if err != nil {
			return err
		}

		// Define color functions.
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()

		fmt.Printf("%s %s\n", red("Duration:"), utils.FormatElapsed(s.Elapsed()))
		if id := s.Source(); id != 0 {
			fmt.Printf("%s workout %d\n", cyan("Redo of:"), id)
		}
		if active, since := s.ActiveTimer(); active != "" {
			left := s.RestDuration(active) - time.Since(since)
			fmt.Printf("%s %s left (%s)\n", yellow("Rest:"), timer.Format(max(left, 0)), restLabel(s, active))
		}
		fmt.Println()

		names := s.Exercises()
		if len(names) == 0 {
			fmt.Println("No exercises yet, add some with 'liftlog add'")
			return nil
		}
		for i, name := range names {
			prev, err := st.ExerciseHistory(ctx, name)
			if err != nil {
				return fmt.Errorf("Failed to load history for %s: %w", name, err)
			}
			printSessionExercise(s, i+1, name, prev, cyan, green)
		}

		if s.IsFullyDone() {
			fmt.Println(green("All sets done, finish with 'liftlog end-session'"))
		}
		return nil
	},
}

func printSessionExercise(s *session.Session, idx int, name string, prev []models.Set, cyan, green func(a ...interface{}) string) {
	fmt.Printf("%d - %s\n", idx, cyan(name))
	if note := s.Note(name); note != "" {
		fmt.Printf("   %s %s\n", green("Notes:"), note)
	}

	best := float32(0)
	for _, p := range prev {
		best = max(best, utils.CalculateEpley1RM(p.Kg, p.Reps))
	}

	fmt.Println(tableIndent + tableBorder("┌", "┬", "┐", setColWidths))
	fmt.Println(tableIndent + tableRow(setColWidths, "Set", "Current", "Prev Session", "Done", "Rest"))
	fmt.Println(tableIndent + tableBorder("├", "┼", "┤", setColWidths))

	for setIdx, set := range s.Sets(name) {
		prevSet := "N/A"
		if setIdx < len(prev) {
			prevSet = formatSet(prev[setIdx].Kg, prev[setIdx].Reps, prev[setIdx].RIR)
		}

		setStr := formatSet(set.Kg, set.Reps, set.RIR)
		if len(prev) > 0 && utils.CalculateEpley1RM(set.Kg, set.Reps) > best {
			setStr += " ★"
		}

		done := ""
		if s.IsSelected(set.ID) {
			done = "✔"
		}
		rest := timer.Format(s.RestDuration(set.ID))
		if active, _ := s.ActiveTimer(); active == set.ID {
			rest += " ⏱"
		} else if s.IsFinishedTimer(set.ID) {
			rest = "over"
		}

		fmt.Println(tableIndent + tableRow(setColWidths, fmt.Sprint(setIdx+1), setStr, prevSet, done, rest))
	}
	fmt.Println(tableIndent + tableBorder("└", "┴", "┘", setColWidths))
	fmt.Println()
}

func formatSet(kg, reps, rir int) string {
	return fmt.Sprintf("%dkg × %d @%d", kg, reps, rir)
}

func tableBorder(left, mid, right string, widths []int) string {
	cols := make([]string, len(widths))
	for i, w := range widths {
		cols[i] = strings.Repeat("─", w)
	}
	return left + strings.Join(cols, mid) + right
}

// tableRow pads by rune count so the ★ and ✔ marks keep the columns aligned.
func tableRow(widths []int, cells ...string) string {
	var b strings.Builder
	b.WriteString("│")
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(cell)
		if pad := w - len([]rune(cell)); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString("│")
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(showSessionCmd)
}
