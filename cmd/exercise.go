package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	exerciseName     string
	exerciseBodyPart string
	filterBodyParts  []string
	searchQuery      string
	listBodyParts    bool
)

var addExerciseCmd = &cobra.Command{
	Use:   "add-exercise",
	Short: "Create a new exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cat, err := current.Catalog(ctx)
		if err != nil {
			return err
		}

		ex, err := cat.Create(ctx, exerciseName, exerciseBodyPart)
		if err != nil {
			return fmt.Errorf("Failed to create exercise: %w", err)
		}

		fmt.Printf("✅ Created exercise: %s (%s)\n", ex.Name, ex.BodyPart)
		return nil
	},
}

var importExercisesCmd = &cobra.Command{
	Use:   "import-exercises [file]",
	Short: "Import exercises from TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cat, err := current.Catalog(ctx)
		if err != nil {
			return err
		}

		n, err := cat.Import(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to import exercises: %w", err)
		}

		fmt.Printf("✅ Imported %d exercises\n", n)
		return nil
	},
}

var listExercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List the exercise catalog, optionally filtered by body part or name",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cat, err := current.Catalog(ctx)
		if err != nil {
			return err
		}

		if listBodyParts {
			parts, err := cat.BodyParts(ctx)
			if err != nil {
				return fmt.Errorf("Failed to list body parts: %w", err)
			}
			for _, p := range parts {
				fmt.Println(p)
			}
			return nil
		}

		var list []models.Exercise
		if searchQuery != "" {
			list, err = cat.Search(ctx, searchQuery)
		} else {
			list, err = cat.Filter(ctx, filterBodyParts...)
		}
		if err != nil {
			return fmt.Errorf("Failed to list exercises: %w", err)
		}
		if searchQuery != "" && len(filterBodyParts) > 0 {
			list = keepBodyParts(list, filterBodyParts)
		}

		if len(list) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}
		printExercisesByBodyPart(list)
		return nil
	},
}

func keepBodyParts(list []models.Exercise, parts []string) []models.Exercise {
	var out []models.Exercise
	for _, ex := range list {
		for _, p := range parts {
			if ex.BodyPart == p {
				out = append(out, ex)
				break
			}
		}
	}
	return out
}

func printExercisesByBodyPart(list []models.Exercise) {
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	grouped := make(map[string][]string)
	var parts []string
	for _, ex := range list {
		if _, ok := grouped[ex.BodyPart]; !ok {
			parts = append(parts, ex.BodyPart)
		}
		grouped[ex.BodyPart] = append(grouped[ex.BodyPart], ex.Name)
	}
	for _, p := range parts {
		fmt.Println(boldCyan(p))
		for _, name := range grouped[p] {
			fmt.Printf("  %s\n", name)
		}
	}
}

func init() {
	addExerciseCmd.Flags().StringVarP(&exerciseName, "name", "n", "", "Exercise name")
	addExerciseCmd.Flags().StringVarP(&exerciseBodyPart, "body-part", "b", "", "Body part the exercise trains")
	addExerciseCmd.MarkFlagRequired("name")
	addExerciseCmd.MarkFlagRequired("body-part")

	listExercisesCmd.Flags().StringSliceVarP(&filterBodyParts, "body-part", "b", nil, "Only show these body parts")
	listExercisesCmd.Flags().StringVarP(&searchQuery, "search", "s", "", "Case insensitive name search")
	listExercisesCmd.Flags().BoolVar(&listBodyParts, "parts", false, "Only list the body parts")

	rootCmd.AddCommand(addExerciseCmd)
	rootCmd.AddCommand(importExercisesCmd)
	rootCmd.AddCommand(listExercisesCmd)
}
