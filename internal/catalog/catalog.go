// Package catalog is the list of exercises a user can pick from, each
// tagged with the body part it trains.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/misterclayt0n/liftlog/internal/models"
)

var (
	ErrEmptyName         = errors.New("exercise name is empty")
	ErrDuplicateExercise = errors.New("there is an exercise with the same name")
)

// Store is the part of the workout store the catalog lives in.
type Store interface {
	UpsertCreatedExercise(ctx context.Context, ex models.Exercise) error
	UpsertCreatedExercisesIfEmpty(ctx context.Context, exercises []models.Exercise) (bool, error)
	AllCreatedExercises(ctx context.Context) ([]models.Exercise, error)
}

type Catalog struct {
	store Store
	log   *slog.Logger
}

func New(store Store, log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.Default()
	}
	return &Catalog{store: store, log: log}
}

// Seed loads the built-in exercises when the store has none yet.
func (c *Catalog) Seed(ctx context.Context) (bool, error) {
	seeded, err := c.store.UpsertCreatedExercisesIfEmpty(ctx, Defaults())
	if err != nil {
		return false, fmt.Errorf("seeding catalog: %w", err)
	}
	if seeded {
		c.log.Info("catalog seeded", "exercises", len(seedExercises))
	}
	return seeded, nil
}

// Defaults returns a copy of the built-in exercise list.
func Defaults() []models.Exercise {
	out := make([]models.Exercise, len(seedExercises))
	copy(out, seedExercises)
	return out
}

// Create adds a user-defined exercise. Names are compared case-insensitively.
func (c *Catalog) Create(ctx context.Context, name, bodyPart string) (models.Exercise, error) {
	ex := models.Exercise{Name: strings.TrimSpace(name), BodyPart: strings.TrimSpace(bodyPart)}
	if ex.Name == "" {
		return models.Exercise{}, ErrEmptyName
	}

	if _, ok, err := c.find(ctx, ex.Name); err != nil {
		return models.Exercise{}, err
	} else if ok {
		return models.Exercise{}, ErrDuplicateExercise
	}

	if err := c.store.UpsertCreatedExercise(ctx, ex); err != nil {
		return models.Exercise{}, fmt.Errorf("creating exercise: %w", err)
	}
	c.log.Debug("exercise created", "name", ex.Name, "body_part", ex.BodyPart)
	return ex, nil
}

// Import upserts every [[exercise]] entry of a TOML file and returns how
// many were written.
func (c *Catalog) Import(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read file: %w", err)
	}

	var importData models.ExerciseImport
	if err := toml.Unmarshal(data, &importData); err != nil {
		return 0, fmt.Errorf("invalid TOML format: %w", err)
	}

	n := 0
	for _, exTOML := range importData.Exercises {
		ex := models.Exercise{
			Name:     strings.TrimSpace(exTOML.Name),
			BodyPart: strings.TrimSpace(exTOML.BodyPart),
		}
		if ex.Name == "" {
			continue
		}
		if err := c.store.UpsertCreatedExercise(ctx, ex); err != nil {
			return n, fmt.Errorf("failed to import exercise %s: %w", ex.Name, err)
		}
		n++
	}
	return n, nil
}

func (c *Catalog) List(ctx context.Context) ([]models.Exercise, error) {
	return c.store.AllCreatedExercises(ctx)
}

// Filter keeps the exercises training any of bodyParts. No body parts
// means no filtering.
func (c *Catalog) Filter(ctx context.Context, bodyParts ...string) ([]models.Exercise, error) {
	all, err := c.List(ctx)
	if err != nil || len(bodyParts) == 0 {
		return all, err
	}

	wanted := make(map[string]bool, len(bodyParts))
	for _, bp := range bodyParts {
		wanted[bp] = true
	}
	var out []models.Exercise
	for _, ex := range all {
		if wanted[ex.BodyPart] {
			out = append(out, ex)
		}
	}
	return out, nil
}

// Search returns exercises whose name contains query, ignoring case.
func (c *Catalog) Search(ctx context.Context, query string) ([]models.Exercise, error) {
	all, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all, nil
	}

	var out []models.Exercise
	for _, ex := range all {
		if strings.Contains(strings.ToLower(ex.Name), query) {
			out = append(out, ex)
		}
	}
	return out, nil
}

// BodyParts lists the distinct body parts in the catalog, sorted.
func (c *Catalog) BodyParts(ctx context.Context) ([]string, error) {
	all, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var parts []string
	for _, ex := range all {
		if ex.BodyPart != "" && !seen[ex.BodyPart] {
			seen[ex.BodyPart] = true
			parts = append(parts, ex.BodyPart)
		}
	}
	sort.Strings(parts)
	return parts, nil
}

// BodyPartOf returns the body part of the named exercise, or "" when the
// exercise is not in the catalog.
func (c *Catalog) BodyPartOf(ctx context.Context, name string) (string, error) {
	ex, _, err := c.find(ctx, name)
	return ex.BodyPart, err
}

func (c *Catalog) find(ctx context.Context, name string) (models.Exercise, bool, error) {
	all, err := c.List(ctx)
	if err != nil {
		return models.Exercise{}, false, err
	}
	for _, ex := range all {
		if strings.EqualFold(ex.Name, name) {
			return ex, true, nil
		}
	}
	return models.Exercise{}, false, nil
}
