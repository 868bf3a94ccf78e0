package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/liftlog/internal/models"
)

// memStore keeps created exercises in memory, keyed by exact name.
type memStore struct {
	exercises map[string]models.Exercise
	err       error
}

func newMemStore(exercises ...models.Exercise) *memStore {
	s := &memStore{exercises: make(map[string]models.Exercise)}
	for _, ex := range exercises {
		s.exercises[ex.Name] = ex
	}
	return s
}

func (s *memStore) UpsertCreatedExercise(_ context.Context, ex models.Exercise) error {
	if s.err != nil {
		return s.err
	}
	s.exercises[ex.Name] = ex
	return nil
}

func (s *memStore) UpsertCreatedExercisesIfEmpty(ctx context.Context, exercises []models.Exercise) (bool, error) {
	if len(s.exercises) > 0 {
		return false, nil
	}
	for _, ex := range exercises {
		if err := s.UpsertCreatedExercise(ctx, ex); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (s *memStore) AllCreatedExercises(context.Context) ([]models.Exercise, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Exercise, 0, len(s.exercises))
	for _, ex := range s.exercises {
		out = append(out, ex)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out, nil
}

func newTestCatalog(exercises ...models.Exercise) (*Catalog, *memStore) {
	store := newMemStore(exercises...)
	return New(store, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

func TestSeed_OnlyWhenEmpty(t *testing.T) {
	c, store := newTestCatalog()
	ctx := context.Background()

	seeded, err := c.Seed(ctx)
	require.NoError(t, err)
	require.True(t, seeded)
	require.Len(t, store.exercises, len(Defaults()))
	require.Equal(t, "Chest", store.exercises["Bench Press"].BodyPart)

	seeded, err = c.Seed(ctx)
	require.NoError(t, err)
	require.False(t, seeded)
}

func TestDefaults_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, ex := range Defaults() {
		key := strings.ToLower(ex.Name)
		require.False(t, seen[key], "duplicate seed exercise %q", ex.Name)
		require.NotEmpty(t, ex.BodyPart, "seed exercise %q has no body part", ex.Name)
		seen[key] = true
	}
}

func TestCreate(t *testing.T) {
	c, store := newTestCatalog(models.Exercise{Name: "Bench Press", BodyPart: "Chest"})
	ctx := context.Background()

	ex, err := c.Create(ctx, "  Zottman Curl ", "Biceps")
	require.NoError(t, err)
	require.Equal(t, models.Exercise{Name: "Zottman Curl", BodyPart: "Biceps"}, ex)
	require.Contains(t, store.exercises, "Zottman Curl")

	_, err = c.Create(ctx, "bench press", "Chest")
	require.ErrorIs(t, err, ErrDuplicateExercise)
	require.Len(t, store.exercises, 2)

	_, err = c.Create(ctx, "   ", "Chest")
	require.ErrorIs(t, err, ErrEmptyName)
}

func TestCreate_StoreError(t *testing.T) {
	c, store := newTestCatalog()
	store.err = errors.New("locked")

	_, err := c.Create(context.Background(), "Dips", "Triceps")
	require.ErrorIs(t, err, store.err)
}

func TestFilterAndSearch(t *testing.T) {
	c, _ := newTestCatalog(
		models.Exercise{Name: "Bench Press", BodyPart: "Chest"},
		models.Exercise{Name: "Incline Bench Press", BodyPart: "Chest"},
		models.Exercise{Name: "Squats", BodyPart: "Legs"},
		models.Exercise{Name: "Pull-ups", BodyPart: "Back"},
	)
	ctx := context.Background()

	all, err := c.Filter(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	legsAndBack, err := c.Filter(ctx, "Legs", "Back")
	require.NoError(t, err)
	require.Equal(t, []models.Exercise{
		{Name: "Pull-ups", BodyPart: "Back"},
		{Name: "Squats", BodyPart: "Legs"},
	}, legsAndBack)

	found, err := c.Search(ctx, "BENCH")
	require.NoError(t, err)
	require.Len(t, found, 2)

	none, err := c.Search(ctx, "deadlift")
	require.NoError(t, err)
	require.Empty(t, none)

	parts, err := c.BodyParts(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Back", "Chest", "Legs"}, parts)

	bp, err := c.BodyPartOf(ctx, "squats")
	require.NoError(t, err)
	require.Equal(t, "Legs", bp)

	bp, err = c.BodyPartOf(ctx, "Deadlift")
	require.NoError(t, err)
	require.Equal(t, "", bp)
}

func TestImport(t *testing.T) {
	c, store := newTestCatalog(models.Exercise{Name: "Dips", BodyPart: "Triceps"})
	path := filepath.Join(t.TempDir(), "exercises.toml")
	content := `
[[exercise]]
name = "Dips"
body_part = "Chest"

[[exercise]]
name = "Sissy Squat"
body_part = "Quads"

[[exercise]]
name = ""
body_part = "Nothing"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	n, err := c.Import(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "Chest", store.exercises["Dips"].BodyPart)
	require.Equal(t, "Quads", store.exercises["Sissy Squat"].BodyPart)
}

func TestImport_InvalidFile(t *testing.T) {
	c, _ := newTestCatalog()
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[exercise]\nname ="), 0644))

	_, err := c.Import(context.Background(), path)
	require.ErrorContains(t, err, "invalid TOML format")

	_, err = c.Import(context.Background(), filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
