package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/misterclayt0n/liftlog/internal/models"
)

// UpsertCreatedExercise inserts ex, or updates the body part of the
// exercise with the same name.
func (s *Storage) UpsertCreatedExercise(ctx context.Context, ex models.Exercise) error {
	if err := upsertExercise(ctx, s.DB, ex); err != nil {
		return err
	}
	s.notify(TableCreatedExercises)
	return nil
}

// UpsertCreatedExercisesIfEmpty loads exercises only when the table has no
// rows yet. It reports whether anything was written.
func (s *Storage) UpsertCreatedExercisesIfEmpty(ctx context.Context, exercises []models.Exercise) (bool, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM created_exercises`).Scan(&count); err != nil {
		return false, fmt.Errorf("counting exercises: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	for _, ex := range exercises {
		if err := upsertExercise(ctx, tx, ex); err != nil {
			return false, err
		}
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing exercises: %w", err)
	}

	s.log.Debug("exercise catalog seeded", "count", len(exercises))
	s.notify(TableCreatedExercises)
	return true, nil
}

// AllCreatedExercises returns the catalog ordered by name.
func (s *Storage) AllCreatedExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, body_part FROM created_exercises ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	exercises := []models.Exercise{}
	for rows.Next() {
		var ex models.Exercise
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.BodyPart); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercises: %w", err)
	}
	return exercises, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertExercise(ctx context.Context, db execer, ex models.Exercise) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO created_exercises (name, body_part)
		VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET
			body_part = excluded.body_part`,
		ex.Name, ex.BodyPart,
	)
	if err != nil {
		return fmt.Errorf("upserting exercise %q: %w", ex.Name, err)
	}
	return nil
}
