package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// dumpTables lists the exported tables parent first, with the columns that
// may appear in a dump.
var dumpTables = []struct {
	name    string
	columns []string
}{
	{"workouts", []string{"id", "name", "date", "duration", "note"}},
	{"workout_exercises", []string{"id", "workout_id", "name", "note"}},
	{"sets", []string{"id", "exercise_id", "kg", "reps", "rir"}},
	{"created_exercises", []string{"id", "name", "body_part"}},
}

// Export writes every row of the store to outputPath as TOML, one array of
// tables per SQL table.
func (s *Storage) Export(ctx context.Context, outputPath string) error {
	dump := make(map[string][]map[string]any)

	for _, table := range dumpTables {
		query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id;", strings.Join(table.columns, ", "), table.name)
		rows, err := s.DB.QueryContext(ctx, query)
		if err != nil {
			return fmt.Errorf("querying table %s: %w", table.name, err)
		}

		var tableData []map[string]any
		for rows.Next() {
			values := make([]any, len(table.columns))
			valuePtrs := make([]any, len(table.columns))
			for i := range values {
				valuePtrs[i] = &values[i]
			}

			if err := rows.Scan(valuePtrs...); err != nil {
				rows.Close()
				return fmt.Errorf("scanning row in table %s: %w", table.name, err)
			}

			rowMap := make(map[string]any, len(table.columns))
			for i, col := range table.columns {
				if b, ok := values[i].([]byte); ok {
					rowMap[col] = string(b)
				} else {
					rowMap[col] = values[i]
				}
			}
			tableData = append(tableData, rowMap)
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return fmt.Errorf("iterating table %s: %w", table.name, err)
		}

		dump[table.name] = tableData
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(dump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	s.log.Info("database exported", "path", outputPath)
	return nil
}

// Import replaces the contents of the store with the dump at filePath.
// Everything happens in one transaction; a bad row leaves the store as it was.
func (s *Storage) Import(ctx context.Context, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", filePath, err)
	}

	var dump map[string][]map[string]any
	if _, err := toml.Decode(string(data), &dump); err != nil {
		return fmt.Errorf("decoding TOML: %w", err)
	}
	for name := range dump {
		if !knownTable(name) {
			return fmt.Errorf("unknown table %q in dump", name)
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Children first so the cascade has nothing left to do.
	for i := len(dumpTables) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s;", dumpTables[i].name)); err != nil {
			return fmt.Errorf("clearing table %s: %w", dumpTables[i].name, err)
		}
	}

	rowCount := 0
	for _, table := range dumpTables {
		allowed := make(map[string]bool, len(table.columns))
		for _, col := range table.columns {
			allowed[col] = true
		}

		for _, row := range dump[table.name] {
			columns := make([]string, 0, len(row))
			for col := range row {
				if !allowed[col] {
					return fmt.Errorf("unknown column %q in table %s", col, table.name)
				}
				columns = append(columns, col)
			}
			sort.Strings(columns)

			placeholders := make([]string, len(columns))
			values := make([]any, len(columns))
			for i, col := range columns {
				placeholders[i] = "?"
				values[i] = row[col]
			}

			query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
				table.name, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
			if _, err := tx.ExecContext(ctx, query, values...); err != nil {
				return fmt.Errorf("inserting into table %s: %w", table.name, err)
			}
			rowCount++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}

	s.log.Info("database imported", "path", filePath, "rows", rowCount)
	s.notify(TableWorkouts)
	s.notify(TableCreatedExercises)
	return nil
}

// DefaultExportPath returns where export writes when no path is given.
func DefaultExportPath(configDir string) string {
	return filepath.Join(configDir, "db_dump.toml")
}

func knownTable(name string) bool {
	for _, table := range dumpTables {
		if table.name == name {
			return true
		}
	}
	return false
}
