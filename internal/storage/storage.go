// Package storage is the SQL workout store. It persists finished workouts
// and user-created exercises, and pushes fresh query results to
// subscribers after every committed write.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"

	"github.com/misterclayt0n/liftlog/internal/pubsub"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrWorkoutNotFound is returned when a workout id does not exist.
var ErrWorkoutNotFound = errors.New("workout not found")

// Table names a group of rows subscribers can watch.
type Table string

const (
	TableWorkouts         Table = "workouts"
	TableCreatedExercises Table = "created_exercises"
)

// Change is published after a write touching Table has been committed.
type Change struct {
	Table Table
}

type Storage struct {
	DB      *sql.DB
	changes *pubsub.Broker[Change]
	log     *slog.Logger
}

// Open connects to connString and brings the schema up to date.
// libsql://, http(s):// and ws(s):// strings go to a remote libSQL server,
// anything else is treated as a local SQLite file path.
func Open(ctx context.Context, connString, authToken string, log *slog.Logger) (*Storage, error) {
	if log == nil {
		log = slog.Default()
	}
	if connString == "" {
		return nil, errors.New("database connection string is empty")
	}

	var (
		db  *sql.DB
		err error
	)
	if isRemote(connString) {
		db, err = openRemote(ctx, connString, authToken)
	} else {
		db, err = openLocal(connString)
	}
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	log.Debug("database ready", "remote", isRemote(connString))

	return &Storage{
		DB:      db,
		changes: pubsub.NewBrokerWithBuffer[Change](64),
		log:     log,
	}, nil
}

func isRemote(connString string) bool {
	for _, scheme := range []string{"libsql://", "http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(connString, scheme) {
			return true
		}
	}
	return false
}

func openLocal(path string) (*sql.DB, error) {
	path = strings.TrimPrefix(path, "file:")
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database dir %s: %w", dir, err)
		}
	}

	// Pragmas are applied to every pooled connection.
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening db %s: %w", path, err)
	}
	return db, nil
}

func openRemote(ctx context.Context, connString, authToken string) (*sql.DB, error) {
	if authToken != "" {
		u, err := url.Parse(connString)
		if err != nil {
			return nil, fmt.Errorf("parsing database url: %w", err)
		}
		q := u.Query()
		q.Set("authToken", authToken)
		u.RawQuery = q.Encode()
		connString = u.String()
	}

	db, err := sql.Open("libsql", connString)
	if err != nil {
		return nil, fmt.Errorf("opening remote db: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	return db, nil
}

func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	// m.Close is not called: it would close db along with the driver.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Close stops every subscription and closes the database.
func (s *Storage) Close() error {
	s.changes.Close()
	return s.DB.Close()
}

func (s *Storage) notify(table Table) {
	s.changes.Publish(pubsub.UpdatedEvent, Change{Table: table})
}
