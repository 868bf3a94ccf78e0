package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/misterclayt0n/liftlog/internal/catalog"
	"github.com/misterclayt0n/liftlog/internal/config"
	"github.com/misterclayt0n/liftlog/internal/logging"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/session"
	"github.com/misterclayt0n/liftlog/internal/storage"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

// app holds what the commands share during one invocation.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	closer io.Closer
	store  *storage.Storage
}

var current *app

func setup() error {
	if current != nil {
		return nil
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("Failed to load config: %w", err)
	}
	log, closer, err := logging.New(cfg.Log.Level, cfg.Log.Path, debugMode)
	if err != nil {
		return fmt.Errorf("Failed to set up logging: %w", err)
	}
	current = &app{cfg: cfg, log: log, closer: closer}
	return nil
}

func teardown() {
	if current == nil {
		return
	}
	if current.store != nil {
		if err := current.store.Close(); err != nil {
			current.log.Warn("closing store", "error", err)
		}
	}
	current.closer.Close()
	current = nil
}

// Store opens the workout store on first use.
func (a *app) Store(ctx context.Context) (*storage.Storage, error) {
	if a.store != nil {
		return a.store, nil
	}
	st, err := storage.Open(ctx, a.cfg.DB.ConnectionString, a.cfg.DB.AuthToken, a.log)
	if err != nil {
		return nil, fmt.Errorf("Failed to open database: %w", err)
	}
	a.store = st
	return st, nil
}

func (a *app) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	st, err := a.Store(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.New(st, a.log), nil
}

func (a *app) newSession() *session.Session {
	return session.New(
		session.WithLogger(a.log),
		session.WithDefaultRest(a.cfg.Timer.DefaultRest),
	)
}

// loadSession restores the session file left by a previous command.
func (a *app) loadSession() (*session.Session, error) {
	var snap session.Snapshot
	if err := utils.LoadSessionState(a.cfg.Session.Path, &snap); err != nil {
		if errors.Is(err, utils.ErrNoSession) {
			return nil, fmt.Errorf("No active session, run 'liftlog start-session' first")
		}
		return nil, fmt.Errorf("Failed to load session: %w", err)
	}
	s := a.newSession()
	s.Restore(snap)
	expireElapsed(s, time.Now())
	return s, nil
}

// expireElapsed fires the expiry of a rest timer whose countdown ran out
// while no command was watching it.
func expireElapsed(s *session.Session, now time.Time) bool {
	id, since := s.ActiveTimer()
	if id == "" || since.IsZero() {
		return false
	}
	if now.Sub(since) < s.RestDuration(id) {
		return false
	}
	return s.ExpireTimer(id)
}

func (a *app) saveSession(s *session.Session) error {
	if err := utils.SaveSessionState(a.cfg.Session.Path, s.Snapshot()); err != nil {
		return fmt.Errorf("Failed to save session: %w", err)
	}
	return nil
}

func (a *app) clearSession() error {
	if err := utils.ClearSessionState(a.cfg.Session.Path); err != nil {
		return fmt.Errorf("Failed to clear session: %w", err)
	}
	return nil
}

// exerciseAt resolves a 1-based exercise argument.
func exerciseAt(s *session.Session, arg string) (int, string, error) {
	idx, err := utils.ParseIndex(arg, "exercise")
	if err != nil {
		return 0, "", err
	}
	names := s.Exercises()
	if idx >= len(names) {
		return 0, "", fmt.Errorf("Exercise index out of range")
	}
	return idx, names[idx], nil
}

// setAt resolves a 1-based set argument of an exercise.
func setAt(s *session.Session, name, arg string) (int, models.SessionSet, error) {
	idx, err := utils.ParseIndex(arg, "set")
	if err != nil {
		return 0, models.SessionSet{}, err
	}
	sets := s.Sets(name)
	if idx >= len(sets) {
		return 0, models.SessionSet{}, fmt.Errorf("Set index out of range")
	}
	return idx, sets[idx], nil
}
