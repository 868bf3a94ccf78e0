package utils

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

var ErrNoSession = errors.New("no active session")

// SaveSessionState writes state as TOML to path, creating its directory.
func SaveSessionState(path string, state any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(f).Encode(state); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// LoadSessionState decodes the TOML file at path into state.
// Returns ErrNoSession when there is no file.
func LoadSessionState(path string, state any) error {
	if !SessionExists(path) {
		return ErrNoSession
	}
	_, err := toml.DecodeFile(path, state)
	return err
}

func ClearSessionState(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func SessionExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
